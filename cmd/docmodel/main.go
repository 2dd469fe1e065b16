/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/docmodel/pkg/config"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := newRootCmd(ver)
	rootCmd.SetArgs(args[1:])
	return execAndCatchInterrupt(rootCmd)
}

func newRootCmd(ver string) *cobra.Command {
	params := &cliParams{}
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         appShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if params.cfg, err = config.Load(params.cfgFile, cmd.Flags()); err != nil {
				return err
			}
			if params.cfg.Verbose {
				logger.SetLogLevel(logger.LogLevelVerbose)
				logger.Verbose("Using logger.LogLevelVerbose...")
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&params.cfgFile, flag_Config, "", "YAML config file")
	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newVersionCmd(ver),
		newClassesCmd(params),
		newFindCmd(params),
		newGetCmd(params),
		newDomainCmd(params),
		newSetCmd(params),
		newServeCmd(params),
	)
	return rootCmd
}

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, strings.TrimSpace(ver))
		},
	}
}

// Executes cmd until it finishes or interrupt signal is received
func execAndCatchInterrupt(cmd *cobra.Command) (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = cmd.ExecuteContext(ctx)
		cancel()
	}()

	select {
	case sig := <-signals:
		logger.Info("signal received:", sig)
		cancel()
	case <-ctx.Done():
	}
	logger.Verbose("waiting for command to finish...")
	wg.Wait()
	return err
}
