/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/sync/errgroup"

	"github.com/voedger/docmodel/pkg/coresvc"
	"github.com/voedger/docmodel/pkg/rpc"
)

func newServeCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the core protocol over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			return params.withService(reg, func(svc *coresvc.Service) error {
				server := rpc.NewServer(rpc.ServerParams{Listen: params.cfg.Listen, Gatherer: reg}, svc)
				if err := server.Prepare(); err != nil {
					return fmt.Errorf("rpc server preparation error: %w", err)
				}

				g, ctx := errgroup.WithContext(cmd.Context())
				g.Go(func() error {
					return server.Run(ctx)
				})
				g.Go(func() error {
					<-ctx.Done()
					logger.Verbose("active subscriptions on shutdown:", svc.Subscriptions())
					return nil
				})
				return g.Wait()
			})
		},
	}
}
