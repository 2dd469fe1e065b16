/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/docmodel/pkg/coresvc"
	"github.com/voedger/docmodel/pkg/parser"
	"github.com/voedger/docmodel/pkg/protocol"
	"github.com/voedger/docmodel/pkg/schema"
)

func newClassesCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List registered classes and their domains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return params.withService(nil, func(svc *coresvc.Service) error {
				reg := svc.Runtime().Registry()
				for _, class := range reg.Classes() {
					domain, err := reg.DomainOf(class)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", class, domain)
				}
				return nil
			})
		},
	}
}

func newFindCmd(params *cliParams) *cobra.Command {
	var where string
	var one bool
	cmd := &cobra.Command{
		Use:   "find CLASS",
		Short: "Find documents of exactly the class",
		Example: `  docmodel find class:test.Person --where 'age >= 18 and name in ("A", "B")'
  docmodel find class:test.Person --where '_id = "p1"' --one`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := parser.ParseQuery("--"+flag_Where, where)
			if err != nil {
				return err
			}
			class := schema.ClassRef(args[0])
			return params.withService(nil, func(svc *coresvc.Service) error {
				if one {
					c, ok, err := svc.FindOne(cmd.Context(), class, query)
					if err != nil || !ok {
						return err
					}
					return printYAML(cmd.OutOrStdout(), c)
				}
				list, err := svc.Find(cmd.Context(), class, query)
				if err != nil {
					return err
				}
				return printYAML(cmd.OutOrStdout(), list)
			})
		},
	}
	cmd.Flags().StringVar(&where, flag_Where, "", "where clause, e.g. 'name = \"A\" and age > 3'")
	cmd.Flags().BoolVar(&one, flag_One, false, "print the first document found only")
	return cmd
}

func newGetCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "get CLASS ID",
		Short: "Materialize document as the class and print it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, id := schema.ClassRef(args[0]), schema.DocRef(args[1])
			return params.withService(nil, func(svc *coresvc.Service) error {
				inst, ok, err := svc.FindInstance(cmd.Context(), class, schema.Query{schema.Field_ID: string(id)})
				if err != nil {
					return err
				}
				if !ok {
					return schema.ErrDocNotFound(id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", inst)
				return printYAML(cmd.OutOrStdout(), inst.Container())
			})
		},
	}
}

func newDomainCmd(params *cliParams) *cobra.Command {
	var index string
	var desc bool
	cmd := &cobra.Command{
		Use:   "domain NAME",
		Short: "Print all documents of the domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := protocol.Direction_Asc
			if desc {
				direction = protocol.Direction_Desc
			}
			return params.withService(nil, func(svc *coresvc.Service) error {
				list, err := svc.LoadDomain(cmd.Context(), args[0], index, direction)
				if err != nil {
					return err
				}
				return printYAML(cmd.OutOrStdout(), list)
			})
		},
	}
	cmd.Flags().StringVar(&index, flag_Index, schema.Field_ID, "field to sort by")
	cmd.Flags().BoolVar(&desc, flag_Desc, false, "sort descending")
	return cmd
}
