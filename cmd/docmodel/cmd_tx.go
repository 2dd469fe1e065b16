/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/docmodel/pkg/coresvc"
	"github.com/voedger/docmodel/pkg/protocol"
	"github.com/voedger/docmodel/pkg/schema"
)

func newSetCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:     "set CLASS ID FIELD=VALUE...",
		Short:   "Update document attributes",
		Example: `  docmodel set class:test.Person p1 name=Bob age=42`,
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := parseAssignments(args[2:])
			if err != nil {
				return err
			}
			tx := protocol.Tx{
				ID:          uuid.NewString(),
				Kind:        protocol.TxKind_Update,
				ObjectClass: schema.ClassRef(args[0]),
				ObjectID:    schema.DocRef(args[1]),
				Attributes:  attrs,
			}
			return params.withService(nil, func(svc *coresvc.Service) error {
				if err := svc.Tx(cmd.Context(), tx); err != nil {
					return err
				}
				logger.Info("tx applied:", tx.ID)
				return nil
			})
		},
	}
}
