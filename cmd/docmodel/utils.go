/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v3"

	"github.com/voedger/docmodel/pkg/coresvc"
	"github.com/voedger/docmodel/pkg/snapshot"
)

// Wires service, bootstraps it from configured snapshot and calls f
func (p *cliParams) withService(reg prometheus.Registerer, f func(svc *coresvc.Service) error) error {
	svc, cleanup, err := wireService(p.cfg, reg)
	if err != nil {
		return fmt.Errorf("service not wired: %w", err)
	}
	defer cleanup()

	if p.cfg.Snapshot != "" {
		snap, err := snapshot.ReadFile(p.cfg.Snapshot)
		if err != nil {
			return err
		}
		if err := svc.Bootstrap(snap); err != nil {
			return err
		}
	} else {
		logger.Verbose("no snapshot, core model only")
	}
	return f(svc)
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Parses `field=value` arguments. Values are YAML scalars: `age=3` is a
// number, `name=A` and `name="3"` are strings
func parseAssignments(args []string) (map[string]any, error) {
	res := make(map[string]any, len(args))
	for _, arg := range args {
		field, raw, ok := strings.Cut(arg, fieldValueSeparator)
		if !ok || field == "" {
			return nil, fmt.Errorf("%w: «%s», field=value expected", errBadAssignment, arg)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("%w: «%s»: %v", errBadAssignment, arg, err)
		}
		res[field] = value
	}
	return res, nil
}
