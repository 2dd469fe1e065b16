//go:generate go run github.com/google/wire/cmd/wire
//go:build wireinject
// +build wireinject

/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voedger/docmodel/pkg/config"
	"github.com/voedger/docmodel/pkg/core"
	"github.com/voedger/docmodel/pkg/coresvc"
	"github.com/voedger/docmodel/pkg/offline"
)

func wireService(cfg *config.Config, reg prometheus.Registerer) (*coresvc.Service, func(), error) {
	panic(
		wire.Build(
			provideRuntime,
			provideDomains,
			coresvc.NewBackend,
			provideService,
		),
	)
}

// provideRuntime is intended to be used by wire instead of core.New, because wire can not handle variadic arguments
func provideRuntime() (*core.Runtime, error) {
	return core.New()
}

func provideDomains(rt *core.Runtime) offline.IDomains {
	return rt.Registry()
}
