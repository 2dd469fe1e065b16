/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package coresvc

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/docmodel/pkg/config"
	"github.com/voedger/docmodel/pkg/core"
	"github.com/voedger/docmodel/pkg/offline"
	"github.com/voedger/docmodel/pkg/protocol"
	"github.com/voedger/docmodel/pkg/rpc"
)

// Creates service over runtime and backing store
func New(rt *core.Runtime, backend protocol.ICoreProtocol) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		rt:      rt,
		backend: backend,
		subs:    make(map[SubscriptionHandle]*subscription),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Creates backing store selected by config: offline store if cfg.Offline,
// RPC client otherwise. Exactly one is created.
//
// Offline store resolves document domains by domains and registers its
// metrics in reg if not nil
func NewBackend(cfg *config.Config, domains offline.IDomains, reg prometheus.Registerer) (backend protocol.ICoreProtocol, cleanup func(), err error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if !cfg.Offline {
		logger.Info("backing store: rpc", cfg.RPCURL)
		return rpc.NewClient(cfg.RPCURL), func() {}, nil
	}

	provider, err := cfg.DocCacheProvider()
	if err != nil {
		// notest: checked by Validate
		return nil, nil, err
	}
	store, err := offline.Open(offline.Params{
		Dir:              cfg.CacheDir,
		Name:             cfg.Store,
		MaxBytes:         cfg.CacheMaxBytes,
		DocCacheSize:     cfg.DocCacheSize,
		DocCacheProvider: provider,
		Registerer:       reg,
	}, domains)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Error("offline store close failed", err)
		}
	}, nil
}
