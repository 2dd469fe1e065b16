/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package coresvc

import (
	"context"
	"sync"

	"github.com/voedger/docmodel/pkg/core"
	"github.com/voedger/docmodel/pkg/protocol"
	"github.com/voedger/docmodel/pkg/schema"
)

// Called with full query result on subscribe and after every transaction
type ResultFunc func([]*core.Instance)

// Called if query lookup fails
type ErrorFunc func(error)

type SubscriptionHandle uint64

// Core service: runtime over the model domain and a backing store over the
// other domains.
//
// # Implements:
//   - protocol.ICoreProtocol
//
// @ConcurrentAccess
type Service struct {
	rt      *core.Runtime
	backend protocol.ICoreProtocol

	mu   sync.Mutex
	subs map[SubscriptionHandle]*subscription
	next SubscriptionHandle

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type subscription struct {
	handle   SubscriptionHandle
	class    schema.ClassRef
	query    schema.Query
	onResult ResultFunc
	onError  ErrorFunc

	// guards fields below and callback calls
	mu        sync.Mutex
	cancelled bool
	started   uint64
	delivered uint64
}
