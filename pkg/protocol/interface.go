/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package protocol

import (
	"context"

	"github.com/voedger/docmodel/pkg/schema"
)

// Backing store of documents outside the model domain.
//
// Implemented by the offline cache and by the RPC client.
//
// @ConcurrentAccess
type ICoreProtocol interface {
	// Returns containers of exactly class which match query
	Find(ctx context.Context, class schema.ClassRef, query schema.Query) ([]schema.Container, error)

	// Returns first container found. ok is false if nothing is found
	FindOne(ctx context.Context, class schema.ClassRef, query schema.Query) (c schema.Container, ok bool, err error)

	// Applies transaction.
	//
	// Returns ErrNotFound if updated or deleted object is absent,
	// ErrNotImplemented if transaction kind is not supported
	Tx(ctx context.Context, tx Tx) error

	// Returns all containers of domain sorted by index field.
	//
	// Empty index keeps the store order
	LoadDomain(ctx context.Context, domain string, index string, direction Direction) ([]schema.Container, error)
}
