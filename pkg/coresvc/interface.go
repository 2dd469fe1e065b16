/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package coresvc

import (
	"github.com/voedger/docmodel/pkg/schema"
)

// Backing store which can be seeded with snapshot documents.
//
// Offline store implements it, RPC client does not
type ISeeder interface {
	Seed([]schema.Container) error
}
