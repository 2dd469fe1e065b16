/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package memdb

import "github.com/voedger/docmodel/pkg/schema"

// Creates and returns new empty document store
func New() *MemDb {
	return &MemDb{
		docs: make(map[schema.DocRef]schema.Container),
	}
}
