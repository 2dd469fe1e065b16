/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package core

import (
	"sync"

	"github.com/voedger/docmodel/pkg/schema"
)

// # Implements:
//   - INativeRegistry
type nativeRegistry struct {
	sync.Map
}

func (r *nativeRegistry) Set(h schema.NativeHandle, t MethodTable) {
	r.Store(h, t)
}

func (r *nativeRegistry) Get(h schema.NativeHandle) (MethodTable, bool) {
	if t, ok := r.Load(h); ok {
		return t.(MethodTable), true
	}
	return nil, false
}

func classDocumentMethods() MethodTable {
	return MethodTable{
		Method_ToIntlString: func(self *Instance, _ ...any) (any, error) {
			return string(self.ID()), nil
		},
	}
}
