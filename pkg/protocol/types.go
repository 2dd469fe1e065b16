/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package protocol

import (
	"github.com/voedger/docmodel/pkg/schema"
)

type TxKind string

// Sort direction of LoadDomain
type Direction string

// Transaction over a single object
type Tx struct {
	ID          string          `json:"id"`
	Kind        TxKind          `json:"kind"`
	ObjectClass schema.ClassRef `json:"objectClass"`
	ObjectID    schema.DocRef   `json:"objectId"`

	// Whole object for TxKind_Create
	Object schema.Container `json:"object,omitempty"`

	// Changed attributes for TxKind_Update
	Attributes map[string]any `json:"attributes,omitempty"`
}
