/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package protocol

import (
	"golang.org/x/exp/slices"

	"github.com/voedger/docmodel/pkg/schema"
)

// Validates transaction and fills ObjectID and ObjectClass of create
// transaction from the object
func (tx *Tx) Normalize() error {
	switch tx.Kind {
	case TxKind_Create:
		if tx.Object == nil {
			return schema.EnrichError(schema.ErrSchema, "create transaction «%s» without object", tx.ID)
		}
		if tx.ObjectID == "" {
			tx.ObjectID = tx.Object.ID()
		}
		if tx.ObjectClass == "" {
			tx.ObjectClass = tx.Object.Class()
		}
		if tx.Object.ID() == "" {
			tx.Object[schema.Field_ID] = string(tx.ObjectID)
		}
		if tx.Object.Class() == "" {
			tx.Object[schema.Field_Class] = string(tx.ObjectClass)
		}
	case TxKind_Update, TxKind_Delete:
	default:
		return schema.EnrichError(schema.ErrNotImplemented, "transaction kind «%s»", tx.Kind)
	}
	if tx.ObjectID == "" {
		return schema.EnrichError(schema.ErrSchema, "transaction «%s» without object identifier", tx.ID)
	}
	return nil
}

// Sorts containers in place by index field value. Containers without the
// field go last in both directions. Sort is stable
func SortByIndex(list []schema.Container, index string, direction Direction) {
	if index == "" {
		return
	}
	desc := direction == Direction_Desc
	slices.SortStableFunc(list, func(a, b schema.Container) bool {
		va, okA := a[index]
		vb, okB := b[index]
		switch {
		case !okA || va == nil:
			return false
		case !okB || vb == nil:
			return true
		}
		cmp, ok := schema.Compare(va, vb)
		if !ok {
			return false
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}
