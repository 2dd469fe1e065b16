/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package offline

import (
	"github.com/voedger/docmodel/pkg/schema"
)

// Resolves storage domain of documents of a class.
//
// schema.IRegistry satisfies it
type IDomains interface {
	DomainOf(schema.ClassRef) (string, error)
}
