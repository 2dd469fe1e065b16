/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"github.com/voedger/docmodel/pkg/schema"
)

// Parses where clause into query.
//
// Clause is a conjunction of conditions joined by AND. Condition is
// `field op value` with op one of = != <> < <= > >=, or
// `field IN (value, ...)`. Values are quoted strings, numbers, TRUE, FALSE
// and NULL. Keywords are case insensitive. Empty clause matches everything.
//
// Name is used in error positions, e.g. "--where"
func ParseQuery(name, clause string) (schema.Query, error) {
	ast, err := parseImpl(name, clause)
	if err != nil {
		return nil, err
	}
	return buildQuery(ast)
}
