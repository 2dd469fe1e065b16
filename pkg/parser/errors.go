/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var ErrSyntax = errors.New("query syntax error")

var ErrDuplicateField = errors.New("field condition duplicated")

var ErrUnknownOperator = errors.New("unknown operator")

func errDuplicateField(field string, pos lexer.Position) error {
	return fmt.Errorf("%w: «%s» at %s", ErrDuplicateField, field, pos.String())
}

func errUnknownOperator(op string, pos lexer.Position) error {
	return fmt.Errorf("%w: «%s» at %s", ErrUnknownOperator, op, pos.String())
}
