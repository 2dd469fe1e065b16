/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Conjunction of field conditions, e.g. `name = "A" AND age >= 3`
type QueryAST struct {
	Pos        lexer.Position
	Conditions []*ConditionAST `parser:"( @@ ( 'AND' @@ )* )?"`
}

type ConditionAST struct {
	Pos   lexer.Position
	Field string      `parser:"@Ident"`
	Op    *string     `parser:"( @Operators"`
	Value *ValueAST   `parser:"  @@"`
	In    []*ValueAST `parser:"| 'IN' '(' @@ ( ',' @@ )* ')' )"`
}

type ValueAST struct {
	Pos    lexer.Position
	String *string  `parser:"  @String"`
	Float  *float64 `parser:"| @Float"`
	Int    *int64   `parser:"| @Int"`
	True   bool     `parser:"| @'TRUE'"`
	False  bool     `parser:"| @'FALSE'"`
	Null   bool     `parser:"| @'NULL'"`
}
