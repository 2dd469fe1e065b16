/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/voedger/docmodel/pkg/schema"
)

var queryParser = buildParser()

func buildParser() *participle.Parser[QueryAST] {
	var basicLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--.*`},
		{Name: "Float", Pattern: `[-+]?\d+\.\d+`},
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "Operators", Pattern: `<>|!=|<=|>=|[=<>]`},
		{Name: "Punct", Pattern: `[(),]`},
		{Name: "Keywords", Pattern: `(?i)\b(AND|IN|TRUE|FALSE|NULL)\b`},
		{Name: "String", Pattern: `("(\\"|[^"])*")|('(\\'|[^'])*')`},
		{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
		{Name: "Whitespace", Pattern: `[ \r\n\t]+`},
	})

	return participle.MustBuild[QueryAST](
		participle.Lexer(basicLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.Unquote("String"),
		participle.CaseInsensitive("Keywords"),
	)
}

func parseImpl(name, content string) (*QueryAST, error) {
	ast, err := queryParser.ParseString(name, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return ast, nil
}

func buildQuery(ast *QueryAST) (schema.Query, error) {
	q := make(schema.Query, len(ast.Conditions))
	for _, c := range ast.Conditions {
		if _, exists := q[c.Field]; exists {
			return nil, errDuplicateField(c.Field, c.Pos)
		}
		v, err := c.build()
		if err != nil {
			return nil, err
		}
		q[c.Field] = v
	}
	return q, nil
}

func (c *ConditionAST) build() (any, error) {
	if c.Op == nil {
		list := make([]any, len(c.In))
		for n, v := range c.In {
			list[n] = v.value()
		}
		return schema.Cond{Op: schema.Op_In, Value: list}, nil
	}

	v := c.Value.value()
	switch *c.Op {
	case "=":
		return v, nil
	case "!=", "<>":
		return schema.Cond{Op: schema.Op_Ne, Value: v}, nil
	case "<":
		return schema.Cond{Op: schema.Op_Lt, Value: v}, nil
	case "<=":
		return schema.Cond{Op: schema.Op_Lte, Value: v}, nil
	case ">":
		return schema.Cond{Op: schema.Op_Gt, Value: v}, nil
	case ">=":
		return schema.Cond{Op: schema.Op_Gte, Value: v}, nil
	}
	// notest: lexer accepts listed operators only
	return nil, errUnknownOperator(*c.Op, c.Pos)
}

func (v *ValueAST) value() any {
	switch {
	case v.String != nil:
		return *v.String
	case v.Float != nil:
		return *v.Float
	case v.Int != nil:
		return *v.Int
	case v.True:
		return true
	case v.False:
		return false
	}
	return nil
}
