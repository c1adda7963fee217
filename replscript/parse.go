package replscript

import (
	"fmt"
	"strconv"

	"github.com/h2gb-go/h2gb/herr"
)

// ValueKind names the shape of one Statement argument.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueNumber
)

// Value is one argument to a Statement: either a string literal or a
// number literal (decimal or 0x-prefixed hex).
type Value struct {
	Kind ValueKind
	Str  string
	Num  uint64
}

// Statement is one parenthesized form: an operator name followed by zero
// or more argument Values. It is a neutral AST the caller (ToAction,
// cmd/h2gbctl) turns into a concrete project.Action.
type Statement struct {
	Op   string
	Args []Value
}

// Parse scans src and returns every top-level statement it contains.
func Parse(src []byte) ([]Statement, error) {
	s := NewScanner(src)
	var stmts []Statement

	for {
		tok := s.Next()
		if len(s.Errors) > 0 {
			return nil, s.Errors[0]
		}
		if tok.Kind == EOF {
			break
		}
		if tok.Kind != LPAR {
			return nil, herr.New(herr.InvalidArgument, "%d:%d: expected '(', got %v", tok.Line, tok.Column, tok)
		}

		op := s.Next()
		if op.Kind != IDENT {
			return nil, herr.New(herr.InvalidArgument, "%d:%d: expected an operator name, got %v", op.Line, op.Column, op)
		}
		stmt := Statement{Op: op.Text}

		for {
			arg := s.Next()
			if len(s.Errors) > 0 {
				return nil, s.Errors[0]
			}
			switch arg.Kind {
			case RPAR:
				stmts = append(stmts, stmt)
				goto nextStatement
			case STRING:
				stmt.Args = append(stmt.Args, Value{Kind: ValueString, Str: arg.Text})
			case NUMBER:
				n, err := parseNumber(arg.Text)
				if err != nil {
					return nil, herr.New(herr.InvalidArgument, "%d:%d: %v", arg.Line, arg.Column, err)
				}
				stmt.Args = append(stmt.Args, Value{Kind: ValueNumber, Num: n})
			case EOF:
				return nil, herr.New(herr.InvalidArgument, "%d:%d: unclosed statement %q", arg.Line, arg.Column, stmt.Op)
			default:
				return nil, herr.New(herr.InvalidArgument, "%d:%d: unexpected token %v in statement %q", arg.Line, arg.Column, arg, stmt.Op)
			}
		}
	nextStatement:
	}

	return stmts, nil
}

func parseNumber(text string) (uint64, error) {
	if len(text) > 1 && (text[1] == 'x' || text[1] == 'X') {
		return strconv.ParseUint(text[2:], 16, 64)
	}
	return strconv.ParseUint(text, 10, 64)
}

// String returns the value as text: a string literal as-is, a number in
// decimal.
func (v Value) String() string {
	if v.Kind == ValueString {
		return v.Str
	}
	return fmt.Sprintf("%d", v.Num)
}
