package replscript

import (
	"encoding/hex"

	"github.com/h2gb-go/h2gb/herr"
	"github.com/h2gb-go/h2gb/project"
)

// ToAction translates one parsed Statement into the project.Action it
// names. buffer-create-from-bytes takes its payload as a hex string (so a
// script stays plain text) rather than a quoted binary literal.
func ToAction(stmt Statement) (project.Action, error) {
	switch stmt.Op {
	case "null":
		if len(stmt.Args) != 0 {
			return nil, herr.New(herr.InvalidArgument, "null takes no arguments")
		}
		return project.NewNull(), nil

	case "project-rename":
		name, err := stringArg(stmt, 0)
		if err != nil {
			return nil, err
		}
		return project.NewProjectRename(name), nil

	case "buffer-create-empty":
		name, err := stringArg(stmt, 0)
		if err != nil {
			return nil, err
		}
		size, err := numberArg(stmt, 1)
		if err != nil {
			return nil, err
		}
		base, err := numberArg(stmt, 2)
		if err != nil {
			return nil, err
		}
		return project.NewBufferCreateEmpty(name, size, base), nil

	case "buffer-create-from-bytes":
		name, err := stringArg(stmt, 0)
		if err != nil {
			return nil, err
		}
		hexStr, err := stringArg(stmt, 1)
		if err != nil {
			return nil, err
		}
		data, err := hex.DecodeString(hexStr)
		if err != nil {
			return nil, herr.New(herr.InvalidArgument, "buffer-create-from-bytes: bad hex payload: %v", err)
		}
		base, err := numberArg(stmt, 2)
		if err != nil {
			return nil, err
		}
		return project.NewBufferCreateFromBytes(name, data, base), nil

	case "buffer-delete":
		name, err := stringArg(stmt, 0)
		if err != nil {
			return nil, err
		}
		return project.NewBufferDelete(name), nil

	default:
		return nil, herr.New(herr.InvalidArgument, "unknown statement operator %q", stmt.Op)
	}
}

// FromAction translates a project.Action back into a Statement, the
// inverse of ToAction, so cmd/h2gbctl dump can print a project's action
// log back out as a script.
func FromAction(a project.Action) (Statement, error) {
	w, err := project.MarshalAction(a)
	if err != nil {
		return Statement{}, err
	}
	switch w.Kind {
	case "null":
		return Statement{Op: "null"}, nil
	case "project_rename":
		return Statement{Op: "project-rename", Args: []Value{strVal(w.NewName)}}, nil
	case "buffer_create_empty":
		return Statement{Op: "buffer-create-empty", Args: []Value{strVal(w.Name), numVal(w.Size), numVal(w.BaseAddress)}}, nil
	case "buffer_create_from_bytes":
		return Statement{Op: "buffer-create-from-bytes", Args: []Value{strVal(w.Name), strVal(hex.EncodeToString(w.Data)), numVal(w.BaseAddress)}}, nil
	case "buffer_delete":
		return Statement{Op: "buffer-delete", Args: []Value{strVal(w.Name)}}, nil
	default:
		return Statement{}, herr.New(herr.InvalidArgument, "unknown action kind %q", w.Kind)
	}
}

func strVal(s string) Value { return Value{Kind: ValueString, Str: s} }
func numVal(n uint64) Value { return Value{Kind: ValueNumber, Num: n} }

func stringArg(stmt Statement, i int) (string, error) {
	if i >= len(stmt.Args) {
		return "", herr.New(herr.InvalidArgument, "%s: missing argument %d", stmt.Op, i)
	}
	arg := stmt.Args[i]
	if arg.Kind != ValueString {
		return "", herr.New(herr.InvalidArgument, "%s: argument %d must be a string", stmt.Op, i)
	}
	return arg.Str, nil
}

func numberArg(stmt Statement, i int) (uint64, error) {
	if i >= len(stmt.Args) {
		return 0, herr.New(herr.InvalidArgument, "%s: missing argument %d", stmt.Op, i)
	}
	arg := stmt.Args[i]
	if arg.Kind != ValueNumber {
		return 0, herr.New(herr.InvalidArgument, "%s: argument %d must be a number", stmt.Op, i)
	}
	return arg.Num, nil
}
