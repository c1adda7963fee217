package replscript

import (
	"bytes"
	"testing"
)

func TestWriteToThenParseRoundTrips(t *testing.T) {
	stmts := []Statement{
		{Op: "buffer-create-empty", Args: []Value{strVal("b1"), numVal(16), numVal(0x1000)}},
		{Op: "project-rename", Args: []Value{strVal("renamed")}},
		{Op: "buffer-delete", Args: []Value{strVal("b1")}},
	}

	var buf bytes.Buffer
	if err := WriteTo(&buf, stmts); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	back, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse(%q): %v", buf.String(), err)
	}
	if len(back) != len(stmts) {
		t.Fatalf("got %d statements, want %d", len(back), len(stmts))
	}
	for i, stmt := range back {
		if stmt.Op != stmts[i].Op {
			t.Errorf("stmts[%d].Op = %q, want %q", i, stmt.Op, stmts[i].Op)
		}
		if len(stmt.Args) != len(stmts[i].Args) {
			t.Errorf("stmts[%d].Args = %+v, want %+v", i, stmt.Args, stmts[i].Args)
		}
	}
}
