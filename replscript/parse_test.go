package replscript

import "testing"

func TestParseStatements(t *testing.T) {
	src := `
; a comment
(buffer-create-empty "b1" 16 0x1000)
(project-rename "renamed")
(buffer-delete "b1")
`
	stmts, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(stmts))
	}

	if stmts[0].Op != "buffer-create-empty" {
		t.Errorf("stmts[0].Op = %q", stmts[0].Op)
	}
	if len(stmts[0].Args) != 3 {
		t.Fatalf("stmts[0].Args = %d, want 3", len(stmts[0].Args))
	}
	if stmts[0].Args[0].Str != "b1" {
		t.Errorf("stmts[0].Args[0] = %+v", stmts[0].Args[0])
	}
	if stmts[0].Args[1].Num != 16 {
		t.Errorf("stmts[0].Args[1] = %+v", stmts[0].Args[1])
	}
	if stmts[0].Args[2].Num != 0x1000 {
		t.Errorf("stmts[0].Args[2] = %+v, want 0x1000", stmts[0].Args[2])
	}

	if stmts[1].Op != "project-rename" || stmts[1].Args[0].Str != "renamed" {
		t.Errorf("stmts[1] = %+v", stmts[1])
	}
	if stmts[2].Op != "buffer-delete" || stmts[2].Args[0].Str != "b1" {
		t.Errorf("stmts[2] = %+v", stmts[2])
	}
}

func TestParseRejectsUnclosedStatement(t *testing.T) {
	if _, err := Parse([]byte(`(buffer-delete "b1"`)); err == nil {
		t.Fatal("expected error for unclosed statement")
	}
}

func TestParseRejectsMissingOperator(t *testing.T) {
	if _, err := Parse([]byte(`()`)); err == nil {
		t.Fatal("expected error for missing operator")
	}
}
