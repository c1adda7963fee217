package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/h2gb-go/h2gb/project"
)

func TestRunScriptThenSaveThenLoadThenDump(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "script.h2s")
	projectPath := filepath.Join(dir, "project.yaml")

	script := `
(buffer-create-empty "b1" 16 0x1000)
(buffer-create-from-bytes "b2" "68656c6c6f" 0x2000)
(project-rename "renamed")
`
	if err := os.WriteFile(scriptPath, []byte(script), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := project.New("original")
	if err != nil {
		t.Fatalf("project.New: %v", err)
	}
	if err := runScript(p, scriptPath); err != nil {
		t.Fatalf("runScript: %v", err)
	}
	if p.Name() != "renamed" {
		t.Fatalf("Name() = %q, want %q", p.Name(), "renamed")
	}

	if err := saveProject(p, projectPath); err != nil {
		t.Fatalf("saveProject: %v", err)
	}

	loaded, err := loadProject(projectPath)
	if err != nil {
		t.Fatalf("loadProject: %v", err)
	}
	if loaded.Name() != "renamed" {
		t.Fatalf("loaded Name() = %q, want %q", loaded.Name(), "renamed")
	}
	if _, err := loaded.Buffer("b1"); err != nil {
		t.Fatalf("Buffer(b1): %v", err)
	}

	var out bytes.Buffer
	printProject(&out, loaded)
	dump := out.String()
	if !strings.Contains(dump, `project: "renamed"`) {
		t.Errorf("dump missing project header:\n%s", dump)
	}
	if !strings.Contains(dump, "b1") || !strings.Contains(dump, "b2") {
		t.Errorf("dump missing buffer names:\n%s", dump)
	}
	if !strings.Contains(dump, "buffer-create-empty") {
		t.Errorf("dump missing replayed action log:\n%s", dump)
	}
}
