package project

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestProjectSaveLoadRoundTrip(t *testing.T) {
	p := mustProject(t, "original")

	if err := p.Do(NewBufferCreateEmpty("b1", 16, 0x1000)); err != nil {
		t.Fatalf("Do(create b1): %v", err)
	}
	if err := p.Do(NewBufferCreateFromBytes("b2", []byte("hello world!"), 0x2000)); err != nil {
		t.Fatalf("Do(create b2): %v", err)
	}
	if err := p.Do(NewProjectRename("renamed")); err != nil {
		t.Fatalf("Do(rename): %v", err)
	}
	if err := p.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	wire, err := Save(p)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := yaml.Marshal(wire)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}

	var roundTripped Wire
	if err := yaml.Unmarshal(out, &roundTripped); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}

	got, err := Load(roundTripped)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got.Name() != "original" {
		t.Errorf("Name() = %q, want %q (rename was undone before save)", got.Name(), "original")
	}
	if _, err := got.Buffer("b1"); err != nil {
		t.Errorf("Buffer(b1): %v", err)
	}
	if _, err := got.Buffer("b2"); err != nil {
		t.Errorf("Buffer(b2): %v", err)
	}
	if !got.CanRedo() {
		t.Error("expected the undone rename to still be redoable after a load")
	}

	if err := got.Redo(); err != nil {
		t.Fatalf("Redo after load: %v", err)
	}
	if got.Name() != "renamed" {
		t.Errorf("after redo, Name() = %q, want %q", got.Name(), "renamed")
	}
}

func TestProjectLoadRejectsBadCursor(t *testing.T) {
	w := Wire{InitialName: "p", Log: LogWire{Cursor: 5}}
	if _, err := Load(w); err == nil {
		t.Fatal("expected error for out-of-range cursor")
	}
}

func TestActionWireRoundTripEachKind(t *testing.T) {
	actions := []Action{
		NewNull(),
		NewProjectRename("x"),
		NewBufferCreateEmpty("b", 4, 0x10),
		NewBufferCreateFromBytes("b", []byte{1, 2, 3}, 0x20),
		NewBufferDelete("b"),
	}
	for _, a := range actions {
		w, err := MarshalAction(a)
		if err != nil {
			t.Fatalf("MarshalAction(%T): %v", a, err)
		}
		if _, err := UnmarshalAction(w); err != nil {
			t.Fatalf("UnmarshalAction(%T): %v", a, err)
		}
	}
}
