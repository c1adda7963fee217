package project

import "github.com/h2gb-go/h2gb/herr"

// Action is one project-level mutation: Apply consumes its forward payload
// and produces a backward payload; Undo consumes backward and reproduces
// forward. Calling Apply twice, or Undo before a matching Apply, fails with
// a MissingContext error.
type Action interface {
	Apply(p *Project) error
	Undo(p *Project) error
}

// ActionLog is a linear sequence of applied/undone actions with a cursor:
// actions[:cursor] have been applied, actions[cursor:] are redoable.
type ActionLog struct {
	actions []Action
	cursor  int
}

func newActionLog() *ActionLog {
	return &ActionLog{}
}

// do applies a, then truncates any redoable tail and appends it. If apply
// fails, the log is untouched.
func (l *ActionLog) do(p *Project, a Action) error {
	if err := a.Apply(p); err != nil {
		return err
	}
	l.actions = append(l.actions[:l.cursor], a)
	l.cursor++
	return nil
}

// undo calls Undo on the most recently applied action and decrements the
// cursor. If there is nothing to undo, or Undo fails, the cursor does not
// move.
func (l *ActionLog) undo(p *Project) error {
	if l.cursor == 0 {
		return herr.New(herr.MissingContext, "nothing to undo")
	}
	a := l.actions[l.cursor-1]
	if err := a.Undo(p); err != nil {
		return err
	}
	l.cursor--
	return nil
}

// redo re-applies the next undone action and increments the cursor. If
// there is nothing to redo, or Apply fails, the cursor does not move.
func (l *ActionLog) redo(p *Project) error {
	if l.cursor >= len(l.actions) {
		return herr.New(herr.MissingContext, "nothing to redo")
	}
	a := l.actions[l.cursor]
	if err := a.Apply(p); err != nil {
		return err
	}
	l.cursor++
	return nil
}
