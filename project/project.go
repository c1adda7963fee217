// Package project implements the top-level aggregate: named buffers plus
// the action log that is the single source of truth for every mutation
// ever applied to it.
package project

import (
	"github.com/h2gb-go/h2gb/buffer"
	"github.com/h2gb-go/h2gb/herr"
)

// Project is a process-lived aggregate: a display name, a set of uniquely
// named buffers, and an action log recording every mutation made to it.
type Project struct {
	name        string
	initialName string
	buffers     map[string]*buffer.Buffer
	log         *ActionLog
}

// New creates an empty project. Fails with InvalidArgument if name is
// empty.
func New(name string) (*Project, error) {
	if name == "" {
		return nil, herr.New(herr.InvalidArgument, "project name must not be empty")
	}
	return &Project{
		name:        name,
		initialName: name,
		buffers:     map[string]*buffer.Buffer{},
		log:         newActionLog(),
	}, nil
}

// Name returns the project's current display name.
func (p *Project) Name() string {
	return p.name
}

// Buffer returns the named buffer.
func (p *Project) Buffer(name string) (*buffer.Buffer, error) {
	b, ok := p.buffers[name]
	if !ok {
		return nil, herr.New(herr.PreconditionViolated, "buffer %q does not exist", name)
	}
	return b, nil
}

// BufferNames returns every buffer name currently in the project. Order is
// unspecified.
func (p *Project) BufferNames() []string {
	names := make([]string, 0, len(p.buffers))
	for name := range p.buffers {
		names = append(names, name)
	}
	return names
}

// bufferInsert is the only way a new buffer enters the project; it is
// called exclusively by actions, never directly by callers outside the
// action layer.
func (p *Project) bufferInsert(name string, b *buffer.Buffer) error {
	if _, exists := p.buffers[name]; exists {
		return herr.New(herr.PreconditionViolated, "buffer %q already exists", name)
	}
	p.buffers[name] = b
	return nil
}

// bufferRemove is the only way a buffer leaves the project.
func (p *Project) bufferRemove(name string) (*buffer.Buffer, error) {
	b, ok := p.buffers[name]
	if !ok {
		return nil, herr.New(herr.PreconditionViolated, "buffer %q does not exist", name)
	}
	delete(p.buffers, name)
	return b, nil
}

// Do applies a new action, appending it to the log. On failure, the log
// and project state are both unchanged.
func (p *Project) Do(a Action) error {
	return p.log.do(p, a)
}

// Undo reverses the most recently applied action. On failure, the log and
// project state are both unchanged.
func (p *Project) Undo() error {
	return p.log.undo(p)
}

// Redo re-applies the most recently undone action. On failure, the log and
// project state are both unchanged.
func (p *Project) Redo() error {
	return p.log.redo(p)
}

// CanUndo reports whether Undo has anything to act on.
func (p *Project) CanUndo() bool {
	return p.log.cursor > 0
}

// CanRedo reports whether Redo has anything to act on.
func (p *Project) CanRedo() bool {
	return p.log.cursor < len(p.log.actions)
}
