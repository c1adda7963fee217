package project

import "github.com/h2gb-go/h2gb/herr"

type renameState int

const (
	renamePending renameState = iota
	renameDone
)

// ProjectRename renames the project, modeled as a two-state machine rather
// than two parallel optional payloads: exactly one of "pending" (holding
// the name to apply) or "done" (holding the name to restore) is
// representable at any moment.
type ProjectRename struct {
	state   renameState
	newName string
	oldName string
}

// NewProjectRename builds a pending rename to newName.
func NewProjectRename(newName string) *ProjectRename {
	return &ProjectRename{state: renamePending, newName: newName}
}

func (a *ProjectRename) Apply(p *Project) error {
	if a.state != renamePending {
		return herr.New(herr.MissingContext, "project rename: missing forward context")
	}
	if a.newName == "" {
		return herr.New(herr.InvalidArgument, "new project name must not be empty")
	}

	oldName := p.name
	p.name = a.newName
	a.oldName = oldName
	a.state = renameDone
	return nil
}

func (a *ProjectRename) Undo(p *Project) error {
	if a.state != renameDone {
		return herr.New(herr.MissingContext, "project rename: missing backward context")
	}

	newName := p.name
	p.name = a.oldName
	a.newName = newName
	a.state = renamePending
	return nil
}
