package project

import "github.com/h2gb-go/h2gb/herr"

// ActionWire is the kind-tagged wire shape every Action variant round-trips
// through. Only the forward (construction-time) inputs are persisted —
// not an action's live applied/pending state — because Load reconstructs
// state purely by replaying the log, per the "replay reproduces the
// project byte-for-byte" contract in spec.md §6.
type ActionWire struct {
	Kind        string `yaml:"kind"`
	NewName     string `yaml:"new_name,omitempty"`
	Name        string `yaml:"name,omitempty"`
	Size        uint64 `yaml:"size,omitempty"`
	BaseAddress uint64 `yaml:"base_address,omitempty"`
	Data        []byte `yaml:"data,omitempty"`
}

// MarshalAction converts a to its kind-tagged wire form.
func MarshalAction(a Action) (ActionWire, error) {
	switch v := a.(type) {
	case *Null:
		return ActionWire{Kind: "null"}, nil
	case *ProjectRename:
		return ActionWire{Kind: "project_rename", NewName: v.newName}, nil
	case *BufferCreateEmpty:
		return ActionWire{Kind: "buffer_create_empty", Name: v.name, Size: v.size, BaseAddress: v.baseAddress}, nil
	case *BufferCreateFromBytes:
		return ActionWire{Kind: "buffer_create_from_bytes", Name: v.name, Data: v.data, BaseAddress: v.baseAddress}, nil
	case *BufferDelete:
		return ActionWire{Kind: "buffer_delete", Name: v.name}, nil
	default:
		return ActionWire{}, herr.New(herr.InvalidArgument, "unknown action type %T", a)
	}
}

// UnmarshalAction rebuilds a pending Action from its kind-tagged wire form.
func UnmarshalAction(w ActionWire) (Action, error) {
	switch w.Kind {
	case "null":
		return NewNull(), nil
	case "project_rename":
		return NewProjectRename(w.NewName), nil
	case "buffer_create_empty":
		return NewBufferCreateEmpty(w.Name, w.Size, w.BaseAddress), nil
	case "buffer_create_from_bytes":
		return NewBufferCreateFromBytes(w.Name, w.Data, w.BaseAddress), nil
	case "buffer_delete":
		return NewBufferDelete(w.Name), nil
	default:
		return nil, herr.New(herr.InvalidArgument, "unknown action kind %q", w.Kind)
	}
}

// LogWire is the wire shape of an ActionLog: every action ever appended, in
// order, plus the cursor separating applied actions from the redoable tail.
type LogWire struct {
	Actions []ActionWire `yaml:"actions,omitempty"`
	Cursor  int          `yaml:"cursor"`
}

// Wire is the wire shape of a Project. Deliberately omits a buffer
// snapshot: the log is the single source of truth (spec.md §1), so Load
// reconstructs every buffer, its transform stack and its layers purely by
// replaying actions[:cursor] against a freshly created project named
// InitialName. Persisting a parallel buffer snapshot would reintroduce the
// two-sources-of-truth problem the action log exists to avoid.
type Wire struct {
	InitialName string  `yaml:"initial_name"`
	Log         LogWire `yaml:"log"`
}

// Save converts p to its wire form.
func Save(p *Project) (Wire, error) {
	w := Wire{
		InitialName: p.initialName,
		Log:         LogWire{Cursor: p.log.cursor},
	}
	for _, a := range p.log.actions {
		aw, err := MarshalAction(a)
		if err != nil {
			return Wire{}, err
		}
		w.Log.Actions = append(w.Log.Actions, aw)
	}
	return w, nil
}

// Load rebuilds a Project from its wire form by replaying
// w.Log.Actions[:w.Log.Cursor] against a freshly created project named
// w.InitialName, then keeping the full action slice (including any
// redoable tail past the cursor) so Redo still works after loading.
func Load(w Wire) (*Project, error) {
	p, err := New(w.InitialName)
	if err != nil {
		return nil, err
	}

	if w.Log.Cursor < 0 || w.Log.Cursor > len(w.Log.Actions) {
		return nil, herr.New(herr.InvalidArgument, "log cursor %d out of range for %d actions", w.Log.Cursor, len(w.Log.Actions))
	}

	actions := make([]Action, len(w.Log.Actions))
	for i, aw := range w.Log.Actions {
		a, err := UnmarshalAction(aw)
		if err != nil {
			return nil, err
		}
		actions[i] = a
	}

	for i := 0; i < w.Log.Cursor; i++ {
		if err := actions[i].Apply(p); err != nil {
			return nil, herr.New(herr.InvalidArgument, "replaying action %d while loading project: %v", i, err)
		}
	}

	p.log.actions = actions
	p.log.cursor = w.Log.Cursor
	return p, nil
}
