package project

// Null is a no-op action, used as a neutral identity.
type Null struct{}

// NewNull returns a Null action.
func NewNull() *Null {
	return &Null{}
}

func (*Null) Apply(p *Project) error { return nil }
func (*Null) Undo(p *Project) error  { return nil }
