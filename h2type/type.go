// Package h2type implements the recursive typed view over bytes: size,
// children, rendering, and cross-references, uniform over types whose size
// is known ahead of time and types that depend on the bytes they cover.
package h2type

// Range is a half-open byte range, [Start, End).
type Range struct {
	Start uint64
	End   uint64
}

// Len returns the width of the range.
func (r Range) Len() uint64 { return r.End - r.Start }

// Related names a cross-reference from one H2Type to another, e.g. what a
// Pointer targets.
type Related struct {
	Address uint64
	Type    H2Type
}

// TypeKind is the operation set every concrete kind (Number, Character,
// Pointer, IPv4, IPv6, Unicode, Array, …) implements. H2Type forwards each
// of its operations to its Kind through this interface; kinds are plain
// structs.
type TypeKind interface {
	// IsStatic reports whether size is independent of the bytes at ctx.
	IsStatic() bool

	// Size returns the payload size in bytes, excluding alignment padding.
	Size(ctx ResolveContext) (uint64, error)

	// Children returns the immediate structural children, empty for leaves.
	Children(ctx ResolveContext) ([]PartiallyResolved, error)

	// ToString renders this node: a structural name under a Static
	// context, the decoded value under a Dynamic one.
	ToString(ctx ResolveContext) (string, error)

	// Related returns cross-references such as a Pointer's target.
	Related(ctx ResolveContext) ([]Related, error)
}

// leaf is embedded by kinds with no children and no cross-references, so
// they don't each repeat the same two one-line methods.
type leaf struct{}

func (leaf) Children(ctx ResolveContext) ([]PartiallyResolved, error) { return nil, nil }
func (leaf) Related(ctx ResolveContext) ([]Related, error)            { return nil, nil }

// H2Type wraps one TypeKind and an optional byte alignment. Values are
// cheap and cloneable; they carry no byte data of their own, only a
// description of how to interpret bytes someone else owns.
type H2Type struct {
	Kind TypeKind

	// ByteAlignment is the alignment in bytes, or 0 for none.
	ByteAlignment uint64
}

// New wraps kind with no alignment.
func New(kind TypeKind) H2Type {
	return H2Type{Kind: kind}
}

// NewAligned wraps kind, rounding its size up to a multiple of alignment.
func NewAligned(alignment uint64, kind TypeKind) H2Type {
	return H2Type{Kind: kind, ByteAlignment: alignment}
}

func (t H2Type) IsStatic() bool {
	return t.Kind.IsStatic()
}

// Size returns the unaligned payload size.
func (t H2Type) Size(ctx ResolveContext) (uint64, error) {
	return t.Kind.Size(ctx)
}

// AlignedSize returns Size rounded up to a multiple of ByteAlignment, or
// Size unchanged if ByteAlignment is 0.
func (t H2Type) AlignedSize(ctx ResolveContext) (uint64, error) {
	size, err := t.Kind.Size(ctx)
	if err != nil {
		return 0, err
	}
	return roundUpToMultiple(size, t.ByteAlignment), nil
}

func (t H2Type) Children(ctx ResolveContext) ([]PartiallyResolved, error) {
	return t.Kind.Children(ctx)
}

func (t H2Type) ToString(ctx ResolveContext) (string, error) {
	return t.Kind.ToString(ctx)
}

func (t H2Type) Related(ctx ResolveContext) ([]Related, error) {
	return t.Kind.Related(ctx)
}

// FullyResolve flattens this type, starting at ctx's position, into a
// deterministic, in-order list of leaf placements: a node with no children
// contributes itself; a node with children contributes the concatenation
// of each child's own FullyResolve, evaluated at that child's offset.
func (t H2Type) FullyResolve(ctx ResolveContext) ([]PartiallyResolved, error) {
	children, err := t.Children(ctx)
	if err != nil {
		return nil, err
	}

	if len(children) == 0 {
		size, err := t.Size(ctx)
		if err != nil {
			return nil, err
		}
		pos := ctx.Position()
		return []PartiallyResolved{{
			ByteRange: Range{Start: pos, End: pos + size},
			Type:      t,
		}}, nil
	}

	var result []PartiallyResolved
	for _, child := range children {
		sub, err := child.Type.FullyResolve(ctx.At(child.ByteRange.Start))
		if err != nil {
			return nil, err
		}
		result = append(result, sub...)
	}
	return result, nil
}

// PartiallyResolved is one structural child: its byte range, optional field
// name (array index, struct field, …), and the type occupying that range.
type PartiallyResolved struct {
	ByteRange Range
	FieldName string
	Type      H2Type
}

// ToString renders the child's type at its own offset within ctx.
func (p PartiallyResolved) ToString(ctx ResolveContext) (string, error) {
	return p.Type.ToString(ctx.At(p.ByteRange.Start))
}

// roundUpToMultiple rounds size up to the next multiple of alignment.
// alignment == 0 means "no alignment", returning size unchanged.
func roundUpToMultiple(size, alignment uint64) uint64 {
	if alignment == 0 {
		return size
	}
	rem := size % alignment
	if rem == 0 {
		return size
	}
	return size + (alignment - rem)
}
