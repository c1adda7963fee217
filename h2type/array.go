package h2type

import (
	"strconv"
	"strings"

	"github.com/h2gb-go/h2gb/herr"
)

// Array lays Length copies of Element out contiguously starting at the
// context position. Each element's offset stride is its AlignedSize (so an
// element's own inner alignment is respected), but each element's exposed
// range uses its unaligned Size — alignment padding sits between elements,
// never inside one.
type Array struct {
	Element H2Type
	Length  uint64
}

// NewArray builds an Array H2Type. length must be non-zero; a zero-length
// array is rejected here rather than producing a type nobody can resolve.
func NewArray(length uint64, element H2Type) (H2Type, error) {
	if length == 0 {
		return H2Type{}, herr.New(herr.InvalidArgument, "empty array: length must be greater than zero")
	}
	return New(Array{Element: element, Length: length}), nil
}

func (a Array) IsStatic() bool {
	return a.Element.IsStatic()
}

func (a Array) Size(ctx ResolveContext) (uint64, error) {
	if !a.IsStatic() {
		return 0, herr.New(herr.NeedsDynamicContext, "cannot calculate size of a dynamic array without walking its elements")
	}

	elementSize, err := a.Element.AlignedSize(ctx)
	if err != nil {
		return 0, err
	}
	return a.Length * elementSize, nil
}

func (a Array) Children(ctx ResolveContext) ([]PartiallyResolved, error) {
	result := make([]PartiallyResolved, 0, a.Length)
	start := ctx.Position()

	for i := uint64(0); i < a.Length; i++ {
		elementCtx := ctx.At(start)

		exposedSize, err := a.Element.Size(elementCtx)
		if err != nil {
			return nil, err
		}
		result = append(result, PartiallyResolved{
			ByteRange: Range{Start: start, End: start + exposedSize},
			FieldName: strconv.FormatUint(i, 10),
			Type:      a.Element,
		})

		stride, err := a.Element.AlignedSize(elementCtx)
		if err != nil {
			return nil, err
		}
		start += stride
	}

	return result, nil
}

func (a Array) ToString(ctx ResolveContext) (string, error) {
	children, err := a.Children(ctx)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(children))
	for i, c := range children {
		s, err := c.ToString(ctx)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func (Array) Related(ctx ResolveContext) ([]Related, error) {
	return nil, nil
}
