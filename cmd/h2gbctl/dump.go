package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/h2gb-go/h2gb/project"
	"github.com/h2gb-go/h2gb/replscript"
)

// printProject writes a human-readable summary of p's current state,
// mirroring the teacher's printHeaders/printDetails split: a short header
// line per buffer, then the action log that produced it.
func printProject(w io.Writer, p *project.Project) {
	fmt.Fprintf(w, "project: %q\n\n", p.Name())
	fmt.Fprintf(w, "buffers:\n")

	names := p.BufferNames()
	sort.Strings(names)
	for _, name := range names {
		b, err := p.Buffer(name)
		if err != nil {
			fmt.Fprintf(w, "  %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "  %9s  base=%#08x  len=%d  transforms=%d  populated=%v\n",
			name, b.BaseAddress(), b.Len(), len(b.Transformations()), b.IsPopulated())
	}

	fmt.Fprintf(w, "\naction log:\n")
	wire, err := project.Save(p)
	if err != nil {
		fmt.Fprintf(w, "  could not render action log: %v\n", err)
		return
	}
	for i, aw := range wire.Log.Actions {
		a, err := project.UnmarshalAction(aw)
		if err != nil {
			fmt.Fprintf(w, "  %d: %v\n", i, err)
			continue
		}
		stmt, err := replscript.FromAction(a)
		if err != nil {
			fmt.Fprintf(w, "  %d: %v\n", i, err)
			continue
		}
		marker := " "
		if i == wire.Log.Cursor-1 {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %3d: ", marker, i)
		replscript.WriteTo(w, []replscript.Statement{stmt})
	}
}
