package main

import (
	"os"

	"github.com/h2gb-go/h2gb/herr"
	"github.com/h2gb-go/h2gb/project"
	"github.com/h2gb-go/h2gb/replscript"
	"gopkg.in/yaml.v3"
)

func loadProject(path string) (*project.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wire project.Wire
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&wire); err != nil {
		return nil, herr.New(herr.InvalidArgument, "could not decode %q: %v", path, err)
	}
	return project.Load(wire)
}

func saveProject(p *project.Project, path string) error {
	wire, err := project.Save(p)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()
	return enc.Encode(wire)
}

func runScript(p *project.Project, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	stmts, err := replscript.Parse(src)
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		a, err := replscript.ToAction(stmt)
		if err != nil {
			return err
		}
		if err := p.Do(a); err != nil {
			return herr.New(herr.InvalidArgument, "running %q: %v", stmt.Op, err)
		}
	}
	return nil
}
