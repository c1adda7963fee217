// Command h2gbctl is a small front end over the h2gb core, mirroring the
// teacher's wasm-dump/wasm-run split as two subcommands of one binary
// rather than two binaries: "dump" inspects a saved project, "run"
// replays an action script against one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/h2gb-go/h2gb/buffer"
	"github.com/h2gb-go/h2gb/numcodec"
	"github.com/h2gb-go/h2gb/project"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: h2gbctl <command> [options] args...

commands:
  dump <project.yaml>                print a saved project's structure
  run  <project.yaml> <script>       replay a replscript action script

ex:
 $> h2gbctl dump ./project.yaml
 $> h2gbctl run -o ./out.yaml -new myproject ./project.yaml ./script.h2s

options:
`,
		)
		flag.PrintDefaults()
		os.Exit(1)
	}
}

func main() {
	log.SetPrefix("h2gbctl: ")
	log.SetFlags(0)

	if len(os.Args) < 2 {
		flag.Usage()
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "dump":
		runDump(args)
	case "run":
		runRun(args)
	default:
		log.Printf("unknown command %q", cmd)
		flag.Usage()
	}
}

func runDump(args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	debug := fs.Bool("debug", false, "enable verbose logging")
	fs.Parse(args)

	if fs.NArg() < 1 {
		log.Fatalf("usage: h2gbctl dump [options] <project.yaml>")
	}
	setDebugMode(*debug)

	p, err := loadProject(fs.Arg(0))
	if err != nil {
		log.Fatalf("could not load project: %v", err)
	}
	printProject(os.Stdout, p)
}

func runRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	debug := fs.Bool("debug", false, "enable verbose logging")
	out := fs.String("o", "", "file to save the resulting project to (defaults to overwriting the input)")
	newName := fs.String("new", "", "create a fresh project with this name instead of loading <project.yaml>")
	fs.Parse(args)

	if fs.NArg() < 2 {
		log.Fatalf("usage: h2gbctl run [options] <project.yaml> <script>")
	}
	setDebugMode(*debug)

	projectPath := fs.Arg(0)
	scriptPath := fs.Arg(1)

	var p *project.Project
	var err error
	if *newName != "" {
		p, err = project.New(*newName)
	} else {
		p, err = loadProject(projectPath)
	}
	if err != nil {
		log.Fatalf("could not open project: %v", err)
	}

	if err := runScript(p, scriptPath); err != nil {
		log.Fatalf("could not run script: %v", err)
	}

	dest := *out
	if dest == "" {
		dest = projectPath
	}
	if err := saveProject(p, dest); err != nil {
		log.Fatalf("could not save project: %v", err)
	}
	fmt.Fprintf(os.Stdout, "%s: saved to %s\n", p.Name(), dest)
}

func setDebugMode(v bool) {
	numcodec.SetDebugMode(v)
	buffer.SetDebugMode(v)
	project.SetDebugMode(v)
}
