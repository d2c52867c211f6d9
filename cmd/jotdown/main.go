package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-jotdown"
	"github.com/goliatone/go-jotdown/internal/logging"
)

var moduleBuilder = jotdown.New

const usage = `usage: jotdown [-config file] [-data-dir dir] [-log-level level] <command> [flags]

commands:
  init                 create the data and notes directories
  list                 print stored notes as JSON
  parse -file path     parse a file (use - for stdin) and print its blocks
  parse -note name     parse a stored note and print its blocks
  warm [-limit n]      parse stored notes into the cache`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("jotdown: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("jotdown", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to a JSON config file")
	dataDir := fs.String("data-dir", "", "Override the platform data directory")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.Usage = func() { fmt.Fprintln(fs.Output(), usage) }

	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	name, cmdArgs := rest[0], rest[1:]
	ctx = logging.ContextWithFields(ctx, map[string]any{"cli_command": name})
	if name == "parse" {
		if path, ok, err := parseFileFlag(cmdArgs); err != nil {
			return err
		} else if ok {
			return parseFile(path, stdin, stdout)
		}
	}

	cfg := jotdown.DefaultConfig()
	if strings.TrimSpace(*configPath) != "" {
		loaded, err := jotdown.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if trimmed := strings.TrimSpace(*dataDir); trimmed != "" {
		cfg.DataDir = trimmed
	}
	if trimmed := strings.TrimSpace(*logLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	switch name {
	case "init":
		return runInit(ctx, module, stdout)
	case "list":
		return runList(ctx, module, stdout)
	case "parse":
		return runParseNote(ctx, module, cmdArgs, stdout)
	case "warm":
		return runWarm(ctx, module, cmdArgs, stdout)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", name)
	}
}

func runInit(ctx context.Context, module *jotdown.Module, stdout io.Writer) error {
	if err := module.Commands().Prepare.Execute(ctx, jotdown.PrepareDataDirCommand{}); err != nil {
		return fmt.Errorf("prepare data dir: %w", err)
	}
	fmt.Fprintln(stdout, "data directory ready")
	return nil
}

func runList(ctx context.Context, module *jotdown.Module, stdout io.Writer) error {
	headings, err := module.Notes().ListNotes(ctx)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}
	if headings == nil {
		headings = []jotdown.NoteHeading{}
	}
	return writeJSON(stdout, headings)
}

func runParseNote(ctx context.Context, module *jotdown.Module, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	note := fs.String("note", "", "Stored note to parse, relative to the notes directory")
	fs.String("file", "", "File to parse (use - for stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var parsed *jotdown.ParsedNote
	err := module.Commands().Parse.Execute(ctx, jotdown.ParseNoteCommand{
		Path: strings.TrimSpace(*note),
		Sink: func(n *jotdown.ParsedNote) { parsed = n },
	})
	if err != nil {
		return fmt.Errorf("parse note: %w", err)
	}
	return writeBlocks(stdout, parsed.Result)
}

func runWarm(ctx context.Context, module *jotdown.Module, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("warm", flag.ContinueOnError)
	limit := fs.Int("limit", 0, "Maximum number of notes to parse (0 parses all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := module.Commands().Warm.Execute(ctx, jotdown.WarmNotesCommand{Limit: *limit}); err != nil {
		return fmt.Errorf("warm notes: %w", err)
	}
	fmt.Fprintln(stdout, "notes warmed")
	return nil
}

// parseFileFlag reports whether parse was invoked with -file.
func parseFileFlag(args []string) (string, bool, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("file", "", "")
	fs.String("note", "", "")
	if err := fs.Parse(args); err != nil {
		return "", false, err
	}
	path := strings.TrimSpace(*file)
	return path, path != "", nil
}

func parseFile(path string, stdin io.Reader, stdout io.Writer) error {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return writeBlocks(stdout, jotdown.Parse(data))
}

func writeBlocks(w io.Writer, result jotdown.Result) error {
	blocks := result.Blocks
	if blocks == nil {
		blocks = []jotdown.Block{}
	}
	return writeJSON(w, blocks)
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
