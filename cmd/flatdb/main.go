package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"flatdb/internal/engine"
	"flatdb/internal/render"
	"flatdb/internal/storage/filestore"
)

var (
	dataDir   = flag.String("dir", "data", "Directory holding one file per table")
	format    = flag.String("format", "text", "Output format: text or html")
	cacheSize = flag.Int("cache", engine.DefaultConfig().StatementCacheSize, "Parsed statements to keep (0 disables the cache)")
	verbose   = flag.Bool("v", false, "Log debug events to stderr")
)

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	printer, err := newPrinter(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	db, err := filestore.Open(*dataDir, filestore.Options{Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	eng, err := engine.NewDB(db, engine.Config{StatementCacheSize: *cacheSize, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := eng.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		query := strings.Join(args, " ")
		if err := execAndPrint(eng, printer, os.Stdout, query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			db.Close()
			os.Exit(1)
		}
		return
	}

	runShell(eng, printer, os.Stdin, os.Stdout, os.Stderr)
}

// printer writes one result; title names the query or table it came from.
type printer func(w io.Writer, title string, res engine.QueryResult) error

func newPrinter(format string) (printer, error) {
	switch format {
	case "text":
		return func(w io.Writer, _ string, res engine.QueryResult) error {
			return render.Text(w, res)
		}, nil
	case "html":
		r, err := render.NewHTMLRenderer()
		if err != nil {
			return nil, fmt.Errorf("load html templates: %w", err)
		}
		return r.Render, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or html)", format)
	}
}

func execAndPrint(eng *engine.DBEngine, show printer, w io.Writer, query string) error {
	res, err := eng.Exec(query)
	if err != nil {
		return err
	}
	return show(w, query, res)
}
