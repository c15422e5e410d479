package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"flatdb/internal/engine"
	"flatdb/internal/sql"
)

// runShell reads one statement or meta command per line until EOF or .quit.
// Errors are reported on errOut and do not stop the loop.
func runShell(eng *engine.DBEngine, show printer, in io.Reader, out, errOut io.Writer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			quit, err := handleMetaCommand(eng, show, out, line)
			if err != nil {
				fmt.Fprintf(errOut, "Error: %v\n", err)
			}
			if quit {
				return
			}
			continue
		}

		if err := execAndPrint(eng, show, out, line); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "Error reading input: %v\n", err)
	}
}

// handleMetaCommand processes dot commands. It reports true to end the shell.
func handleMetaCommand(eng *engine.DBEngine, show printer, out io.Writer, line string) (bool, error) {
	parts := strings.Fields(line)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case ".quit", ".exit":
		return true, nil

	case ".help":
		printHelp(out)
		return false, nil

	case ".tables":
		names, err := eng.ListTables()
		if err != nil {
			return false, err
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return false, nil

	case ".schema":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: .schema TABLE")
		}
		cols, err := eng.TableSchema(args[0])
		if err != nil {
			return false, err
		}
		for _, c := range cols {
			fmt.Fprintf(out, "%s %s\n", c.Name, c.Type)
		}
		return false, nil

	case ".dump":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: .dump TABLE")
		}
		return false, dumpTable(eng, show, out, args[0])

	default:
		return false, fmt.Errorf("unknown command %s (try .help)", parts[0])
	}
}

// dumpTable prints every stored row of a table with all its columns.
func dumpTable(eng *engine.DBEngine, show printer, out io.Writer, name string) error {
	tbl, err := eng.Table(name)
	if err != nil {
		return err
	}
	rows, err := tbl.SelectAll()
	if err != nil {
		return err
	}
	res := engine.QueryResult{
		Kind:    engine.ResultRows,
		Columns: sql.ColumnNames(tbl.Header()),
		Rows:    rows,
	}
	return show(out, name, res)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "Statements:")
	fmt.Fprintln(out, "  SELECT col[, col...] FROM table [WHERE expr [AND expr...]]")
	fmt.Fprintln(out, "  INSERT INTO table [(col[, col...])] VALUES (value[, value...])")
	fmt.Fprintln(out, "  CREATE TABLE table (col TYPE[, col TYPE...])")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  .tables          List all tables")
	fmt.Fprintln(out, "  .schema TABLE    Show the columns of a table")
	fmt.Fprintln(out, "  .dump TABLE      Print every row of a table")
	fmt.Fprintln(out, "  .quit            Exit")
}
