// Package render formats query results for people: a plain text table for
// terminals and an HTML page.
package render

import (
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/google/safehtml/template"

	"flatdb/internal/engine"
)

//go:embed templates/*
var templateFS embed.FS

const cellSep = " | "

// Text writes result as a pipe-separated table followed by a row count.
// A result without rows prints "ok".
func Text(w io.Writer, result engine.QueryResult) error {
	if result.Kind != engine.ResultRows {
		_, err := io.WriteString(w, "ok\n")
		return err
	}

	var b strings.Builder
	b.WriteString(strings.Join(result.Columns, cellSep))
	b.WriteByte('\n')
	for _, row := range cellStrings(result) {
		b.WriteString(strings.Join(row, cellSep))
		b.WriteByte('\n')
	}
	b.WriteString(rowCount(len(result.Rows)))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

func rowCount(n int) string {
	if n == 1 {
		return "(1 row)"
	}
	return fmt.Sprintf("(%d rows)", n)
}

func cellStrings(result engine.QueryResult) [][]string {
	out := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		cells := make([]string, len(row))
		for j, f := range row {
			cells[j] = f.String()
		}
		out[i] = cells
	}
	return out
}

// resultView is the data handed to the HTML template.
type resultView struct {
	Title   string
	Empty   bool
	Columns []string
	Rows    [][]string
	Count   int
}

// HTMLRenderer renders results as an HTML page.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the embedded result template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	tmpl, err := template.New("results.html").ParseFS(trustedFS, "templates/results.html")
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render writes result as an HTML page titled title. Cell contents are
// escaped by the template.
func (r *HTMLRenderer) Render(w io.Writer, title string, result engine.QueryResult) error {
	vm := resultView{
		Title:   title,
		Empty:   result.Kind != engine.ResultRows,
		Columns: result.Columns,
		Rows:    cellStrings(result),
		Count:   len(result.Rows),
	}
	return r.tmpl.Execute(w, vm)
}
