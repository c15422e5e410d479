package render

import (
	"bytes"
	"strings"
	"testing"

	"flatdb/internal/engine"
	"flatdb/internal/sql"
)

var users = engine.QueryResult{
	Kind:    engine.ResultRows,
	Columns: []string{"id", "name"},
	Rows: []sql.Row{
		{sql.IntField(1), sql.TextField("Alice")},
		{sql.IntField(-2), sql.TextField("Rob")},
	},
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, users); err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	want := "id | name\n1 | Alice\n-2 | Rob\n(2 rows)\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n got  %q\n want %q", buf.String(), want)
	}
}

func TestTextSingleRowAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	one := engine.QueryResult{Kind: engine.ResultRows, Columns: []string{"name"}, Rows: []sql.Row{{sql.TextField("Jane")}}}
	if err := Text(&buf, one); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if buf.String() != "name\nJane\n(1 row)\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}

	buf.Reset()
	if err := Text(&buf, engine.QueryResult{Kind: engine.ResultEmpty}); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if buf.String() != "ok\n" {
		t.Fatalf("unexpected output for empty result: %q", buf.String())
	}
}

func TestHTMLRenderer(t *testing.T) {
	r, err := NewHTMLRenderer()
	if err != nil {
		t.Fatalf("NewHTMLRenderer failed: %v", err)
	}

	res := users
	res.Rows = append([]sql.Row{{sql.IntField(0), sql.TextField("<b>bold</b>")}}, users.Rows...)

	var buf bytes.Buffer
	if err := r.Render(&buf, "users", res); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>users</title>",
		"<th>id</th><th>name</th>",
		"<td>1</td><td>Alice</td>",
		"<td>-2</td><td>Rob</td>",
		"&lt;b&gt;bold&lt;/b&gt;",
		"3 rows",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<b>bold</b>") {
		t.Fatalf("cell content was not escaped:\n%s", out)
	}
}

func TestHTMLRendererEmpty(t *testing.T) {
	r, err := NewHTMLRenderer()
	if err != nil {
		t.Fatalf("NewHTMLRenderer failed: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Render(&buf, "insert", engine.QueryResult{Kind: engine.ResultEmpty}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<p>ok</p>") || strings.Contains(buf.String(), "<table>") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}
