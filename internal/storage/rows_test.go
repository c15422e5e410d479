package storage

import (
	"errors"
	"reflect"
	"testing"

	"flatdb/internal/sql"
)

var usersHeader = []sql.Column{
	{Name: "id", Type: sql.TypeInt},
	{Name: "name", Type: sql.TypeText},
}

// evalFunc adapts a function to the Evaluator interface.
type evalFunc func(expr sql.Expr, row sql.Row) (bool, error)

func (f evalFunc) EvalExpr(expr sql.Expr, row sql.Row, _ []sql.Column) (bool, error) {
	return f(expr, row)
}

func TestBuildRow_DefaultsAndReorder(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		values  []sql.Field
		want    sql.Row
	}{
		{
			name:    "full header",
			columns: nil,
			values:  []sql.Field{sql.IntField(1), sql.TextField("Alice")},
			want:    sql.Row{sql.IntField(1), sql.TextField("Alice")},
		},
		{
			name:    "missing int column",
			columns: []string{"name"},
			values:  []sql.Field{sql.TextField("X")},
			want:    sql.Row{sql.IntField(0), sql.TextField("X")},
		},
		{
			name:    "missing text column",
			columns: []string{"id"},
			values:  []sql.Field{sql.IntField(7)},
			want:    sql.Row{sql.IntField(7), sql.TextField("")},
		},
		{
			name:    "out of schema order",
			columns: []string{"name", "id"},
			values:  []sql.Field{sql.TextField("Bob"), sql.IntField(2)},
			want:    sql.Row{sql.IntField(2), sql.TextField("Bob")},
		},
	}

	for _, tt := range tests {
		got, err := BuildRow(usersHeader, tt.columns, tt.values)
		if err != nil {
			t.Fatalf("%s: BuildRow failed: %v", tt.name, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestBuildRow_Errors(t *testing.T) {
	_, err := BuildRow(usersHeader, []string{"id", "ghost"}, []sql.Field{sql.IntField(1), sql.IntField(2)})
	var cnf *ColumnNotFoundError
	if !errors.As(err, &cnf) || !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ColumnNotFoundError, got %v", err)
	}
	if !reflect.DeepEqual(cnf.Columns, []string{"ghost"}) {
		t.Fatalf("unexpected missing columns: %v", cnf.Columns)
	}

	_, err = BuildRow(usersHeader, []string{"id", "name"}, []sql.Field{sql.IntField(1)})
	if !errors.Is(err, ErrMalformedInsertInput) {
		t.Fatalf("expected ErrMalformedInsertInput for missing value, got %v", err)
	}

	_, err = BuildRow(usersHeader, []string{"id"}, []sql.Field{sql.IntField(1), sql.TextField("extra")})
	if !errors.Is(err, ErrMalformedInsertInput) {
		t.Fatalf("expected ErrMalformedInsertInput for extra value, got %v", err)
	}

	_, err = BuildRow(usersHeader, []string{"id", "id"}, []sql.Field{sql.IntField(1), sql.IntField(2)})
	if !errors.Is(err, ErrMalformedInsertInput) {
		t.Fatalf("expected ErrMalformedInsertInput for duplicate column, got %v", err)
	}

	_, err = BuildRow(usersHeader, []string{"id"}, []sql.Field{sql.TextField("1")})
	var mt *MistypedInsertError
	if !errors.As(err, &mt) || !errors.Is(err, ErrMistypedInsertInput) {
		t.Fatalf("expected MistypedInsertError, got %v", err)
	}
	if mt.Expected != sql.TypeInt || mt.Value != sql.TextField("1") || mt.Column != "id" {
		t.Fatalf("unexpected error details: %+v", mt)
	}
}

func TestBuildRow_RejectsTextThatCannotBeStored(t *testing.T) {
	for _, v := range []string{"Smith, John", "a\nb", "a\rb", "  padded  ", "trailing ", "\tlead"} {
		_, err := BuildRow(usersHeader, []string{"name"}, []sql.Field{sql.TextField(v)})
		if !errors.Is(err, ErrMalformedInsertInput) {
			t.Fatalf("%q: expected ErrMalformedInsertInput, got %v", v, err)
		}
	}

	// Inner spaces and the empty default are fine.
	for _, v := range []string{"Mary Jane", ""} {
		if _, err := BuildRow(usersHeader, []string{"name"}, []sql.Field{sql.TextField(v)}); err != nil {
			t.Fatalf("%q: BuildRow failed: %v", v, err)
		}
	}
}

func TestResolveColumns_StrictResolution(t *testing.T) {
	idx, err := ResolveColumns(usersHeader, []string{"name", "id", "name"})
	if err != nil {
		t.Fatalf("ResolveColumns failed: %v", err)
	}
	if !reflect.DeepEqual(idx, []int{1, 0, 1}) {
		t.Fatalf("unexpected positions: %v", idx)
	}

	_, err = ResolveColumns(usersHeader, []string{"name", "ghost"})
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound for partial match, got %v", err)
	}

	_, err = ResolveColumns(usersHeader, nil)
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound for empty request, got %v", err)
	}
}

func TestSelectRows_SkipsRaggedRows(t *testing.T) {
	rows := []sql.Row{
		{sql.IntField(1), sql.TextField("Alice")},
		{sql.IntField(2)},
		{sql.IntField(3), sql.TextField("Jane")},
	}

	got, err := SelectRows(usersHeader, rows, []string{"name"}, nil, nil)
	if err != nil {
		t.Fatalf("SelectRows failed: %v", err)
	}
	want := []sql.Row{{sql.TextField("Alice")}, {sql.TextField("Jane")}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got, err = SelectRows(usersHeader, rows, []string{"id"}, nil, nil)
	if err != nil {
		t.Fatalf("SelectRows failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected short row to qualify for id, got %v", got)
	}
}

func TestSelectRows_EveryExpressionMustHold(t *testing.T) {
	rows := []sql.Row{
		{sql.IntField(1), sql.TextField("Alice")},
		{sql.IntField(2), sql.TextField("Rob")},
		{sql.IntField(3), sql.TextField("Jane")},
	}
	first := &sql.Identifier{Name: "first"}
	second := &sql.Identifier{Name: "second"}

	// first: id > 1, second: id < 3
	ev := evalFunc(func(expr sql.Expr, row sql.Row) (bool, error) {
		if expr == first {
			return row[0].Int > 1, nil
		}
		return row[0].Int < 3, nil
	})

	got, err := SelectRows(usersHeader, rows, []string{"id", "name"}, []sql.Expr{first, second}, ev)
	if err != nil {
		t.Fatalf("SelectRows failed: %v", err)
	}
	want := []sql.Row{{sql.IntField(2), sql.TextField("Rob")}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSelectRows_EvaluationErrorAborts(t *testing.T) {
	rows := []sql.Row{
		{sql.IntField(1), sql.TextField("Alice")},
		{sql.IntField(2), sql.TextField("Rob")},
	}
	boom := errors.New("boom")
	ev := evalFunc(func(expr sql.Expr, row sql.Row) (bool, error) {
		if row[0].Int == 2 {
			return false, boom
		}
		return true, nil
	})

	got, err := SelectRows(usersHeader, rows, []string{"name"}, []sql.Expr{&sql.Identifier{Name: "x"}}, ev)
	if !errors.Is(err, boom) {
		t.Fatalf("expected evaluation error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no rows on error, got %v", got)
	}
}

func TestCopyRows_IsDeep(t *testing.T) {
	rows := []sql.Row{{sql.IntField(1)}}
	cp := CopyRows(rows)
	cp[0][0] = sql.IntField(99)
	if rows[0][0].Int != 1 {
		t.Fatalf("CopyRows shares row storage")
	}
}
