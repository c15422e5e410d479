package engine

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// Config configures a DBEngine.
type Config struct {
	// StatementCacheSize is the number of parsed statements kept, keyed by
	// query text. Zero or less disables the cache.
	StatementCacheSize int

	// Logger receives query events. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration used by the CLI.
func DefaultConfig() Config {
	return Config{StatementCacheSize: 128}
}

// DBEngine is a session over a catalog of tables: it parses queries,
// resolves the target table and runs the statement.
type DBEngine struct {
	started bool
	catalog storage.Catalog
	cache   *lru.Cache[string, sql.Statement] // nil when disabled
	log     *slog.Logger
}

// NewDB creates a DBEngine over catalog.
func NewDB(catalog storage.Catalog, cfg Config) (*DBEngine, error) {
	e := &DBEngine{
		catalog: catalog,
		log:     cfg.Logger,
	}
	if e.log == nil {
		e.log = slog.New(slog.DiscardHandler)
	}

	if cfg.StatementCacheSize > 0 {
		cache, err := lru.New[string, sql.Statement](cfg.StatementCacheSize)
		if err != nil {
			return nil, fmt.Errorf("statement cache: %w", err)
		}
		e.cache = cache
	}
	return e, nil
}

// Start marks the engine ready for queries.
func (e *DBEngine) Start() error {
	if e.started {
		return ErrAlreadyStarted
	}
	e.started = true
	return nil
}

// Exec parses query (or reuses a cached parse), looks up the target table
// and runs the statement against it.
func (e *DBEngine) Exec(query string) (QueryResult, error) {
	if !e.started {
		return QueryResult{}, ErrNotStarted
	}

	stmt, cached, err := e.prepare(query)
	if err != nil {
		return QueryResult{}, err
	}

	var res QueryResult
	if ct, ok := stmt.(*sql.CreateTableStmt); ok {
		// Creating a table targets the catalog, not an existing table.
		if err := e.CreateTable(ct.TableName, ct.Columns); err != nil {
			return QueryResult{}, err
		}
		res = QueryResult{Kind: ResultEmpty}
	} else {
		table, err := e.catalog.Table(stmt.Table())
		if err != nil {
			return QueryResult{}, err
		}
		res, err = New(stmt).Run(table)
		if err != nil {
			return QueryResult{}, err
		}
	}

	e.log.Debug("query executed",
		"kind", res.Kind,
		"table", stmt.Table(),
		"rows", len(res.Rows),
		"cached", cached)
	return res, nil
}

// prepare returns the parsed statement for query and whether it came from
// the cache. Failed parses are not cached.
func (e *DBEngine) prepare(query string) (sql.Statement, bool, error) {
	if e.cache != nil {
		if stmt, ok := e.cache.Get(query); ok {
			return stmt, true, nil
		}
	}

	stmt, err := sql.Parse(query)
	if err != nil {
		return nil, false, err
	}
	if e.cache != nil {
		e.cache.Add(query, stmt)
	}
	return stmt, false, nil
}

// CachedStatements returns the number of parsed statements held.
func (e *DBEngine) CachedStatements() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

// CreateTable creates a new table in the underlying catalog.
func (e *DBEngine) CreateTable(name string, cols []sql.Column) error {
	if !e.started {
		return ErrNotStarted
	}
	if err := e.catalog.CreateTable(name, cols); err != nil {
		return err
	}
	e.log.Info("table created", "table", name)
	return nil
}

// ListTables returns the names of all tables in the catalog.
func (e *DBEngine) ListTables() ([]string, error) {
	if !e.started {
		return nil, ErrNotStarted
	}
	return e.catalog.ListTables()
}

// TableSchema returns the column definitions for a table.
func (e *DBEngine) TableSchema(name string) ([]sql.Column, error) {
	if !e.started {
		return nil, ErrNotStarted
	}
	return e.catalog.TableSchema(name)
}

// Table returns the named table, for callers that need direct access such
// as full dumps.
func (e *DBEngine) Table(name string) (storage.Table, error) {
	if !e.started {
		return nil, ErrNotStarted
	}
	return e.catalog.Table(name)
}
