package rowstore

import (
	"fmt"
	"slices"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/hupe1980/rowstore/table"
)

// Table is the surface shared by both table variants registered in a Store.
type Table interface {
	RowCount() int
	ColumnCount() int
	ColumnNames() []string
	Schema() table.Schema
}

// Store is a registry of named tables. The registry itself is safe for
// concurrent use; the tables it hands out are not, and callers must
// serialize access per table.
type Store struct {
	logger  *Logger
	metrics MetricsCollector
	tables  *xsync.MapOf[string, Table]
}

// NewStore creates an empty Store.
func NewStore(optFns ...func(*Options)) *Store {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}
	return &Store{
		logger:  logger,
		metrics: metrics,
		tables:  xsync.NewMapOf[string, Table](),
	}
}

// CreatePositionalTable registers an empty positional table under name.
func (s *Store) CreatePositionalTable(name string, schema table.Schema) (*PositionalTable, error) {
	inner, err := table.NewPositionalTable(schema)
	if err != nil {
		return nil, translateError(err)
	}
	wrapped := &PositionalTable{
		name:    name,
		inner:   inner,
		logger:  s.logger.WithTable(name),
		metrics: s.metrics,
	}
	if err := s.register(name, wrapped, "positional"); err != nil {
		return nil, err
	}
	return wrapped, nil
}

// CreateIdentityTable registers an empty identity table under name.
func (s *Store) CreateIdentityTable(name string, schema table.Schema) (*IdentityTable, error) {
	inner, err := table.NewIdentityTable(schema)
	if err != nil {
		return nil, translateError(err)
	}
	wrapped := &IdentityTable{
		name:    name,
		inner:   inner,
		logger:  s.logger.WithTable(name),
		metrics: s.metrics,
	}
	if err := s.register(name, wrapped, "identity"); err != nil {
		return nil, err
	}
	return wrapped, nil
}

func (s *Store) register(name string, t Table, kind string) error {
	if _, loaded := s.tables.LoadOrStore(name, t); loaded {
		return fmt.Errorf("%w: %q", ErrTableExists, name)
	}
	s.logger.Info("table created", "table", name, "kind", kind, "columns", t.ColumnCount())
	return nil
}

// Table returns the table registered under name, of either variant.
func (s *Store) Table(name string) (Table, error) {
	t, ok := s.tables.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	return t, nil
}

// PositionalTable returns the positional table registered under name.
func (s *Store) PositionalTable(name string) (*PositionalTable, error) {
	t, err := s.Table(name)
	if err != nil {
		return nil, err
	}
	pt, ok := t.(*PositionalTable)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a positional table", ErrTableKind, name)
	}
	return pt, nil
}

// IdentityTable returns the identity table registered under name.
func (s *Store) IdentityTable(name string) (*IdentityTable, error) {
	t, err := s.Table(name)
	if err != nil {
		return nil, err
	}
	it, ok := t.(*IdentityTable)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an identity table", ErrTableKind, name)
	}
	return it, nil
}

// Drop removes the table registered under name.
func (s *Store) Drop(name string) error {
	if _, ok := s.tables.LoadAndDelete(name); !ok {
		return fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	s.logger.Info("table dropped", "table", name)
	return nil
}

// Names returns the registered table names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, s.tables.Size())
	s.tables.Range(func(name string, _ Table) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

// Len returns the number of registered tables.
func (s *Store) Len() int {
	return s.tables.Size()
}
