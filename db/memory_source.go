package db

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	e "github.com/datagrid/datagrid-apis/rest/errors"
	"github.com/datagrid/datagrid-apis/table"
)

// MemorySource serves tables held in memory. Fields of its rows are snake_case.
type MemorySource struct {
	mutex  sync.RWMutex
	tables map[string][]map[string]interface{}
}

func NewMemorySource(tables map[string][]map[string]interface{}) *MemorySource {
	if tables == nil {
		tables = make(map[string][]map[string]interface{})
	}
	return &MemorySource{tables: tables}
}

// LoadMemorySource reads a JSON object mapping each table name to an array of rows.
func LoadMemorySource(r io.Reader) (*MemorySource, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	tables := make(map[string][]map[string]interface{})
	if err := decoder.Decode(&tables); err != nil {
		return nil, fmt.Errorf("unable to decode table data: %w", err)
	}
	return NewMemorySource(tables), nil
}

// Put replaces the rows of a table.
func (s *MemorySource) Put(tableName string, rows []map[string]interface{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.tables[tableName] = rows
}

func (s *MemorySource) Tables(ctx context.Context) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemorySource) rows(tableName string) ([]map[string]interface{}, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rows, ok := s.tables[tableName]
	if !ok {
		return nil, e.NewNotFoundError(fmt.Sprintf("table '%s' not found", tableName))
	}
	return append([]map[string]interface{}(nil), rows...), nil
}

func (s *MemorySource) Fetch(ctx context.Context, tableName string, state table.QueryState) (*Page, error) {
	rows, err := s.rows(tableName)
	if err != nil {
		return nil, err
	}

	if state.OrderBy != "" {
		sortRows(rows, state.OrderBy, state.SortOrder)
	}

	return &Page{Rows: pageRows(rows, state), RowCount: len(rows)}, nil
}

func (s *MemorySource) Search(
	ctx context.Context,
	tableName string,
	column string,
	query string,
	limit int,
) ([]map[string]interface{}, error) {
	rows, err := s.rows(tableName)
	if err != nil {
		return nil, err
	}
	return matchRows(rows, column, query, limit), nil
}
