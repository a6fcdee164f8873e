package db

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/log"
	e "github.com/datagrid/datagrid-apis/rest/errors"
	"github.com/datagrid/datagrid-apis/table"
	"github.com/gocql/gocql"
)

// MaxSortedRows is the largest table CassandraSource sorts. CQL can only order within a partition so
// sorted pages are built from a full read of the table.
const MaxSortedRows = 10000

// MaxScannedRows bounds the rows read to answer a search.
const MaxScannedRows = 1000

// CassandraSource pages through the tables of a single keyspace.
type CassandraSource struct {
	db       *Db
	keyspace string
	tables   []string
	naming   config.NamingConvention
	logger   log.Logger
}

// NewCassandraSource exposes tables of keyspace. When tables is empty every table of the keyspace
// is exposed.
func NewCassandraSource(
	db *Db,
	keyspace string,
	tables []string,
	naming config.NamingConvention,
	logger log.Logger,
) *CassandraSource {
	return &CassandraSource{
		db:       db,
		keyspace: keyspace,
		tables:   tables,
		naming:   naming,
		logger:   logger,
	}
}

func (s *CassandraSource) Tables(ctx context.Context) ([]string, error) {
	keyspace, err := s.db.Keyspace(s.keyspace)
	if err != nil {
		return nil, fmt.Errorf("unable to describe keyspace %s: %w", s.keyspace, err)
	}

	names := make([]string, 0, len(keyspace.Tables))
	for name := range keyspace.Tables {
		if s.exposed(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *CassandraSource) exposed(name string) bool {
	if len(s.tables) == 0 {
		return true
	}
	for _, t := range s.tables {
		if t == name {
			return true
		}
	}
	return false
}

func (s *CassandraSource) tableMetadata(name string) (*gocql.TableMetadata, error) {
	if !s.exposed(name) {
		return nil, e.NewNotFoundError(fmt.Sprintf("table '%s' not found", name))
	}
	keyspace, err := s.db.Keyspace(s.keyspace)
	if err != nil {
		return nil, fmt.Errorf("unable to describe keyspace %s: %w", s.keyspace, err)
	}
	metadata, ok := keyspace.Tables[name]
	if !ok {
		return nil, e.NewNotFoundError(fmt.Sprintf("table '%s' not found", name))
	}
	return metadata, nil
}

func (s *CassandraSource) Fetch(ctx context.Context, tableName string, state table.QueryState) (*Page, error) {
	metadata, err := s.tableMetadata(tableName)
	if err != nil {
		return nil, err
	}

	rowCount, err := s.count(tableName)
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{}
	if state.OrderBy == "" {
		rows, err = s.walkPages(ctx, tableName, state)
	} else {
		rows, err = s.sortedPage(tableName, metadata, state, rowCount)
	}
	if err != nil {
		return nil, err
	}

	return &Page{Rows: rows, RowCount: rowCount}, nil
}

func (s *CassandraSource) count(tableName string) (int, error) {
	rs, err := s.db.Execute(countQuery(s.keyspace, tableName), NewQueryOptions())
	if err != nil {
		return 0, fmt.Errorf("unable to count rows of %s: %w", tableName, err)
	}
	values := rs.Values()
	if len(values) == 0 {
		return 0, nil
	}
	return toInt(values[0]["count"])
}

// walkPages follows the driver paging state up to the requested page.
func (s *CassandraSource) walkPages(ctx context.Context, tableName string, state table.QueryState) ([]map[string]interface{}, error) {
	query := selectQuery(s.keyspace, tableName, false)
	pageState := ""
	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		options := NewQueryOptions().WithPageSize(state.PageSize).WithPageState(pageState)
		rs, err := s.db.Execute(query, options)
		if err != nil {
			return nil, fmt.Errorf("unable to read page %d of %s: %w", page, tableName, err)
		}

		if page == state.Page {
			return rs.Values(), nil
		}

		pageState = rs.PageState()
		if pageState == "" {
			return []map[string]interface{}{}, nil
		}
	}
}

func (s *CassandraSource) sortedPage(
	tableName string,
	metadata *gocql.TableMetadata,
	state table.QueryState,
	rowCount int,
) ([]map[string]interface{}, error) {
	column := s.naming.ToCQLColumn(state.OrderBy)
	if _, ok := metadata.Columns[column]; !ok {
		return nil, e.NewBadRequestError(fmt.Sprintf("unable to order by '%s': no such column", state.OrderBy))
	}
	if rowCount > MaxSortedRows {
		return nil, e.NewBadRequestError(fmt.Sprintf("table '%s' has too many rows to be sorted", tableName))
	}

	rs, err := s.db.Execute(selectQuery(s.keyspace, tableName, true), NewQueryOptions(), MaxSortedRows)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", tableName, err)
	}

	rows := rs.Values()
	s.logger.Debug("sorting rows in memory", "table", tableName, "column", column, "rows", len(rows))
	sortRows(rows, column, state.SortOrder)
	return pageRows(rows, state), nil
}

func (s *CassandraSource) Search(
	ctx context.Context,
	tableName string,
	column string,
	query string,
	limit int,
) ([]map[string]interface{}, error) {
	metadata, err := s.tableMetadata(tableName)
	if err != nil {
		return nil, err
	}

	cqlColumn := s.naming.ToCQLColumn(column)
	if _, ok := metadata.Columns[cqlColumn]; !ok {
		return nil, e.NewBadRequestError(fmt.Sprintf("unable to search '%s': no such column", column))
	}

	rs, err := s.db.Execute(selectQuery(s.keyspace, tableName, true), NewQueryOptions(), MaxScannedRows)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", tableName, err)
	}
	return matchRows(rs.Values(), cqlColumn, query, limit), nil
}

func toInt(value interface{}) (int, error) {
	switch v := deref(value).(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	case nil:
		return 0, nil
	default:
		return 0, e.NewInternalError(fmt.Sprintf("unexpected count value %v", v))
	}
}
