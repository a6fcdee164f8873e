package db

import (
	"encoding/hex"
	"errors"

	"github.com/gocql/gocql"
)

type QueryOptions struct {
	Consistency       gocql.Consistency
	SerialConsistency gocql.SerialConsistency
	// PageSize of zero leaves the driver default.
	PageSize  int
	PageState string
}

func NewQueryOptions() *QueryOptions {
	return &QueryOptions{
		Consistency:       gocql.LocalOne,
		SerialConsistency: gocql.LocalSerial,
	}
}

func (q *QueryOptions) WithConsistency(consistency gocql.Consistency) *QueryOptions {
	q.Consistency = consistency
	return q
}

func (q *QueryOptions) WithPageSize(pageSize int) *QueryOptions {
	q.PageSize = pageSize
	return q
}

func (q *QueryOptions) WithPageState(pageState string) *QueryOptions {
	q.PageState = pageState
	return q
}

type Session interface {
	// ExecuteIter executes a statement and returns a single page of the result set. When the options
	// carry no page size all the rows are returned.
	ExecuteIter(query string, options *QueryOptions, values ...interface{}) (ResultSet, error)

	KeyspaceMetadata(keyspaceName string) (*gocql.KeyspaceMetadata, error)
}

type ResultSet interface {
	// PageState is the hex encoded paging state, empty after the last page.
	PageState() string
	Values() []map[string]interface{}
}

type goCqlResultIterator struct {
	pageState []byte
	values    []map[string]interface{}
}

func (r *goCqlResultIterator) PageState() string {
	return hex.EncodeToString(r.pageState)
}

func (r *goCqlResultIterator) Values() []map[string]interface{} {
	return r.values
}

func newResultIterator(iter *gocql.Iter, singlePage bool) (*goCqlResultIterator, error) {
	columns := iter.Columns()
	scanner := iter.Scanner()

	// The driver fetches following pages transparently, stop at the end of the first one.
	limit := -1
	if singlePage {
		limit = iter.NumRows()
	}

	items := make([]map[string]interface{}, 0)
	for limit != 0 && scanner.Next() {
		row, err := mapScan(scanner, columns)
		if err != nil {
			return nil, err
		}
		items = append(items, row)
		limit--
	}

	pageState := iter.PageState()
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return &goCqlResultIterator{
		pageState: pageState,
		values:    items,
	}, nil
}

type GoCqlSession struct {
	ref *gocql.Session
}

func (session *GoCqlSession) ExecuteIter(query string, options *QueryOptions, values ...interface{}) (ResultSet, error) {
	q := session.ref.Query(query, values...)
	singlePage := false

	if options != nil {
		q.Consistency(options.Consistency)

		if options.SerialConsistency != gocql.Serial && options.SerialConsistency != gocql.LocalSerial {
			return nil, errors.New("invalid serial consistency")
		}
		q.SerialConsistency(options.SerialConsistency)

		if options.PageSize > 0 {
			singlePage = true
			q.PageSize(options.PageSize)
		}

		if options.PageState != "" {
			state, err := hex.DecodeString(options.PageState)
			if err != nil {
				return nil, errors.New("invalid page state")
			}
			q.PageState(state)
		}
	}

	return newResultIterator(q.Iter(), singlePage)
}

func (session *GoCqlSession) KeyspaceMetadata(keyspaceName string) (*gocql.KeyspaceMetadata, error) {
	return session.ref.KeyspaceMetadata(keyspaceName)
}

func (session *GoCqlSession) Close() {
	session.ref.Close()
}
