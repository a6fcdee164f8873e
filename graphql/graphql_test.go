package graphql

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/db"
	"github.com/datagrid/datagrid-apis/grid"
	"github.com/datagrid/datagrid-apis/internal/testutil"
	"github.com/datagrid/datagrid-apis/types"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const (
	getIndex  = 0
	postIndex = 1
)

type responseBody struct {
	Data   map[string]interface{} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func newRoutes(t *testing.T, source db.Source) (*RouteGenerator, []types.Route) {
	cfg := config.NewConfigMock().Default()
	generator := NewRouteGenerator(grid.NewService(source, cfg), cfg)
	routes, err := generator.Routes("/graphql")
	require.NoError(t, err)
	require.Len(t, routes, 2)
	return generator, routes
}

func executePost(t *testing.T, routes []types.Route, body RequestBody) responseBody {
	b, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(b))
	w := httptest.NewRecorder()
	routes[postIndex].Handler.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)

	var response responseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	return response
}

func TestRowsQuery(t *testing.T) {
	defer goleak.VerifyNone(t)
	generator, routes := newRoutes(t, testutil.NewMemorySource())
	defer generator.Stop()

	response := executePost(t, routes, RequestBody{Query: `query {
  rows(table: INVOICES, page: 1, orderBy: "total_amount", sortOrder: DESC) {
    state { page pageSize orderBy sortOrder }
    rows
    pagination { currentPage pageCount rowCount showPager items { page ellipsis } }
    sorting { columnId indicator }
    body { kind }
  }
}`})
	require.Empty(t, response.Errors)

	rows := response.Data["rows"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{
		"page": float64(1), "pageSize": float64(5), "orderBy": "total_amount", "sortOrder": "DESC",
	}, rows["state"])

	values := rows["rows"].([]interface{})
	require.Len(t, values, 5)
	assert.Equal(t, "inv-07", values[0].(map[string]interface{})["id"])

	pagination := rows["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["currentPage"])
	assert.Equal(t, float64(3), pagination["pageCount"])
	assert.Equal(t, true, pagination["showPager"])
	assert.Len(t, pagination["items"], 3)

	assert.Equal(t, map[string]interface{}{"columnId": "totalAmount", "indicator": "desc"}, rows["sorting"])
	assert.Equal(t, map[string]interface{}{"kind": "rows"}, rows["body"])
}

func TestViewQuery(t *testing.T) {
	defer goleak.VerifyNone(t)
	generator, routes := newRoutes(t, testutil.NewMemorySource())
	defer generator.Stop()

	response := executePost(t, routes, RequestBody{
		Query: `query ($action: ActionInput!) {
  view(table: INVOICES, state: {page: 2, pageSize: 5}, action: $action) {
    state { page pageSize }
  }
}`,
		Variables: map[string]interface{}{"action": map[string]interface{}{"type": "PAGE_SIZE", "pageSize": 10}},
	})
	require.Empty(t, response.Errors)
	view := response.Data["view"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"page": float64(1), "pageSize": float64(10)}, view["state"])

	response = executePost(t, routes, RequestBody{Query: `query {
  view(table: INVOICES, state: {pageSize: 7}, action: {type: REFRESH}) { state { page } }
}`})
	require.Len(t, response.Errors, 1)
	assert.Equal(t, "page size 7 is not one of [5 10 30 50]", response.Errors[0].Message)
}

func TestSearchAndFormatQueries(t *testing.T) {
	defer goleak.VerifyNone(t)
	generator, routes := newRoutes(t, testutil.NewMemorySource())
	defer generator.Stop()

	response := executePost(t, routes, RequestBody{Query: `query {
  tables
  search(table: INVOICES, column: "customerName", query: "ana") { value label }
  formatAmount(value: "1234.5", locale: "en", showSymbol: false)
}`})
	require.Empty(t, response.Errors)
	assert.Equal(t, []interface{}{"CUSTOMERS", "INVOICES"}, response.Data["tables"])
	assert.Equal(t, []interface{}{
		map[string]interface{}{"value": "inv-01", "label": "Ana"},
		map[string]interface{}{"value": "inv-10", "label": "Joana"},
		map[string]interface{}{"value": "inv-12", "label": "Luana"},
	}, response.Data["search"])
	assert.Equal(t, "1,234.50", response.Data["formatAmount"])
}

func TestGetRoute(t *testing.T) {
	defer goleak.VerifyNone(t)
	generator, routes := newRoutes(t, testutil.NewMemorySource())
	defer generator.Stop()

	query := url.Values{"query": {`{ rows(table: CUSTOMERS) { body { kind message } } }`}}
	r := httptest.NewRequest(http.MethodGet, "/graphql?"+query.Encode(), nil)
	w := httptest.NewRecorder()
	routes[getIndex].Handler.ServeHTTP(w, r)

	var response responseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	require.Empty(t, response.Errors)
	body := response.Data["rows"].(map[string]interface{})["body"]
	assert.Equal(t, map[string]interface{}{"kind": "noResults", "message": "No results"}, body)
}

func TestSchemaUpdater_Update(t *testing.T) {
	source := testutil.NewMemorySource()
	cfg := config.NewConfigMock().Default()
	schemaGen := NewSchemaGenerator(grid.NewService(source, cfg), cfg)

	updater, err := NewUpdater(schemaGen, time.Hour, testutil.TestLogger())
	require.NoError(t, err)
	defer updater.Stop()

	assert.NotContains(t, tableValues(updater.Schema()), "SALES_ORDERS")

	updater.update()
	schema := updater.Schema()
	updater.update()
	assert.Same(t, schema, updater.Schema(), "schema should not be rebuilt when tables are unchanged")

	source.Put("sales_orders", []map[string]interface{}{})
	updater.update()
	assert.Contains(t, tableValues(updater.Schema()), "SALES_ORDERS")
}

func tableValues(schema *graphql.Schema) []string {
	enum := schema.Type("Table").(*graphql.Enum)
	names := make([]string, 0)
	for _, value := range enum.Values() {
		names = append(names, value.Name)
	}
	return names
}

func TestDateWindowQuery(t *testing.T) {
	defer goleak.VerifyNone(t)
	generator, routes := newRoutes(t, testutil.NewMemorySource())
	defer generator.Stop()

	response := executePost(t, routes, RequestBody{Query: `query {
  dateWindow(
    from: "2024-03-15",
    before: {days: 5},
    after: {months: 1, days: 2},
    ranges: [{from: "2024-03-20", to: "2024-03-21"}],
    days: ["2024-03-09", "2024-03-10", "2024-03-20", "2024-03-22", "2024-04-17", "2024-04-18"]
  ) { before after disabled }
  rootFontSize(density: 17)
  defaultSize: rootFontSize
}`})
	require.Empty(t, response.Errors)

	window := response.Data["dateWindow"].(map[string]interface{})
	assert.Equal(t, "2024-03-10T00:00:00Z", window["before"])
	assert.Equal(t, "2024-04-17T00:00:00Z", window["after"])
	assert.Equal(t, []interface{}{"2024-03-09T00:00:00Z", "2024-03-20T00:00:00Z", "2024-04-18T00:00:00Z"},
		window["disabled"])
	assert.Equal(t, float64(18), response.Data["rootFontSize"])
	assert.Equal(t, float64(16), response.Data["defaultSize"])
}

func TestDateWindowOpenSides(t *testing.T) {
	defer goleak.VerifyNone(t)
	generator, routes := newRoutes(t, testutil.NewMemorySource())
	defer generator.Stop()

	response := executePost(t, routes, RequestBody{Query: `query {
  dateWindow(from: "2024-03-15", days: ["2000-01-01"]) { before after disabled }
}`})
	require.Empty(t, response.Errors)
	window := response.Data["dateWindow"].(map[string]interface{})
	assert.Nil(t, window["before"])
	assert.Nil(t, window["after"])
	assert.Equal(t, []interface{}{}, window["disabled"])
}
