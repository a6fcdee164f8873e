package endpoint

import (
	"context"
	"testing"
	"time"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEndpointConfigDefaults(t *testing.T) {
	cfg := NewEndpointConfigWithLogger(testutil.TestLogger(), "127.0.0.1")
	assert.Equal(t, []string{"127.0.0.1"}, cfg.dbHosts)
	assert.Equal(t, config.DefaultPageSizes, cfg.PageSizes())
	assert.Equal(t, config.SortCycleAscDescNone, cfg.SortCycle())
	assert.Equal(t, config.DefaultSearchDebounce, cfg.SearchDebounce())
	assert.Equal(t, config.DefaultTablesUpdateInterval, cfg.TablesUpdateInterval())
	assert.NotNil(t, cfg.Naming())
	assert.NotNil(t, cfg.Logger())
}

func TestDataEndpointConfigBuilder(t *testing.T) {
	cfg := NewEndpointConfigWithLogger(testutil.TestLogger()).
		WithPageSizes(config.PageSizes{10, 20}).
		WithSortCycle(config.SortCycleAscDesc).
		WithSearchDebounce(time.Second).
		WithTablesUpdateInterval(time.Minute).
		WithKeyspace("store").
		WithTables([]string{"invoices"}).
		WithDbUsername("user").
		WithDbPassword("secret").
		WithLocalDc("dc1")

	assert.Equal(t, config.PageSizes{10, 20}, cfg.PageSizes())
	assert.Equal(t, config.SortCycleAscDesc, cfg.SortCycle())
	assert.Equal(t, time.Second, cfg.SearchDebounce())
	assert.Equal(t, time.Minute, cfg.TablesUpdateInterval())
	assert.Equal(t, "store", cfg.keyspace)
	assert.Equal(t, []string{"invoices"}, cfg.tables)
	assert.Equal(t, "user", cfg.dbUsername)
	assert.Equal(t, "secret", cfg.dbPassword)
	assert.Equal(t, "dc1", cfg.localDc)
}

func TestNewEndpointRequiresKeyspace(t *testing.T) {
	_, err := NewEndpointConfigWithLogger(testutil.TestLogger(), "127.0.0.1").NewEndpoint()
	assert.EqualError(t, err, "a keyspace is required")
}

func TestNewEndpointWithSource(t *testing.T) {
	e := NewEndpointConfigWithLogger(testutil.TestLogger()).NewEndpointWithSource(testutil.NewMemorySource())
	tables, err := e.Tables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"customers", "invoices"}, tables)
	assert.Len(t, e.RoutesRest("/rest"), 4)

	routes, err := e.RoutesGraphQL("/graphql")
	require.NoError(t, err)
	assert.Len(t, routes, 2)
	e.Close()
}
