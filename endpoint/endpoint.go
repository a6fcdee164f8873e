package endpoint

import (
	"context"
	"fmt"
	"time"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/db"
	"github.com/datagrid/datagrid-apis/graphql"
	"github.com/datagrid/datagrid-apis/grid"
	"github.com/datagrid/datagrid-apis/log"
	"github.com/datagrid/datagrid-apis/rest"
	"github.com/datagrid/datagrid-apis/types"
	"go.uber.org/zap"
)

type DataEndpointConfig struct {
	dbHosts        []string
	dbUsername     string
	dbPassword     string
	localDc        string
	keyspace       string
	tables         []string
	pageSizes      config.PageSizes
	sortCycle      config.SortCycle
	searchDebounce time.Duration
	updateInterval time.Duration
	naming         config.NamingConvention
	logger         log.Logger
}

func (cfg DataEndpointConfig) PageSizes() config.PageSizes {
	return cfg.pageSizes
}

func (cfg DataEndpointConfig) SortCycle() config.SortCycle {
	return cfg.sortCycle
}

func (cfg DataEndpointConfig) Naming() config.NamingConvention {
	return cfg.naming
}

func (cfg DataEndpointConfig) SearchDebounce() time.Duration {
	return cfg.searchDebounce
}

func (cfg DataEndpointConfig) TablesUpdateInterval() time.Duration {
	return cfg.updateInterval
}

func (cfg DataEndpointConfig) Logger() log.Logger {
	return cfg.logger
}

func (cfg *DataEndpointConfig) WithPageSizes(pageSizes config.PageSizes) *DataEndpointConfig {
	cfg.pageSizes = pageSizes
	return cfg
}

func (cfg *DataEndpointConfig) WithSortCycle(sortCycle config.SortCycle) *DataEndpointConfig {
	cfg.sortCycle = sortCycle
	return cfg
}

func (cfg *DataEndpointConfig) WithSearchDebounce(searchDebounce time.Duration) *DataEndpointConfig {
	cfg.searchDebounce = searchDebounce
	return cfg
}

func (cfg *DataEndpointConfig) WithTablesUpdateInterval(updateInterval time.Duration) *DataEndpointConfig {
	cfg.updateInterval = updateInterval
	return cfg
}

func (cfg *DataEndpointConfig) WithNaming(naming config.NamingConvention) *DataEndpointConfig {
	cfg.naming = naming
	return cfg
}

func (cfg *DataEndpointConfig) WithKeyspace(keyspace string) *DataEndpointConfig {
	cfg.keyspace = keyspace
	return cfg
}

func (cfg *DataEndpointConfig) WithTables(tables []string) *DataEndpointConfig {
	cfg.tables = tables
	return cfg
}

func (cfg *DataEndpointConfig) WithDbUsername(dbUsername string) *DataEndpointConfig {
	cfg.dbUsername = dbUsername
	return cfg
}

func (cfg *DataEndpointConfig) WithLocalDc(localDc string) *DataEndpointConfig {
	cfg.localDc = localDc
	return cfg
}

func (cfg *DataEndpointConfig) WithDbPassword(dbPassword string) *DataEndpointConfig {
	cfg.dbPassword = dbPassword
	return cfg
}

// NewEndpoint connects to the configured hosts and serves the tables of the configured keyspace.
func (cfg DataEndpointConfig) NewEndpoint() (*DataEndpoint, error) {
	if cfg.keyspace == "" {
		return nil, fmt.Errorf("a keyspace is required")
	}
	dbClient, err := db.NewDb(db.ConnectOptions{
		Username: cfg.dbUsername,
		Password: cfg.dbPassword,
		LocalDc:  cfg.localDc,
	}, cfg.logger, cfg.dbHosts...)
	if err != nil {
		return nil, err
	}
	source := db.NewCassandraSource(dbClient, cfg.keyspace, cfg.tables, cfg.naming, cfg.logger)
	return cfg.NewEndpointWithSource(source), nil
}

// NewEndpointWithSource serves any data source, such as a db.MemorySource.
func (cfg DataEndpointConfig) NewEndpointWithSource(source db.Source) *DataEndpoint {
	service := grid.NewService(source, cfg)
	return &DataEndpoint{
		service:         service,
		restRouteGen:    rest.NewRouteGenerator(service, cfg),
		graphQLRouteGen: graphql.NewRouteGenerator(service, cfg),
	}
}

type DataEndpoint struct {
	service         *grid.Service
	restRouteGen    *rest.RouteGenerator
	graphQLRouteGen *graphql.RouteGenerator
}

func NewEndpointConfig(hosts ...string) (*DataEndpointConfig, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewEndpointConfigWithLogger(log.NewZapLogger(logger), hosts...), nil
}

func NewEndpointConfigWithLogger(logger log.Logger, hosts ...string) *DataEndpointConfig {
	return &DataEndpointConfig{
		dbHosts:        hosts,
		pageSizes:      config.DefaultPageSizes,
		sortCycle:      config.SortCycleAscDescNone,
		searchDebounce: config.DefaultSearchDebounce,
		updateInterval: config.DefaultTablesUpdateInterval,
		naming:         config.NewDefaultNaming(),
		logger:         logger,
	}
}

func (e *DataEndpoint) Service() *grid.Service {
	return e.service
}

func (e *DataEndpoint) Tables(ctx context.Context) ([]string, error) {
	return e.service.Tables(ctx)
}

func (e *DataEndpoint) RoutesRest(prefix string) []types.Route {
	return e.restRouteGen.Routes(prefix)
}

func (e *DataEndpoint) RoutesGraphQL(pattern string) ([]types.Route, error) {
	return e.graphQLRouteGen.Routes(pattern)
}

// Close stops refreshing the GraphQL schema.
func (e *DataEndpoint) Close() {
	e.graphQLRouteGen.Stop()
}
