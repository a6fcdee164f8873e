package graphql

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/datagrid/datagrid-apis/log"
	"github.com/graphql-go/graphql"
)

// SchemaUpdater rebuilds the schema whenever the list of exposed tables changes.
type SchemaUpdater struct {
	ctx            context.Context
	cancel         context.CancelFunc
	mutex          sync.Mutex
	updateInterval time.Duration
	schema         *graphql.Schema
	schemaGen      *SchemaGenerator
	tablesKey      string
	logger         log.Logger
}

func (su *SchemaUpdater) Schema() *graphql.Schema {
	su.mutex.Lock()
	defer su.mutex.Unlock()
	return su.schema
}

func NewUpdater(schemaGen *SchemaGenerator, updateInterval time.Duration, logger log.Logger) (*SchemaUpdater, error) {
	ctx, cancel := context.WithCancel(context.Background())
	tables, err := schemaGen.listTables(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	schema, err := schemaGen.BuildSchema(tables)
	if err != nil {
		cancel()
		return nil, err
	}

	return &SchemaUpdater{
		ctx:            ctx,
		cancel:         cancel,
		updateInterval: updateInterval,
		schema:         &schema,
		schemaGen:      schemaGen,
		tablesKey:      strings.Join(tables, ","),
		logger:         logger,
	}, nil
}

func (su *SchemaUpdater) Start() {
	for {
		if !su.sleep() {
			return
		}
		su.update()
	}
}

func (su *SchemaUpdater) Stop() {
	su.cancel()
}

func (su *SchemaUpdater) update() {
	tables, err := su.schemaGen.listTables(su.ctx)
	if err != nil {
		su.logger.Error("unable to list tables",
			"error", err)
		return
	}

	key := strings.Join(tables, ",")
	if key == su.tablesKey {
		return
	}

	schema, err := su.schemaGen.BuildSchema(tables)
	if err != nil {
		su.logger.Error("unable to build graphql schema",
			"tables", key, "error", err)
		return
	}

	su.logger.Info("graphql schema rebuilt", "tables", key)
	su.mutex.Lock()
	su.schema = &schema
	su.mutex.Unlock()
	su.tablesKey = key
}

func (su *SchemaUpdater) sleep() bool {
	select {
	case <-time.After(su.updateInterval):
		return true
	case <-su.ctx.Done():
		return false
	}
}
