package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/grid"
	"github.com/datagrid/datagrid-apis/log"
	"github.com/datagrid/datagrid-apis/types"
	"github.com/graphql-go/graphql"
)

type executeQueryFunc func(query string, variables map[string]interface{}, ctx context.Context) *graphql.Result

type RouteGenerator struct {
	updateInterval time.Duration
	logger         log.Logger
	schemaGen      *SchemaGenerator
	updater        *SchemaUpdater
}

type RequestBody struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func NewRouteGenerator(service *grid.Service, cfg config.Config) *RouteGenerator {
	return &RouteGenerator{
		updateInterval: cfg.TablesUpdateInterval(),
		logger:         cfg.Logger(),
		schemaGen:      NewSchemaGenerator(service, cfg),
	}
}

// Routes builds the schema and starts refreshing it in the background until Stop is called.
func (rg *RouteGenerator) Routes(pattern string) ([]types.Route, error) {
	updater, err := NewUpdater(rg.schemaGen, rg.updateInterval, rg.logger)
	if err != nil {
		return nil, fmt.Errorf("unable to build graphql schema: %s", err)
	}

	rg.updater = updater
	go updater.Start()

	return routesForSchema(pattern, func(query string, variables map[string]interface{}, ctx context.Context) *graphql.Result {
		return rg.executeQuery(query, variables, ctx, *updater.Schema())
	}), nil
}

func (rg *RouteGenerator) Stop() {
	if rg.updater != nil {
		rg.updater.Stop()
	}
}

func routesForSchema(pattern string, execute executeQueryFunc) []types.Route {
	return []types.Route{
		{
			Method:  http.MethodGet,
			Pattern: pattern,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var variables map[string]interface{}
				if raw := r.URL.Query().Get("variables"); raw != "" {
					if err := json.Unmarshal([]byte(raw), &variables); err != nil {
						http.Error(w, "Variables are invalid", http.StatusBadRequest)
						return
					}
				}
				writeResult(w, execute(r.URL.Query().Get("query"), variables, r.Context()))
			}),
		},
		{
			Method:  http.MethodPost,
			Pattern: pattern,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Body == nil {
					http.Error(w, "No request body", http.StatusBadRequest)
					return
				}

				var body RequestBody
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					http.Error(w, "Request body is invalid", http.StatusBadRequest)
					return
				}

				writeResult(w, execute(body.Query, body.Variables, r.Context()))
			}),
		},
	}
}

func writeResult(w http.ResponseWriter, result *graphql.Result) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, "response could not be encoded: "+err.Error(), http.StatusInternalServerError)
	}
}

func (rg *RouteGenerator) executeQuery(
	query string,
	variables map[string]interface{},
	ctx context.Context,
	schema graphql.Schema,
) *graphql.Result {
	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ctx,
	})
	if len(result.Errors) > 0 {
		rg.logger.Debug("errors processing graphql query", "errors", result.Errors)
	}
	return result
}
