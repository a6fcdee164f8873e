package endpoint

import (
	"net/http"
	"path"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/grid"
	"github.com/datagrid/datagrid-apis/log"
	"github.com/datagrid/datagrid-apis/types"
	"github.com/julienschmidt/httprouter"
)

const (
	TablesPathFormat = "/v1/tables"
	RowsPathFormat   = "/v1/tables/%s/rows"
	ViewPathFormat   = "/v1/tables/%s/view"
	SearchPathFormat = "/v1/tables/%s/search"
)

type routeList struct {
	service *grid.Service
	cfg     config.Config
	logger  log.Logger
	params  func(*http.Request, string) string
}

// Routes returns a slice of all the endpoint routes
func Routes(prefix string, cfg config.Config, service *grid.Service) []types.Route {
	rl := routeList{
		service: service,
		cfg:     cfg,
		logger:  cfg.Logger(),
		params:  httprouterParams,
	}

	return []types.Route{
		{
			Method:  http.MethodGet,
			Pattern: path.Join(prefix, "/v1/tables"),
			Handler: http.HandlerFunc(rl.GetTables),
		},
		{
			Method:  http.MethodGet,
			Pattern: path.Join(prefix, "/v1/tables/:tableName/rows"),
			Handler: http.HandlerFunc(rl.GetRows),
		},
		{
			Method:  http.MethodPost,
			Pattern: path.Join(prefix, "/v1/tables/:tableName/view"),
			Handler: http.HandlerFunc(rl.PostView),
		},
		{
			Method:  http.MethodGet,
			Pattern: path.Join(prefix, "/v1/tables/:tableName/search"),
			Handler: http.HandlerFunc(rl.Search),
		},
	}
}

func httprouterParams(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}
