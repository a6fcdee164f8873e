package rest

import (
	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/grid"
	restEndpointV1 "github.com/datagrid/datagrid-apis/rest/endpoint/v1"
	"github.com/datagrid/datagrid-apis/types"
)

type RouteGenerator struct {
	service *grid.Service
	config  config.Config
}

func NewRouteGenerator(service *grid.Service, cfg config.Config) *RouteGenerator {
	return &RouteGenerator{
		service: service,
		config:  cfg,
	}
}

func (g *RouteGenerator) Routes(prefix string) []types.Route {
	return restEndpointV1.Routes(prefix, g.config, g.service)
}
