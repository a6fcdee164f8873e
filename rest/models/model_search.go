package models

import "github.com/datagrid/datagrid-apis/search"

type SearchQuery struct {
	Query  string `mapstructure:"q" validate:"max=256"`
	Column string `mapstructure:"column" validate:"required"`
	Limit  int    `mapstructure:"limit" validate:"gte=0,lte=100"`
}

type SearchResponse struct {
	Options []search.Option `json:"options"`
	HasMore bool            `json:"hasMore"`
}
