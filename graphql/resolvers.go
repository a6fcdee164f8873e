package graphql

import (
	"time"

	"github.com/datagrid/datagrid-apis/format"
	"github.com/datagrid/datagrid-apis/grid"
	"github.com/datagrid/datagrid-apis/table"
	"github.com/datagrid/datagrid-apis/types"
	"github.com/graphql-go/graphql"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/inf.v0"
)

type rowsArgs struct {
	Table            string `mapstructure:"table"`
	table.QueryState `mapstructure:",squash"`
}

type viewArgs struct {
	Table  string           `mapstructure:"table"`
	State  table.QueryState `mapstructure:"state"`
	Action grid.Action      `mapstructure:"action"`
}

type searchArgs struct {
	Table  string `mapstructure:"table"`
	Column string `mapstructure:"column"`
	Query  string `mapstructure:"query"`
	Limit  int    `mapstructure:"limit"`
}

func (sg *SchemaGenerator) tablesResolver() graphql.FieldResolveFn {
	return func(params graphql.ResolveParams) (interface{}, error) {
		return sg.service.Tables(params.Context)
	}
}

// withDefaults fills the page size a client left out.
func (sg *SchemaGenerator) withDefaults(state table.QueryState) table.QueryState {
	if state.PageSize == 0 {
		state.PageSize = sg.cfg.PageSizes().Default()
	}
	if state.SortOrder == "" {
		state.SortOrder = table.Ascending
	}
	return state
}

func (sg *SchemaGenerator) rowsResolver() graphql.FieldResolveFn {
	return func(params graphql.ResolveParams) (interface{}, error) {
		var args rowsArgs
		if err := mapstructure.Decode(params.Args, &args); err != nil {
			return nil, err
		}

		result, err := sg.service.Rows(params.Context, args.Table, sg.withDefaults(args.QueryState))
		if err != nil {
			return nil, err
		}
		return adaptResult(result), nil
	}
}

func (sg *SchemaGenerator) viewResolver() graphql.FieldResolveFn {
	return func(params graphql.ResolveParams) (interface{}, error) {
		var args viewArgs
		if err := mapstructure.Decode(params.Args, &args); err != nil {
			return nil, err
		}

		result, err := sg.service.Apply(params.Context, args.Table, sg.withDefaults(args.State), args.Action)
		if err != nil {
			return nil, err
		}
		return adaptResult(result), nil
	}
}

func (sg *SchemaGenerator) searchResolver() graphql.FieldResolveFn {
	return func(params graphql.ResolveParams) (interface{}, error) {
		var args searchArgs
		if err := mapstructure.Decode(params.Args, &args); err != nil {
			return nil, err
		}
		if args.Query == "" {
			return []interface{}{}, nil
		}
		return sg.service.Search(params.Context, args.Table, args.Column, args.Query, args.Limit)
	}
}

// adaptResult converts a result into maps for the default field resolver.
func adaptResult(result *types.RowsResult) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(result.Pagination.Items))
	for _, item := range result.Pagination.Items {
		if item.IsEllipsis() {
			items = append(items, map[string]interface{}{"page": nil, "ellipsis": true})
			continue
		}
		items = append(items, map[string]interface{}{"page": item.Page(), "ellipsis": false})
	}

	rows := make([]interface{}, 0, len(result.Rows))
	for _, r := range result.Rows {
		rows = append(rows, r)
	}

	adapted := map[string]interface{}{
		"state": map[string]interface{}{
			"page":      result.State.Page,
			"pageSize":  result.State.PageSize,
			"orderBy":   result.State.OrderBy,
			"sortOrder": result.State.SortOrder,
		},
		"rows": rows,
		"pagination": map[string]interface{}{
			"page":        result.Pagination.Page,
			"pageSize":    result.Pagination.PageSize,
			"pageCount":   result.Pagination.PageCount,
			"rowCount":    result.Pagination.RowCount,
			"currentPage": result.Pagination.CurrentPage,
			"items":       items,
			"pageSizes":   result.Pagination.PageSizes,
			"canPrevious": result.Pagination.CanPrevious,
			"canNext":     result.Pagination.CanNext,
			"showPager":   result.Pagination.ShowPager,
		},
		"body": map[string]interface{}{
			"kind":    string(result.Body.Kind),
			"message": result.Body.Message,
			"loading": result.Body.Loading,
		},
		"sorting": nil,
	}

	if result.Sorting != nil {
		adapted["sorting"] = map[string]interface{}{
			"orderBy":   result.Sorting.OrderBy,
			"sortOrder": result.Sorting.SortOrder,
			"columnId":  result.Sorting.ColumnID,
			"indicator": string(result.Sorting.Indicator),
		}
	}
	return adapted
}

func formatAmountResolver(params graphql.ResolveParams) (interface{}, error) {
	value, ok := params.Args["value"].(*inf.Dec)
	if !ok {
		return nil, nil
	}
	opts := format.AmountOptions{}
	opts.Locale, _ = params.Args["locale"].(string)
	opts.Currency, _ = params.Args["currency"].(string)
	opts.ShowSymbol, _ = params.Args["showSymbol"].(bool)
	return format.Amount(value, opts), nil
}

func formatDateResolver(params graphql.ResolveParams) (interface{}, error) {
	value, ok := params.Args["value"].(*time.Time)
	if !ok {
		return nil, nil
	}
	locale, _ := params.Args["locale"].(string)
	return format.Date(*value, locale, time.UTC), nil
}
