package graphql

import (
	"context"
	"fmt"
	"regexp"

	"github.com/datagrid/datagrid-apis/config"
	"github.com/datagrid/datagrid-apis/grid"
	"github.com/datagrid/datagrid-apis/log"
	"github.com/datagrid/datagrid-apis/table"
	"github.com/graphql-go/graphql"
	"github.com/iancoleman/strcase"
)

var enumName = regexp.MustCompile(`^[_A-Za-z][_0-9A-Za-z]*$`)

var sortOrderEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "SortOrder",
	Values: graphql.EnumValueConfigMap{
		"ASC":  &graphql.EnumValueConfig{Value: table.Ascending},
		"DESC": &graphql.EnumValueConfig{Value: table.Descending},
	},
})

var actionTypeEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "ActionType",
	Values: graphql.EnumValueConfigMap{
		"PAGE":      &graphql.EnumValueConfig{Value: grid.ActionPage},
		"PAGE_SIZE": &graphql.EnumValueConfig{Value: grid.ActionPageSize},
		"SORT":      &graphql.EnumValueConfig{Value: grid.ActionSort},
		"REFRESH":   &graphql.EnumValueConfig{Value: grid.ActionRefresh},
	},
})

var queryStateType = graphql.NewObject(graphql.ObjectConfig{
	Name: "QueryState",
	Fields: graphql.Fields{
		"page":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"pageSize":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"orderBy":   &graphql.Field{Type: graphql.String},
		"sortOrder": &graphql.Field{Type: sortOrderEnum},
	},
})

var queryStateInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "QueryStateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"page":      &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: 0},
		"pageSize":  &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"orderBy":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"sortOrder": &graphql.InputObjectFieldConfig{Type: sortOrderEnum, DefaultValue: table.Ascending},
	},
})

var actionInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ActionInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"type":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(actionTypeEnum)},
		"page":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"pageSize": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"column":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var pageItemType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "PageItem",
	Description: "A page control, either a page number or an ellipsis",
	Fields: graphql.Fields{
		"page":     &graphql.Field{Type: graphql.Int},
		"ellipsis": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var paginationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Pagination",
	Fields: graphql.Fields{
		"page":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"pageSize":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"pageCount":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"rowCount":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"currentPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"items":       &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(pageItemType))},
		"pageSizes":   &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.Int))},
		"canPrevious": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"canNext":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"showPager":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var sortingType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Sorting",
	Fields: graphql.Fields{
		"orderBy":   &graphql.Field{Type: graphql.String},
		"sortOrder": &graphql.Field{Type: sortOrderEnum},
		"columnId":  &graphql.Field{Type: graphql.String},
		"indicator": &graphql.Field{Type: graphql.String},
	},
})

var bodyType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Body",
	Fields: graphql.Fields{
		"kind":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"message": &graphql.Field{Type: graphql.String},
		"loading": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var rowsResultType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RowsResult",
	Fields: graphql.Fields{
		"state":      &graphql.Field{Type: graphql.NewNonNull(queryStateType)},
		"rows":       &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(row))},
		"pagination": &graphql.Field{Type: graphql.NewNonNull(paginationType)},
		"sorting":    &graphql.Field{Type: sortingType},
		"body":       &graphql.Field{Type: graphql.NewNonNull(bodyType)},
	},
})

var optionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Option",
	Fields: graphql.Fields{
		"value":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"label":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.Field{Type: graphql.String},
	},
})

type SchemaGenerator struct {
	service *grid.Service
	cfg     config.Config
	logger  log.Logger
}

func NewSchemaGenerator(service *grid.Service, cfg config.Config) *SchemaGenerator {
	return &SchemaGenerator{
		service: service,
		cfg:     cfg,
		logger:  cfg.Logger(),
	}
}

// tableEnumName names the enum value of a table, e.g. "sales_orders" becomes "SALES_ORDERS".
func tableEnumName(tableName string) string {
	return strcase.ToScreamingSnake(tableName)
}

func (sg *SchemaGenerator) buildTableEnum(tables []string) (*graphql.Enum, error) {
	values := make(graphql.EnumValueConfigMap, len(tables))
	for _, tableName := range tables {
		name := tableEnumName(tableName)
		if !enumName.MatchString(name) {
			sg.logger.Warn("table name can not be used in graphql, skipping", "table", tableName)
			continue
		}
		if _, ok := values[name]; ok {
			return nil, fmt.Errorf("tables map to the same graphql name %s", name)
		}
		values[name] = &graphql.EnumValueConfig{Value: tableName}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no table can be exposed through graphql")
	}

	return graphql.NewEnum(graphql.EnumConfig{
		Name:   "Table",
		Values: values,
	}), nil
}

// BuildSchema builds the schema for the given tables.
func (sg *SchemaGenerator) BuildSchema(tables []string) (graphql.Schema, error) {
	tableEnum, err := sg.buildTableEnum(tables)
	if err != nil {
		return graphql.Schema{}, err
	}

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"tables": &graphql.Field{
					Type:    graphql.NewList(graphql.NewNonNull(tableEnum)),
					Resolve: sg.tablesResolver(),
				},
				"rows": &graphql.Field{
					Type: rowsResultType,
					Args: graphql.FieldConfigArgument{
						"table":     {Type: graphql.NewNonNull(tableEnum)},
						"page":      {Type: graphql.Int, DefaultValue: 0},
						"pageSize":  {Type: graphql.Int},
						"orderBy":   {Type: graphql.String},
						"sortOrder": {Type: sortOrderEnum, DefaultValue: table.Ascending},
					},
					Resolve: sg.rowsResolver(),
				},
				"view": &graphql.Field{
					Type: rowsResultType,
					Args: graphql.FieldConfigArgument{
						"table":  {Type: graphql.NewNonNull(tableEnum)},
						"state":  {Type: graphql.NewNonNull(queryStateInput)},
						"action": {Type: graphql.NewNonNull(actionInput)},
					},
					Resolve: sg.viewResolver(),
				},
				"search": &graphql.Field{
					Type: graphql.NewList(graphql.NewNonNull(optionType)),
					Args: graphql.FieldConfigArgument{
						"table":  {Type: graphql.NewNonNull(tableEnum)},
						"column": {Type: graphql.NewNonNull(graphql.String)},
						"query":  {Type: graphql.NewNonNull(graphql.String)},
						"limit":  {Type: graphql.Int, DefaultValue: 10},
					},
					Resolve: sg.searchResolver(),
				},
				"formatAmount": &graphql.Field{
					Type: graphql.String,
					Args: graphql.FieldConfigArgument{
						"value":      {Type: graphql.NewNonNull(decimal)},
						"locale":     {Type: graphql.String},
						"currency":   {Type: graphql.String},
						"showSymbol": {Type: graphql.Boolean, DefaultValue: false},
					},
					Resolve: formatAmountResolver,
				},
				"formatDate": &graphql.Field{
					Type: graphql.String,
					Args: graphql.FieldConfigArgument{
						"value":  {Type: graphql.NewNonNull(timestamp)},
						"locale": {Type: graphql.String},
					},
					Resolve: formatDateResolver,
				},
				"dateWindow":   dateWindowField,
				"rootFontSize": rootFontSizeField,
			},
		}),
	})
}

// listTables returns the tables the schema is built for.
func (sg *SchemaGenerator) listTables(ctx context.Context) ([]string, error) {
	return sg.service.Tables(ctx)
}
