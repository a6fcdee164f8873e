package graphql

import (
	"fmt"
	"time"

	"github.com/datagrid/datagrid-apis/daterange"
	"github.com/datagrid/datagrid-apis/display"
	"github.com/graphql-go/graphql"
	"github.com/mitchellh/mapstructure"
)

var dateLimitInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "DateLimitInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"months": {Type: graphql.Int, DefaultValue: 0},
		"days":   {Type: graphql.Int, DefaultValue: 0},
	},
})

var dateRangeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "DateRangeInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"from": {Type: graphql.NewNonNull(timestamp)},
		"to":   {Type: timestamp},
	},
})

var dateWindowType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DateWindow",
	Fields: graphql.Fields{
		"before":   {Type: timestamp},
		"after":    {Type: timestamp},
		"disabled": {Type: graphql.NewList(graphql.NewNonNull(timestamp))},
	},
})

// dateWindowField answers which of the given days a range picker disables once its first day is picked.
var dateWindowField = &graphql.Field{
	Type:        dateWindowType,
	Description: "Selectable window of a date range picker once its first day is picked",
	Args: graphql.FieldConfigArgument{
		"from":   {Type: graphql.NewNonNull(timestamp)},
		"before": {Type: dateLimitInput},
		"after":  {Type: dateLimitInput},
		"ranges": {Type: graphql.NewList(graphql.NewNonNull(dateRangeInput))},
		"days":   {Type: graphql.NewList(graphql.NewNonNull(timestamp))},
	},
	Resolve: dateWindowResolver,
}

var rootFontSizeField = &graphql.Field{
	Type:        graphql.NewNonNull(graphql.Int),
	Description: "Root font size in px for an interface density slider value",
	Args: graphql.FieldConfigArgument{
		"density": {Type: graphql.Int},
	},
	Resolve: rootFontSizeResolver,
}

func dateWindowResolver(params graphql.ResolveParams) (interface{}, error) {
	from, ok := params.Args["from"].(*time.Time)
	if !ok || from == nil {
		return nil, fmt.Errorf("invalid date for 'from'")
	}

	before, err := dateLimit(params.Args["before"])
	if err != nil {
		return nil, err
	}
	after, err := dateLimit(params.Args["after"])
	if err != nil {
		return nil, err
	}
	window := daterange.Limits(*from, before, after)

	ranges, _ := params.Args["ranges"].([]interface{})
	for _, item := range ranges {
		fields, _ := item.(map[string]interface{})
		start, ok := fields["from"].(*time.Time)
		if !ok || start == nil {
			return nil, fmt.Errorf("invalid date range")
		}
		end, _ := fields["to"].(*time.Time)
		window = window.With(daterange.Range{From: *start, To: end})
	}

	disabled := make([]interface{}, 0)
	days, _ := params.Args["days"].([]interface{})
	for _, item := range days {
		if day, ok := item.(*time.Time); ok && day != nil && window.Disabled(*day) {
			disabled = append(disabled, day)
		}
	}

	result := map[string]interface{}{"disabled": disabled}
	if window.Before != nil {
		result["before"] = window.Before
	}
	if window.After != nil {
		result["after"] = window.After
	}
	return result, nil
}

func dateLimit(value interface{}) (*daterange.Limit, error) {
	if value == nil {
		return nil, nil
	}
	var limit daterange.Limit
	if err := mapstructure.Decode(value, &limit); err != nil {
		return nil, fmt.Errorf("invalid date limit: %s", err)
	}
	return &limit, nil
}

func rootFontSizeResolver(params graphql.ResolveParams) (interface{}, error) {
	var applied int
	density := display.NewDensity(display.ScaleHandlerFunc(func(px int) error {
		applied = px
		return nil
	}))

	value, ok := params.Args["density"].(int)
	var err error
	if ok {
		_, err = density.Apply(value)
	} else {
		_, err = density.Reset()
	}
	if err != nil {
		return nil, err
	}
	return applied, nil
}
