package models

// RowsQuery is read from the query string of a rows request.
type RowsQuery struct {
	Page      int    `mapstructure:"page" validate:"gte=0"`
	PageSize  int    `mapstructure:"pageSize" validate:"gte=0"`
	OrderBy   string `mapstructure:"orderBy" validate:"omitempty,max=128"`
	SortOrder string `mapstructure:"sortOrder" validate:"omitempty,oneof=asc desc"`
}
