package models

// ViewRequest applies a table interaction to the state the client currently shows.
type ViewRequest struct {
	State  ViewState  `json:"state"`
	Action ViewAction `json:"action"`
}

type ViewState struct {
	Page      int    `json:"page" validate:"gte=0"`
	PageSize  int    `json:"pageSize" validate:"gte=0"`
	OrderBy   string `json:"orderBy" validate:"omitempty,max=128"`
	SortOrder string `json:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

type ViewAction struct {
	Type     string `json:"type" validate:"required,oneof=page pageSize sort refresh"`
	Page     int    `json:"page" validate:"gte=0"`
	PageSize int    `json:"pageSize" validate:"gte=0"`
	Column   string `json:"column" validate:"omitempty,max=128"`
}
