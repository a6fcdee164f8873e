package models

// ModelError is the body of every non 2xx response.
type ModelError struct {
	// Description is safe to show to the user.
	Description string `json:"description,omitempty"`
	// InternalCode is the status text of the response code, e.g. "Bad Request".
	InternalCode string `json:"internalCode,omitempty"`
}
