package models

type TablesResponse struct {
	Tables []string `json:"tables"`
}
