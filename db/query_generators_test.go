package db

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestQueryGeneration(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"select all", selectQuery("store", "books", false), "SELECT * FROM store.books"},
		{"select limited", selectQuery("store", "books", true), "SELECT * FROM store.books LIMIT ?"},
		{"count", countQuery("store", "books"), "SELECT COUNT(*) AS count FROM store.books"},
		{"quoted", selectQuery("Store", "best sellers", false), `SELECT * FROM "Store"."best sellers"`},
		{"embedded quote", countQuery("store", `a"b`), `SELECT COUNT(*) AS count FROM store."a""b"`},
	}

	dmp := diffmatchpatch.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				diffs := dmp.DiffMain(tt.want, tt.got, false)
				t.Errorf("query mismatch: %s", dmp.DiffPrettyText(diffs))
			}
		})
	}
}
