package testutil

import (
	"fmt"

	"github.com/datagrid/datagrid-apis/db"
	"github.com/datagrid/datagrid-apis/log"
	"go.uber.org/zap"
)

// Customers names the rows of the invoices fixture, in insertion order.
var Customers = []string{"Ana", "Bruno", "Carla", "Diego", "Elisa", "Fabio", "Gabi", "Hugo", "Iara",
	"Joana", "Kleber", "Luana"}

func TestLogger() log.Logger {
	return log.NewZapLogger(zap.NewNop())
}

// InvoiceRows returns one invoice per customer with ids "inv-01", "inv-02", ... and a total of
// ten times the position.
func InvoiceRows() []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(Customers))
	for i, name := range Customers {
		rows = append(rows, map[string]interface{}{
			"id":            fmt.Sprintf("inv-%02d", i+1),
			"customer_name": name,
			"total_amount":  (i + 1) * 10,
		})
	}
	return rows
}

// NewMemorySource serves the invoices fixture plus an empty "customers" table.
func NewMemorySource() *db.MemorySource {
	return db.NewMemorySource(map[string][]map[string]interface{}{
		"invoices":  InvoiceRows(),
		"customers": {},
	})
}
