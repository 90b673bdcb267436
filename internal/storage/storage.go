package storage

import "context"

// Snapshot keys. Each key holds the JSON-serialized full collection.
const (
	KeyOrders    = "orders"
	KeyCustomers = "customers"
	KeyServices  = "services"
	KeyAuth      = "auth"
)

type Storage interface {
	Load(context.Context, string) ([]byte, error)
	Save(context.Context, string, []byte) error
	Delete(context.Context, string) error
}
