package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"myshop/internal/entities"
	"myshop/internal/storage"
)

var (
	ErrEmptyName = errors.New("empty name")
	ErrNotFound  = errors.New("not found")
)

// Catalog holds the customer and service reference lists. Both
// collections are kept in memory and persisted as full snapshots on
// every mutation.
type Catalog struct {
	mu        sync.RWMutex
	storage   storage.Storage
	customers []entities.Customer
	services  []entities.Service
}

type ServiceUpdate struct {
	Name  *string
	Price *float64
}

func NewCatalog(storage storage.Storage) *Catalog {
	return &Catalog{storage: storage}
}

// Load hydrates both collections from their snapshots. Keys that were
// never written leave the collection empty.
func (c *Catalog) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := loadSnapshot(ctx, c.storage, storage.KeyCustomers, &c.customers); err != nil {
		return err
	}

	if err := loadSnapshot(ctx, c.storage, storage.KeyServices, &c.services); err != nil {
		return err
	}

	return nil
}

func (c *Catalog) AddCustomer(ctx context.Context, name string) (*entities.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	customer := entities.Customer{
		ID:   uuid.NewString(),
		Name: name,
	}

	c.customers = append(c.customers, customer)

	if err := c.persistCustomers(ctx); err != nil {
		return nil, err
	}

	return &customer, nil
}

// DeleteCustomer removes the customer unconditionally. Orders keep the
// stale name, there is no cascade.
func (c *Catalog) DeleteCustomer(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.customers[:0]
	for _, customer := range c.customers {
		if customer.ID != id {
			filtered = append(filtered, customer)
		}
	}
	c.customers = filtered

	return c.persistCustomers(ctx)
}

func (c *Catalog) AddService(ctx context.Context, name string, price float64) (*entities.Service, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	service := entities.Service{
		ID:    uuid.NewString(),
		Name:  name,
		Price: price,
	}

	c.services = append(c.services, service)

	if err := c.persistServices(ctx); err != nil {
		return nil, err
	}

	return &service, nil
}

// UpdateService partially overwrites name and price. Totals of
// existing orders change immediately because they are derived live.
func (c *Catalog) UpdateService(ctx context.Context, id string, update ServiceUpdate) (*entities.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.services {
		if c.services[i].ID != id {
			continue
		}

		if update.Name != nil {
			c.services[i].Name = *update.Name
		}
		if update.Price != nil {
			c.services[i].Price = *update.Price
		}

		if err := c.persistServices(ctx); err != nil {
			return nil, err
		}

		service := c.services[i]

		return &service, nil
	}

	return nil, ErrNotFound
}

func (c *Catalog) DeleteService(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.services[:0]
	for _, service := range c.services {
		if service.ID != id {
			filtered = append(filtered, service)
		}
	}
	c.services = filtered

	return c.persistServices(ctx)
}

func (c *Catalog) Customers() []entities.Customer {
	c.mu.RLock()
	defer c.mu.RUnlock()

	customers := make([]entities.Customer, len(c.customers))
	copy(customers, c.customers)

	return customers
}

func (c *Catalog) Services() []entities.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()

	services := make([]entities.Service, len(c.services))
	copy(services, c.services)

	return services
}

// ServicePrice resolves a service name to its current price. Dangling
// names report ok=false, never an error.
func (c *Catalog) ServicePrice(name string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, service := range c.services {
		if service.Name == name {
			return service.Price, true
		}
	}

	return 0, false
}

func (c *Catalog) persistCustomers(ctx context.Context) error {
	return saveSnapshot(ctx, c.storage, storage.KeyCustomers, c.customers)
}

func (c *Catalog) persistServices(ctx context.Context) error {
	return saveSnapshot(ctx, c.storage, storage.KeyServices, c.services)
}

func loadSnapshot(ctx context.Context, s storage.Storage, key string, target any) error {
	data, err := s.Load(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil
		}

		return err
	}

	return json.Unmarshal(data, target)
}

func saveSnapshot(ctx context.Context, s storage.Storage, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Save(ctx, key, data)
}
