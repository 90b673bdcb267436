package orders

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"myshop/internal/entities"
	"myshop/internal/notification"
	"myshop/internal/storage"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// PriceResolver resolves a service name to its current catalog price.
type PriceResolver interface {
	ServicePrice(name string) (float64, bool)
}

// Engine owns the order collection and its status lifecycle. Every
// mutation persists the full collection before it returns.
type Engine struct {
	mu       sync.RWMutex
	storage  storage.Storage
	prices   PriceResolver
	notifier notification.Notifier
	orders   []entities.Order
}

// OrderInput carries the user-supplied order fields. Nothing is
// validated, empty strings and empty service lists are accepted.
type OrderInput struct {
	DateFrom      string
	DateTo        string
	CustomerName  string
	CustomerPhone string
	Executor      string
	Telegram      string
	Services      []string
}

type Stats struct {
	Total     int
	Completed int
	InWork    int
}

func NewEngine(storage storage.Storage, prices PriceResolver, notifier notification.Notifier) *Engine {
	return &Engine{
		storage:  storage,
		prices:   prices,
		notifier: notifier,
	}
}

// Load hydrates the order collection from its snapshot. A key that was
// never written leaves the collection empty.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := e.storage.Load(ctx, storage.KeyOrders)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return nil
		}

		return err
	}

	return json.Unmarshal(data, &e.orders)
}

func (e *Engine) Create(ctx context.Context, input OrderInput) (*entities.Order, error) {
	order, err := e.createOrder(ctx, input)
	if err != nil {
		return nil, err
	}

	e.notifier.OrderCreated(ctx, *order)

	return order, nil
}

func (e *Engine) createOrder(ctx context.Context, input OrderInput) (*entities.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := time.Now()

	services := make([]string, len(input.Services))
	copy(services, input.Services)

	order := entities.Order{
		ID:            e.nextID(now),
		OrderNumber:   generateOrderNumber(),
		DateFrom:      input.DateFrom,
		DateTo:        input.DateTo,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		Executor:      input.Executor,
		Telegram:      input.Telegram,
		Status:        entities.StatusInProgress,
		Services:      services,
		CreatedAt:     now,
	}

	e.orders = append(e.orders, order)

	if err := e.persist(ctx); err != nil {
		e.orders = e.orders[:len(e.orders)-1]
		return nil, err
	}

	return &order, nil
}

func (e *Engine) Get(id string) (*entities.Order, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, order := range e.orders {
		if order.ID == id {
			found := order
			return &found, nil
		}
	}

	return nil, ErrNotFound
}

// List returns orders in creation order, filtered by the search query:
// order number substring or case-insensitive customer name substring.
func (e *Engine) List(query string) []entities.Order {
	e.mu.RLock()
	defer e.mu.RUnlock()

	loweredQuery := strings.ToLower(query)

	filtered := make([]entities.Order, 0, len(e.orders))
	for _, order := range e.orders {
		if query == "" ||
			strings.Contains(order.OrderNumber, query) ||
			strings.Contains(strings.ToLower(order.CustomerName), loweredQuery) {
			filtered = append(filtered, order)
		}
	}

	return filtered
}

func (e *Engine) ApplyTransition(ctx context.Context, id string, target entities.Status) (*entities.Order, error) {
	order, err := e.applyTransition(ctx, id, target)
	if err != nil {
		return nil, err
	}

	if target == entities.StatusCompleted {
		e.notifier.OrderCompleted(ctx, *order)
	}

	return order, nil
}

func (e *Engine) applyTransition(ctx context.Context, id string, target entities.Status) (*entities.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, err := e.indexByID(id)
	if err != nil {
		return nil, err
	}

	if !e.orders[i].Status.CanTransitionTo(target) {
		return nil, ErrInvalidTransition
	}

	previous := e.orders[i]

	now := time.Now()
	e.orders[i].Status = target

	switch target {
	case entities.StatusCompleted:
		e.orders[i].CompletedAt = &now
	case entities.StatusRejected:
		e.orders[i].RejectedAt = &now
	case entities.StatusCancelled:
		e.orders[i].CancelledAt = &now
	}

	if err := e.persist(ctx); err != nil {
		e.orders[i] = previous
		return nil, err
	}

	order := e.orders[i]

	return &order, nil
}

// Edit overwrites the mutable fields regardless of the current status,
// terminal ones included. Status and timestamps are never touched.
func (e *Engine) Edit(ctx context.Context, id string, input OrderInput) (*entities.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, err := e.indexByID(id)
	if err != nil {
		return nil, err
	}

	previous := e.orders[i]

	services := make([]string, len(input.Services))
	copy(services, input.Services)

	e.orders[i].DateFrom = input.DateFrom
	e.orders[i].DateTo = input.DateTo
	e.orders[i].CustomerName = input.CustomerName
	e.orders[i].CustomerPhone = input.CustomerPhone
	e.orders[i].Executor = input.Executor
	e.orders[i].Telegram = input.Telegram
	e.orders[i].Services = services

	if err := e.persist(ctx); err != nil {
		e.orders[i] = previous
		return nil, err
	}

	order := e.orders[i]

	return &order, nil
}

// Delete removes the order unconditionally. A missing id is a silent
// no-op.
func (e *Engine) Delete(ctx context.Context, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	filtered := e.orders[:0]
	for _, order := range e.orders {
		if order.ID != id {
			filtered = append(filtered, order)
		}
	}
	e.orders = filtered

	return e.persist(ctx)
}

// ComputeTotal sums the current catalog prices of the order's service
// names. Unresolved names contribute 0. Recomputed on every call.
func (e *Engine) ComputeTotal(order entities.Order) float64 {
	var total float64

	for _, name := range order.Services {
		servicePrice, ok := e.prices.ServicePrice(name)
		if ok {
			total += servicePrice
		}
	}

	return total
}

func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	stats := Stats{Total: len(e.orders)}
	for _, order := range e.orders {
		switch order.Status {
		case entities.StatusCompleted:
			stats.Completed++
		case entities.StatusInProgress, entities.StatusAccepted:
			stats.InWork++
		}
	}

	return stats
}

func (e *Engine) indexByID(id string) (int, error) {
	for i := range e.orders {
		if e.orders[i].ID == id {
			return i, nil
		}
	}

	return 0, ErrNotFound
}

func (e *Engine) persist(ctx context.Context) error {
	data, err := json.Marshal(e.orders)
	if err != nil {
		return err
	}

	return e.storage.Save(ctx, storage.KeyOrders, data)
}

// Ids are creation-time stamps. Bumped past the previous id so two
// orders created within one millisecond stay distinguishable.
func (e *Engine) nextID(now time.Time) string {
	id := now.UnixMilli()

	if len(e.orders) > 0 {
		previous, err := strconv.ParseInt(e.orders[len(e.orders)-1].ID, 10, 64)
		if err == nil && previous >= id {
			id = previous + 1
		}
	}

	return strconv.FormatInt(id, 10)
}

func generateOrderNumber() string {
	return strconv.Itoa(10000 + rand.Intn(90000))
}
