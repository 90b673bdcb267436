package orders

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myshop/internal/catalog"
	"myshop/internal/entities"
	"myshop/internal/storage"
)

type recordingNotifier struct {
	mu        sync.Mutex
	created   []string
	completed []string
}

func (n *recordingNotifier) OrderCreated(_ context.Context, order entities.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, order.OrderNumber)
}

func (n *recordingNotifier) OrderCompleted(_ context.Context, order entities.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.completed = append(n.completed, order.OrderNumber)
}

func newTestEngine(t *testing.T) (*Engine, *catalog.Catalog, *recordingNotifier) {
	t.Helper()

	memStorage := storage.NewMemStorage()

	shopCatalog := catalog.NewCatalog(memStorage)
	notifier := &recordingNotifier{}

	return NewEngine(memStorage, shopCatalog, notifier), shopCatalog, notifier
}

func seedOrder(t *testing.T, engine *Engine, status entities.Status) entities.Order {
	t.Helper()

	order, err := engine.Create(context.Background(), OrderInput{
		DateFrom:     "01.06.2025",
		DateTo:       "15.06.2025",
		CustomerName: "Анна",
	})
	require.NoError(t, err)

	if status != entities.StatusInProgress {
		for i := range engine.orders {
			if engine.orders[i].ID == order.ID {
				engine.orders[i].Status = status
			}
		}
		order.Status = status
	}

	return *order
}

func TestCreateOrder(t *testing.T) {
	engine, _, notifier := newTestEngine(t)

	order, err := engine.Create(context.Background(), OrderInput{
		DateFrom:      "01.06.2025",
		DateTo:        "15.06.2025",
		CustomerName:  "Анна",
		CustomerPhone: "+7 900 000-00-00",
		Executor:      "Мария",
		Telegram:      "@anna",
		Services:      []string{"Стирка"},
	})
	require.NoError(t, err)

	assert.Equal(t, entities.StatusInProgress, order.Status)
	assert.False(t, order.CreatedAt.IsZero())
	assert.Nil(t, order.CompletedAt)
	assert.Nil(t, order.RejectedAt)
	assert.Nil(t, order.CancelledAt)

	number, err := strconv.Atoi(order.OrderNumber)
	require.NoError(t, err)
	assert.Len(t, order.OrderNumber, 5)
	assert.GreaterOrEqual(t, number, 10000)
	assert.LessOrEqual(t, number, 99999)

	assert.Equal(t, []string{order.OrderNumber}, notifier.created)

	persisted, err := engine.storage.Load(context.Background(), storage.KeyOrders)
	require.NoError(t, err)
	assert.Contains(t, string(persisted), order.OrderNumber)
}

func TestCreateAcceptsEmptyInput(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	order, err := engine.Create(context.Background(), OrderInput{})
	require.NoError(t, err)

	assert.Equal(t, entities.StatusInProgress, order.Status)
	assert.Empty(t, order.Services)
}

func TestTransitionMatrix(t *testing.T) {
	allStatuses := []entities.Status{
		entities.StatusProcessing,
		entities.StatusInProgress,
		entities.StatusAccepted,
		entities.StatusRejected,
		entities.StatusCompleted,
		entities.StatusCancelled,
	}

	allowed := map[entities.Status][]entities.Status{
		entities.StatusInProgress: {entities.StatusAccepted, entities.StatusRejected},
		entities.StatusAccepted:   {entities.StatusCompleted, entities.StatusCancelled},
	}

	isAllowed := func(from, to entities.Status) bool {
		for _, target := range allowed[from] {
			if target == to {
				return true
			}
		}
		return false
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			from, to := from, to

			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				engine, _, _ := newTestEngine(t)
				order := seedOrder(t, engine, from)

				updated, err := engine.ApplyTransition(context.Background(), order.ID, to)

				if isAllowed(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, updated.Status)
				} else {
					assert.ErrorIs(t, err, ErrInvalidTransition)
				}
			})
		}
	}
}

func TestRejectSetsTimestamp(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	order := seedOrder(t, engine, entities.StatusInProgress)

	updated, err := engine.ApplyTransition(context.Background(), order.ID, entities.StatusRejected)
	require.NoError(t, err)

	require.NotNil(t, updated.RejectedAt)
	assert.False(t, updated.RejectedAt.Before(updated.CreatedAt))
	assert.Nil(t, updated.CompletedAt)
	assert.Nil(t, updated.CancelledAt)
}

func TestCompleteSetsTimestampAndNotifies(t *testing.T) {
	engine, _, notifier := newTestEngine(t)
	order := seedOrder(t, engine, entities.StatusAccepted)

	updated, err := engine.ApplyTransition(context.Background(), order.ID, entities.StatusCompleted)
	require.NoError(t, err)

	require.NotNil(t, updated.CompletedAt)
	assert.Nil(t, updated.RejectedAt)
	assert.Nil(t, updated.CancelledAt)
	assert.Equal(t, []string{order.OrderNumber}, notifier.completed)
}

func TestAcceptDoesNotNotify(t *testing.T) {
	engine, _, notifier := newTestEngine(t)
	order := seedOrder(t, engine, entities.StatusInProgress)

	_, err := engine.ApplyTransition(context.Background(), order.ID, entities.StatusAccepted)
	require.NoError(t, err)

	assert.Empty(t, notifier.completed)
}

func TestApplyTransitionNotFound(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	_, err := engine.ApplyTransition(context.Background(), "missing", entities.StatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditCompletedOrder(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	order := seedOrder(t, engine, entities.StatusAccepted)

	completed, err := engine.ApplyTransition(context.Background(), order.ID, entities.StatusCompleted)
	require.NoError(t, err)

	edited, err := engine.Edit(context.Background(), order.ID, OrderInput{
		DateFrom:     "02.06.2025",
		CustomerName: "Ольга",
		Services:     []string{"Глажка"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Ольга", edited.CustomerName)
	assert.Equal(t, []string{"Глажка"}, edited.Services)
	assert.Equal(t, entities.StatusCompleted, edited.Status)
	assert.Equal(t, completed.CompletedAt, edited.CompletedAt)
	assert.Equal(t, order.OrderNumber, edited.OrderNumber)
	assert.Equal(t, order.CreatedAt.Unix(), edited.CreatedAt.Unix())
}

func TestEditNotFound(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	_, err := engine.Edit(context.Background(), "missing", OrderInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteOrder(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	order := seedOrder(t, engine, entities.StatusInProgress)

	require.NoError(t, engine.Delete(context.Background(), order.ID))

	_, err := engine.Get(order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingOrderIsNoop(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	seedOrder(t, engine, entities.StatusInProgress)

	assert.NoError(t, engine.Delete(context.Background(), "missing"))
	assert.Len(t, engine.List(""), 1)
}

func TestComputeTotalFollowsCatalog(t *testing.T) {
	engine, shopCatalog, _ := newTestEngine(t)

	_, err := shopCatalog.AddService(context.Background(), "Стирка", 300)
	require.NoError(t, err)
	iron, err := shopCatalog.AddService(context.Background(), "Глажка", 150)
	require.NoError(t, err)

	order, err := engine.Create(context.Background(), OrderInput{
		Services: []string{"Стирка", "Глажка"},
	})
	require.NoError(t, err)

	assert.InDelta(t, 450, engine.ComputeTotal(*order), 0.0001)

	require.NoError(t, shopCatalog.DeleteService(context.Background(), iron.ID))

	// The order itself is untouched, only the derived total changes.
	unchanged, err := engine.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Стирка", "Глажка"}, unchanged.Services)
	assert.InDelta(t, 300, engine.ComputeTotal(*unchanged), 0.0001)
}

func TestComputeTotalUnresolvedNames(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	order, err := engine.Create(context.Background(), OrderInput{
		Services: []string{"Неизвестная услуга"},
	})
	require.NoError(t, err)

	assert.Zero(t, engine.ComputeTotal(*order))
}

func TestListFiltersOrders(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	first, err := engine.Create(context.Background(), OrderInput{CustomerName: "Анна"})
	require.NoError(t, err)
	_, err = engine.Create(context.Background(), OrderInput{CustomerName: "Борис"})
	require.NoError(t, err)

	assert.Len(t, engine.List(""), 2)

	byName := engine.List("анна")
	require.Len(t, byName, 1)
	assert.Equal(t, "Анна", byName[0].CustomerName)

	byNumber := engine.List(first.OrderNumber)
	require.Len(t, byNumber, 1)
	assert.Equal(t, first.ID, byNumber[0].ID)

	assert.Empty(t, engine.List("нет такого"))
}

func TestStats(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	seedOrder(t, engine, entities.StatusInProgress)
	accepted := seedOrder(t, engine, entities.StatusInProgress)
	toComplete := seedOrder(t, engine, entities.StatusInProgress)
	rejected := seedOrder(t, engine, entities.StatusInProgress)

	_, err := engine.ApplyTransition(context.Background(), accepted.ID, entities.StatusAccepted)
	require.NoError(t, err)

	_, err = engine.ApplyTransition(context.Background(), toComplete.ID, entities.StatusAccepted)
	require.NoError(t, err)
	_, err = engine.ApplyTransition(context.Background(), toComplete.ID, entities.StatusCompleted)
	require.NoError(t, err)

	_, err = engine.ApplyTransition(context.Background(), rejected.ID, entities.StatusRejected)
	require.NoError(t, err)

	stats := engine.Stats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.InWork)
}

func TestLoadRestoresOrders(t *testing.T) {
	memStorage := storage.NewMemStorage()
	shopCatalog := catalog.NewCatalog(memStorage)

	engine := NewEngine(memStorage, shopCatalog, &recordingNotifier{})
	order, err := engine.Create(context.Background(), OrderInput{CustomerName: "Анна"})
	require.NoError(t, err)

	restored := NewEngine(memStorage, shopCatalog, &recordingNotifier{})
	require.NoError(t, restored.Load(context.Background()))

	got, err := restored.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, got.OrderNumber)
	assert.Equal(t, entities.StatusInProgress, got.Status)
}

func TestLoadWithoutSnapshot(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	require.NoError(t, engine.Load(context.Background()))
	assert.Empty(t, engine.List(""))
}
