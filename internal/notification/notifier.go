package notification

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"myshop/internal/entities"
)

const (
	EventOrderCreated   = "order.created"
	EventOrderCompleted = "order.completed"
)

// Notifier receives lifecycle events after the corresponding mutation
// has been persisted. Implementations must never fail the mutation.
type Notifier interface {
	OrderCreated(ctx context.Context, order entities.Order)
	OrderCompleted(ctx context.Context, order entities.Order)
}

type event struct {
	Event       string    `json:"event"`
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// WebhookNotifier posts lifecycle events to a configured URL. Delivery
// failures are logged and swallowed.
type WebhookNotifier struct {
	client     *resty.Client
	webhookURL string
}

func NewWebhookNotifier(webhookURL string) *WebhookNotifier {
	return &WebhookNotifier{
		client:     resty.New().SetTimeout(5 * time.Second),
		webhookURL: webhookURL,
	}
}

func (n *WebhookNotifier) OrderCreated(ctx context.Context, order entities.Order) {
	n.send(ctx, EventOrderCreated, order)
}

func (n *WebhookNotifier) OrderCompleted(ctx context.Context, order entities.Order) {
	n.send(ctx, EventOrderCompleted, order)
}

func (n *WebhookNotifier) send(ctx context.Context, eventName string, order entities.Order) {
	response, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event{
			Event:       eventName,
			OrderID:     order.ID,
			OrderNumber: order.OrderNumber,
			Status:      string(order.Status),
			OccurredAt:  time.Now(),
		}).
		Post(n.webhookURL)

	if err != nil {
		zap.L().Info("error sending webhook notification", zap.Error(err))
		return
	}

	if response.IsError() {
		zap.L().Info("webhook notification rejected", zap.Int("status", response.StatusCode()))
	}
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) OrderCreated(context.Context, entities.Order)   {}
func (NopNotifier) OrderCompleted(context.Context, entities.Order) {}
