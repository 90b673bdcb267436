package entities

import (
	"time"
)

type Status string

const (
	// StatusProcessing exists in persisted records but no transition
	// ever assigns it.
	StatusProcessing Status = "processing"
	StatusInProgress Status = "inProgress"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var statuses = map[Status]struct{}{
	StatusProcessing: {},
	StatusInProgress: {},
	StatusAccepted:   {},
	StatusRejected:   {},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

var allowedTransitions = map[Status][]Status{
	StatusInProgress: {StatusAccepted, StatusRejected},
	StatusAccepted:   {StatusCompleted, StatusCancelled},
}

func (s Status) Known() bool {
	_, ok := statuses[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}

	return false
}

type Order struct {
	ID            string     `json:"id"`
	OrderNumber   string     `json:"orderNumber"`
	DateFrom      string     `json:"dateFrom"`
	DateTo        string     `json:"dateTo"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	Executor      string     `json:"executor"`
	Telegram      string     `json:"telegram"`
	Status        Status     `json:"status"`
	Services      []string   `json:"services"`
	CreatedAt     time.Time  `json:"createdAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	RejectedAt    *time.Time `json:"rejectedAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
}
