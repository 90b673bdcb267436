package models

import "myshop/internal/entities"

type LoginRequest struct {
	Password string `json:"password"`
}

type OrderRequest struct {
	DateFrom      string   `json:"dateFrom"`
	DateTo        string   `json:"dateTo"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	Executor      string   `json:"executor"`
	Telegram      string   `json:"telegram"`
	Services      []string `json:"services"`
}

type TransitionRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	entities.Order
	Total float64 `json:"total"`
}

type CreateOrderResponse struct {
	Order   OrderResponse `json:"order"`
	Receipt string        `json:"receipt"`
}

type CustomerRequest struct {
	Name string `json:"name"`
}

// Price comes in as raw text, the way the operator typed it. Invalid
// input coerces to 0 on the server side.
type ServiceRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type ServiceUpdateRequest struct {
	Name  *string `json:"name"`
	Price *string `json:"price"`
}

type StatsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	InWork    int `json:"inWork"`
}
