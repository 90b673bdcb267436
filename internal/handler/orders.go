package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"myshop/internal/entities"
	"myshop/internal/models"
	"myshop/internal/orders"
)

func (h *Handler) CreateOrder(res http.ResponseWriter, req *http.Request) {
	var requestModel models.OrderRequest

	jsonDecoder := json.NewDecoder(req.Body)
	if err := jsonDecoder.Decode(&requestModel); err != nil {
		zap.L().Info("cannot decode order request to json: %w", zap.Error(err))

		res.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.engine.Create(req.Context(), orderInput(requestModel))
	if err != nil {
		zap.L().Info("error create order: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	h.writeJSON(res, http.StatusCreated, models.CreateOrderResponse{
		Order:   h.orderResponse(*order),
		Receipt: h.engine.Receipt(*order),
	})
}

func (h *Handler) GetOrders(res http.ResponseWriter, req *http.Request) {
	query := req.URL.Query().Get("query")

	orderList := h.engine.List(query)

	responseOrders := make([]models.OrderResponse, 0, len(orderList))
	for _, order := range orderList {
		responseOrders = append(responseOrders, h.orderResponse(order))
	}

	h.writeJSON(res, http.StatusOK, responseOrders)
}

func (h *Handler) GetOrder(res http.ResponseWriter, req *http.Request) {
	order, err := h.engine.Get(chi.URLParam(req, "id"))
	if err != nil {
		h.writeError(res, err)
		return
	}

	h.writeJSON(res, http.StatusOK, h.orderResponse(*order))
}

func (h *Handler) EditOrder(res http.ResponseWriter, req *http.Request) {
	var requestModel models.OrderRequest

	jsonDecoder := json.NewDecoder(req.Body)
	if err := jsonDecoder.Decode(&requestModel); err != nil {
		zap.L().Info("cannot decode order request to json: %w", zap.Error(err))

		res.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.engine.Edit(req.Context(), chi.URLParam(req, "id"), orderInput(requestModel))
	if err != nil {
		zap.L().Info("error edit order: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	h.writeJSON(res, http.StatusOK, h.orderResponse(*order))
}

func (h *Handler) TransitionOrder(res http.ResponseWriter, req *http.Request) {
	var requestModel models.TransitionRequest

	jsonDecoder := json.NewDecoder(req.Body)
	if err := jsonDecoder.Decode(&requestModel); err != nil {
		zap.L().Info("cannot decode transition request to json: %w", zap.Error(err))

		res.WriteHeader(http.StatusBadRequest)
		return
	}

	target := entities.Status(requestModel.Status)
	if !target.Known() {
		zap.L().Info("unknown target status", zap.String("status", requestModel.Status))

		res.WriteHeader(http.StatusBadRequest)
		return
	}

	order, err := h.engine.ApplyTransition(req.Context(), chi.URLParam(req, "id"), target)
	if err != nil {
		zap.L().Info("error apply transition: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	h.writeJSON(res, http.StatusOK, h.orderResponse(*order))
}

func (h *Handler) DeleteOrder(res http.ResponseWriter, req *http.Request) {
	if err := h.engine.Delete(req.Context(), chi.URLParam(req, "id")); err != nil {
		zap.L().Info("error delete order: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetReceipt(res http.ResponseWriter, req *http.Request) {
	order, err := h.engine.Get(chi.URLParam(req, "id"))
	if err != nil {
		h.writeError(res, err)
		return
	}

	res.Header().Set("Content-Type", "text/plain; charset=utf-8")
	res.WriteHeader(http.StatusOK)

	if _, err := res.Write([]byte(h.engine.Receipt(*order))); err != nil {
		zap.L().Info("cannot write receipt response: %w", zap.Error(err))
	}
}

func (h *Handler) GetStats(res http.ResponseWriter, req *http.Request) {
	stats := h.engine.Stats()

	h.writeJSON(res, http.StatusOK, models.StatsResponse{
		Total:     stats.Total,
		Completed: stats.Completed,
		InWork:    stats.InWork,
	})
}

func (h *Handler) orderResponse(order entities.Order) models.OrderResponse {
	return models.OrderResponse{
		Order: order,
		Total: h.engine.ComputeTotal(order),
	}
}

func orderInput(requestModel models.OrderRequest) orders.OrderInput {
	return orders.OrderInput{
		DateFrom:      requestModel.DateFrom,
		DateTo:        requestModel.DateTo,
		CustomerName:  requestModel.CustomerName,
		CustomerPhone: requestModel.CustomerPhone,
		Executor:      requestModel.Executor,
		Telegram:      requestModel.Telegram,
		Services:      requestModel.Services,
	}
}
