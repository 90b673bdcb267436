package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"myshop/internal/catalog"
	"myshop/internal/models"
	"myshop/internal/services/price"
)

func (h *Handler) GetCustomers(res http.ResponseWriter, req *http.Request) {
	h.writeJSON(res, http.StatusOK, h.catalog.Customers())
}

func (h *Handler) AddCustomer(res http.ResponseWriter, req *http.Request) {
	var requestModel models.CustomerRequest

	jsonDecoder := json.NewDecoder(req.Body)
	if err := jsonDecoder.Decode(&requestModel); err != nil {
		zap.L().Info("cannot decode customer request to json: %w", zap.Error(err))

		res.WriteHeader(http.StatusBadRequest)
		return
	}

	customer, err := h.catalog.AddCustomer(req.Context(), requestModel.Name)
	if err != nil {
		zap.L().Info("error add customer: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	h.writeJSON(res, http.StatusCreated, customer)
}

func (h *Handler) DeleteCustomer(res http.ResponseWriter, req *http.Request) {
	if err := h.catalog.DeleteCustomer(req.Context(), chi.URLParam(req, "id")); err != nil {
		zap.L().Info("error delete customer: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetServices(res http.ResponseWriter, req *http.Request) {
	h.writeJSON(res, http.StatusOK, h.catalog.Services())
}

func (h *Handler) AddService(res http.ResponseWriter, req *http.Request) {
	var requestModel models.ServiceRequest

	jsonDecoder := json.NewDecoder(req.Body)
	if err := jsonDecoder.Decode(&requestModel); err != nil {
		zap.L().Info("cannot decode service request to json: %w", zap.Error(err))

		res.WriteHeader(http.StatusBadRequest)
		return
	}

	service, err := h.catalog.AddService(req.Context(), requestModel.Name, price.Parse(requestModel.Price))
	if err != nil {
		zap.L().Info("error add service: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	h.writeJSON(res, http.StatusCreated, service)
}

func (h *Handler) UpdateService(res http.ResponseWriter, req *http.Request) {
	var requestModel models.ServiceUpdateRequest

	jsonDecoder := json.NewDecoder(req.Body)
	if err := jsonDecoder.Decode(&requestModel); err != nil {
		zap.L().Info("cannot decode service update request to json: %w", zap.Error(err))

		res.WriteHeader(http.StatusBadRequest)
		return
	}

	update := catalog.ServiceUpdate{Name: requestModel.Name}
	if requestModel.Price != nil {
		parsed := price.Parse(*requestModel.Price)
		update.Price = &parsed
	}

	service, err := h.catalog.UpdateService(req.Context(), chi.URLParam(req, "id"), update)
	if err != nil {
		zap.L().Info("error update service: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	h.writeJSON(res, http.StatusOK, service)
}

func (h *Handler) DeleteService(res http.ResponseWriter, req *http.Request) {
	if err := h.catalog.DeleteService(req.Context(), chi.URLParam(req, "id")); err != nil {
		zap.L().Info("error delete service: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	res.WriteHeader(http.StatusNoContent)
}
