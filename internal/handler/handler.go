package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"myshop/internal/catalog"
	"myshop/internal/orders"
	"myshop/internal/session"
	"myshop/internal/storage"
)

type Handler struct {
	engine      *orders.Engine
	catalog     *catalog.Catalog
	sessions    *session.Manager
	tokenSecret string
}

func NewHandler(engine *orders.Engine, catalog *catalog.Catalog, sessions *session.Manager, tokenSecret string) *Handler {
	return &Handler{
		engine:      engine,
		catalog:     catalog,
		sessions:    sessions,
		tokenSecret: tokenSecret,
	}
}

func (h *Handler) writeJSON(res http.ResponseWriter, status int, body any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)

	jsonEncoder := json.NewEncoder(res)
	if err := jsonEncoder.Encode(body); err != nil {
		zap.L().Info("cannot encode response JSON body: %w", zap.Error(err))
	}
}

func (h *Handler) writeError(res http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orders.ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		res.WriteHeader(http.StatusNotFound)
	case errors.Is(err, orders.ErrInvalidTransition):
		res.WriteHeader(http.StatusConflict)
	case errors.Is(err, catalog.ErrEmptyName):
		res.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, session.ErrWrongPassword):
		res.WriteHeader(http.StatusUnauthorized)
	case errors.Is(err, storage.ErrUnavailable):
		res.WriteHeader(http.StatusServiceUnavailable)
	default:
		res.WriteHeader(http.StatusInternalServerError)
	}
}
