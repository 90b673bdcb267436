package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"myshop/internal/middleware"
	"myshop/internal/models"
	"myshop/internal/services/jwttoken"
)

func (h *Handler) Login(res http.ResponseWriter, req *http.Request) {
	var requestModel models.LoginRequest

	jsonDecoder := json.NewDecoder(req.Body)
	if err := jsonDecoder.Decode(&requestModel); err != nil {
		zap.L().Info("cannot decode login request to json: %w", zap.Error(err))

		res.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.sessions.Login(req.Context(), requestModel.Password); err != nil {
		zap.L().Info("error login: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	accessToken, err := jwttoken.Generate(h.tokenSecret)
	if err != nil {
		zap.L().Info("error generate session token: %w", zap.Error(err))

		res.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.SetCookie(res, &http.Cookie{
		Name:  middleware.TokenCookieName,
		Value: accessToken,
		Path:  "/",
	})

	res.WriteHeader(http.StatusOK)
}

func (h *Handler) Logout(res http.ResponseWriter, req *http.Request) {
	if err := h.sessions.Logout(req.Context()); err != nil {
		zap.L().Info("error logout: %w", zap.Error(err))

		h.writeError(res, err)
		return
	}

	http.SetCookie(res, &http.Cookie{
		Name:   middleware.TokenCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	res.WriteHeader(http.StatusNoContent)
}
