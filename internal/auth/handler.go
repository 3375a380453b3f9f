package handler

import (
	"encoding/json"
	"net/http"

	"catatanku/internal/auth/model"
	"catatanku/internal/auth/service"
	"catatanku/pkg/apperr"
	"catatanku/pkg/httpjson"
	"catatanku/pkg/logger"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpjson.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.Register(req.Name, req.Email, req.Password); err != nil {
		writeServiceError(w, err)
		return
	}

	httpjson.Message(w, http.StatusCreated, "Registration successful")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpjson.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpjson.Write(w, http.StatusOK, model.LoginResponse{Token: token})
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		logger.Sugar.Errorf("Auth handler: %v", err)
		httpjson.Error(w, status, "Internal server error")
		return
	}
	httpjson.Error(w, status, err.Error())
}
