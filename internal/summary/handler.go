package handler

import (
	"encoding/json"
	"net/http"

	"catatanku/internal/summary/service"
	"catatanku/pkg/apperr"
	"catatanku/pkg/httpjson"
)

type SummarizeRequest struct {
	Content string `json:"content"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type SummaryHandler struct {
	Service *service.SummaryService
}

func NewSummaryHandler(service *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{Service: service}
}

func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpjson.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary, err := h.Service.Summarize(r.Context(), req.Content)
	if err != nil {
		status := apperr.Status(err)
		if status == http.StatusInternalServerError {
			httpjson.Error(w, status, "Server error")
			return
		}
		httpjson.Error(w, status, err.Error())
		return
	}

	httpjson.Write(w, http.StatusOK, SummarizeResponse{Summary: summary})
}
