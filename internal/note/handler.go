package handler

import (
	"encoding/json"
	"net/http"

	"catatanku/internal/note/model"
	"catatanku/internal/note/service"
	"catatanku/middleware"
	"catatanku/pkg/apperr"
	"catatanku/pkg/httpjson"
	"catatanku/pkg/logger"
)

type NoteHandler struct {
	Service *service.NoteService
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{Service: service}
}

// Notes dispatches the /api/notes route by method. The auth middleware has
// already run, so the caller's user ID is in the request context.
func (h *NoteHandler) Notes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		httpjson.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *NoteHandler) list(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middleware.UserIDKey).(string)

	notes, err := h.Service.List(userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, notes)
}

func (h *NoteHandler) create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middleware.UserIDKey).(string)

	var req model.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.Service.Create(userID, req.Title, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpjson.Write(w, http.StatusCreated, note)
}

func (h *NoteHandler) update(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middleware.UserIDKey).(string)

	var req model.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.Service.Update(userID, req.ID, req.Title, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, note)
}

func (h *NoteHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middleware.UserIDKey).(string)

	// The frontend sends {id} in the body; ?id= is accepted as well.
	var req model.DeleteNoteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ID == "" {
		req.ID = r.URL.Query().Get("id")
	}
	if req.ID == "" {
		httpjson.Error(w, http.StatusBadRequest, "Missing note id")
		return
	}

	if err := h.Service.Delete(userID, req.ID); err != nil {
		writeServiceError(w, err)
		return
	}
	httpjson.Message(w, http.StatusOK, "Note deleted successfully")
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		logger.Sugar.Errorf("Note handler: %v", err)
		httpjson.Error(w, status, "Internal server error")
		return
	}
	httpjson.Error(w, status, err.Error())
}
