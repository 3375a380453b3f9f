package router

import (
	"database/sql"
	"net/http"

	"catatanku/config"
	authHandler "catatanku/internal/auth"
	authRepository "catatanku/internal/auth/repository"
	authService "catatanku/internal/auth/service"
	noteHandler "catatanku/internal/note"
	noteRepository "catatanku/internal/note/repository"
	noteService "catatanku/internal/note/service"
	summaryHandler "catatanku/internal/summary"
	summaryService "catatanku/internal/summary/service"
	"catatanku/middleware"
)

func Setup(db *sql.DB, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	userRepo := authRepository.NewUserRepository(db)
	auth := authHandler.NewAuthHandler(authService.NewAuthService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL))

	noteRepo := noteRepository.NewNoteRepository(db)
	notes := noteHandler.NewNoteHandler(noteService.NewNoteService(noteRepo))

	summaries := summaryHandler.NewSummaryHandler(summaryService.NewSummaryService(cfg.SummaryModelURL, cfg.SummaryAPIKey))

	guard := middleware.Auth([]byte(cfg.JWTSecret))

	mux.Handle("/api/auth/register", http.HandlerFunc(auth.Register))
	mux.Handle("/api/auth/login", http.HandlerFunc(auth.Login))
	mux.Handle("/api/notes", guard(http.HandlerFunc(notes.Notes)))
	mux.Handle("/api/summarize", http.HandlerFunc(summaries.Summarize))

	return middleware.CORSMiddleware(mux)
}
