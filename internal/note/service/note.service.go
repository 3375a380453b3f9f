package service

import (
	"fmt"
	"strings"

	"catatanku/internal/note/model"
	"catatanku/internal/note/repository"
	"catatanku/pkg/apperr"

	"github.com/google/uuid"
)

// NoteService enforces the ownership rule over the note store: a note is
// readable, mutable and deletable only by the user recorded as its owner.
type NoteService struct {
	Repo *repository.NoteRepository
}

func NewNoteService(repo *repository.NoteRepository) *NoteService {
	return &NoteService{Repo: repo}
}

func (s *NoteService) List(userID string) ([]model.Note, error) {
	notes, err := s.Repo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

// Create assigns the note a fresh ID and the caller as owner. An empty title
// is rejected; empty content is allowed.
func (s *NoteService) Create(userID, title, content string) (*model.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required: %w", apperr.ErrValidation)
	}
	return s.Repo.Create(uuid.NewString(), title, content, userID)
}

func (s *NoteService) Update(userID, id, title, content string) (*model.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required: %w", apperr.ErrValidation)
	}

	note, err := s.resolveOwned(id, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.Repo.Update(id, userID, title, content)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// The note was deleted between the resolve and the update.
		return nil, fmt.Errorf("note %s: %w", id, apperr.ErrNotFound)
	}

	note.Title = title
	note.Content = content
	return note, nil
}

func (s *NoteService) Delete(userID, id string) error {
	if _, err := s.resolveOwned(id, userID); err != nil {
		return err
	}

	rows, err := s.Repo.Delete(id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("note %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// resolveOwned loads a note and verifies the caller owns it. Both mutating
// operations go through here so the policy cannot drift between them; the
// repository re-asserts ownership in its WHERE clause for the mutation
// itself.
func (s *NoteService) resolveOwned(id, userID string) (*model.Note, error) {
	if id == "" {
		return nil, fmt.Errorf("note id is required: %w", apperr.ErrValidation)
	}
	note, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note.OwnerID != userID {
		return nil, fmt.Errorf("note %s belongs to another user: %w", id, apperr.ErrForbidden)
	}
	return note, nil
}
