package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"catatanku/internal/note/model"
	"catatanku/pkg/apperr"
	"catatanku/pkg/logger"
)

type NoteRepository struct {
	DB *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(id, title, content, ownerID string) (*model.Note, error) {
	note := &model.Note{ID: id, Title: title, Content: content, OwnerID: ownerID}
	err := r.DB.QueryRow(`INSERT INTO notes (id, title, content, owner_id, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING created_at`,
		id, title, content, ownerID).Scan(&note.CreatedAt)
	if err != nil {
		logger.Sugar.Errorf("Failed to create note: %v", err)
		return nil, err
	}
	return note, nil
}

func (r *NoteRepository) GetByID(id string) (*model.Note, error) {
	var n model.Note
	err := r.DB.QueryRow(`SELECT id, title, content, owner_id, created_at FROM notes WHERE id = $1`, id).
		Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("note %s: %w", id, apperr.ErrNotFound)
		}
		logger.Sugar.Errorf("Failed to get note %s: %v", id, err)
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepository) ListByOwner(ownerID string) ([]model.Note, error) {
	rows, err := r.DB.Query(`SELECT id, title, content, owner_id, created_at FROM notes WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		logger.Sugar.Errorf("Failed to list notes for user %s: %v", ownerID, err)
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.OwnerID, &n.CreatedAt); err != nil {
			logger.Sugar.Errorf("Failed to scan note row: %v", err)
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Update overwrites title and content. The owner_id predicate keeps the
// ownership check inside the same statement, so a concurrent delete or a
// stale pre-check cannot slip a foreign write through.
func (r *NoteRepository) Update(id, ownerID, title, content string) (int64, error) {
	result, err := r.DB.Exec(`UPDATE notes SET title = $1, content = $2 WHERE id = $3 AND owner_id = $4`,
		title, content, id, ownerID)
	if err != nil {
		logger.Sugar.Errorf("Failed to update note %s: %v", id, err)
		return 0, err
	}
	return result.RowsAffected()
}

func (r *NoteRepository) Delete(id, ownerID string) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM notes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		logger.Sugar.Errorf("Failed to delete note %s: %v", id, err)
		return 0, err
	}
	return result.RowsAffected()
}
