package repository

import (
	"context"
	"voice-notes/internal/domain/entities"
)

// NoteRepository is the durable store for finished dictations.
type NoteRepository interface {
	Init(ctx context.Context) error
	SaveNote(ctx context.Context, userID string, content string) error
	GetNotes(ctx context.Context, userID string, limit int) ([]entities.Note, error)
	GetAllNotes(ctx context.Context, userID string) ([]entities.Note, error)
}
