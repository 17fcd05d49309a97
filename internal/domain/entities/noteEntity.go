package entities

import "time"

// Note is a finished dictation owned by one user of the skill.
type Note struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
