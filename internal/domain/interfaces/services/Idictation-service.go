package Iservices

import (
	"context"
	"voice-notes/internal/domain/entities"
)

type AppendOutcome int

const (
	Appended AppendOutcome = iota
	AppendNotRecording
)

type FinishOutcome int

const (
	FinishSaved FinishOutcome = iota
	FinishNothingRecorded
	FinishNotRecording
)

// IDictationService drives the per-conversation dictation state machine.
// Every method returns the next session state; the input is never mutated.
type IDictationService interface {
	Begin(state entities.SessionState) entities.SessionState
	Append(state entities.SessionState, fragment string) (entities.SessionState, AppendOutcome)
	Finish(ctx context.Context, userID string, state entities.SessionState) (entities.SessionState, FinishOutcome, error)
}
