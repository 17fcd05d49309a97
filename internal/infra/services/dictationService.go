package services

import (
	"context"
	"fmt"
	"voice-notes/internal/domain/entities"
	"voice-notes/internal/domain/interfaces/repository"
	Iservices "voice-notes/internal/domain/interfaces/services"
	"voice-notes/internal/infra/logger"

	"github.com/sirupsen/logrus"
)

// DictationService is the state machine behind a dictation: Idle until
// Begin, Recording while fragments are appended, Idle again after Finish.
type DictationService struct {
	NoteRepository repository.NoteRepository
	Logger         *logger.Logger
}

func NewDictationService(noteRepository repository.NoteRepository, logger *logger.Logger) *DictationService {
	return &DictationService{
		NoteRepository: noteRepository,
		Logger:         logger,
	}
}

// Begin starts recording. Calling it while already recording drops the text
// collected so far.
func (ds *DictationService) Begin(state entities.SessionState) entities.SessionState {
	if state.IsRecording && state.RecordingText != "" {
		ds.Logger.Info("Dictation restarted, discarding unsaved text", logrus.Fields{"discarded_chars": len(state.RecordingText)})
	}
	return entities.SessionState{IsRecording: true, RecordingText: ""}
}

// Append adds a fragment to the recording, separated by a single space.
// Outside of a recording nothing changes.
func (ds *DictationService) Append(state entities.SessionState, fragment string) (entities.SessionState, Iservices.AppendOutcome) {
	if !state.IsRecording {
		return state, Iservices.AppendNotRecording
	}
	if fragment == "" {
		return state, Iservices.Appended
	}

	if state.RecordingText != "" {
		state.RecordingText += " " + fragment
	} else {
		state.RecordingText = fragment
	}
	return state, Iservices.Appended
}

// Finish ends the recording and stores the collected text as a note. The
// returned state is always Idle, except when the note could not be stored:
// then the error is returned together with the unchanged state.
func (ds *DictationService) Finish(ctx context.Context, userID string, state entities.SessionState) (entities.SessionState, Iservices.FinishOutcome, error) {
	if !state.IsRecording {
		return entities.SessionState{}, Iservices.FinishNotRecording, nil
	}

	if state.RecordingText == "" {
		return entities.SessionState{}, Iservices.FinishNothingRecorded, nil
	}

	if err := ds.NoteRepository.SaveNote(ctx, userID, state.RecordingText); err != nil {
		ds.Logger.Error(fmt.Sprintf("Failed to save note: %v", err), logrus.Fields{"user_id": userID})
		return state, Iservices.FinishSaved, err
	}

	ds.Logger.Info("Note saved", logrus.Fields{"user_id": userID, "chars": len(state.RecordingText)})
	return entities.SessionState{}, Iservices.FinishSaved, nil
}
