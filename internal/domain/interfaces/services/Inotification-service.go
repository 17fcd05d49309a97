package Iservices

import "context"

type TranscriptOutcome int

const (
	TranscriptSent TranscriptOutcome = iota
	TranscriptPermissionNeeded
	TranscriptNothingToSend
	TranscriptAddressNotFound
	TranscriptEmailError
)

// Consent is what the voice platform hands over once the user granted
// access to their profile email.
type Consent struct {
	Token          string
	APIEndpoint    string
	APIAccessToken string
}

// Granted reports whether a consent token is present.
func (c Consent) Granted() bool {
	return c.Token != ""
}

type INotificationService interface {
	SendTranscript(ctx context.Context, userID string, consent Consent) (TranscriptOutcome, error)
}
