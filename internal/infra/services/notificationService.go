package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"voice-notes/internal/config"
	"voice-notes/internal/domain/entities"
	"voice-notes/internal/domain/interfaces/repository"
	Iservices "voice-notes/internal/domain/interfaces/services"
	"voice-notes/internal/infra/logger"

	"github.com/ncruces/go-strftime"
	"github.com/sirupsen/logrus"
)

// TranscriptSettings are the parts of the configuration the notification
// service depends on.
type TranscriptSettings struct {
	Subject    string
	DateFormat string
	Location   *time.Location
}

func TranscriptSettingsFromConfig(cfg *config.Config) TranscriptSettings {
	return TranscriptSettings{
		Subject:    cfg.Mail.Subject,
		DateFormat: cfg.DateFormat,
		Location:   cfg.Location,
	}
}

type NotificationService struct {
	Logger         *logger.Logger
	NoteRepository repository.NoteRepository
	ProfileService Iservices.IProfileService
	MailService    Iservices.IMailService
	Settings       TranscriptSettings
}

func NewNotificationService(logger *logger.Logger, noteRepository repository.NoteRepository, profileService Iservices.IProfileService, mailService Iservices.IMailService, settings TranscriptSettings) *NotificationService {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	return &NotificationService{
		Logger:         logger,
		NoteRepository: noteRepository,
		ProfileService: profileService,
		MailService:    mailService,
		Settings:       settings,
	}
}

// SendTranscript mails every note of the user to the address on their
// profile. Only storage failures and unclassified profile failures are
// returned as errors; a failed delivery is reported as TranscriptEmailError.
func (ns *NotificationService) SendTranscript(ctx context.Context, userID string, consent Iservices.Consent) (Iservices.TranscriptOutcome, error) {
	log := ns.Logger.With(logrus.Fields{"user_id": userID})

	if !consent.Granted() {
		log.Info("No permissions found in request context")
		return Iservices.TranscriptPermissionNeeded, nil
	}

	notes, err := ns.NoteRepository.GetAllNotes(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(notes) == 0 {
		return Iservices.TranscriptNothingToSend, nil
	}

	token := consent.APIAccessToken
	if token == "" {
		token = consent.Token
	}

	recipient, err := ns.ProfileService.GetProfileEmail(ctx, consent.APIEndpoint, token)
	if err != nil {
		if errors.Is(err, Iservices.ErrAccessDenied) {
			log.Info(fmt.Sprintf("Permission missing or access denied: %v", err))
			return Iservices.TranscriptPermissionNeeded, nil
		}
		log.Error(fmt.Sprintf("Error fetching email: %v", err))
		return 0, fmt.Errorf("fetch profile email: %w", err)
	}
	if recipient == "" {
		return Iservices.TranscriptAddressNotFound, nil
	}

	body := ns.FormatTranscript(notes)
	if err := ns.MailService.Send(ctx, recipient, ns.Settings.Subject, body); err != nil {
		log.Error(fmt.Sprintf("Error sending email: %v", err))
		return Iservices.TranscriptEmailError, nil
	}

	log.Info("Transcript sent", logrus.Fields{"notes": len(notes)})
	return Iservices.TranscriptSent, nil
}

// FormatTranscript renders one "index - date - content" line per note, in
// the order given, numbered from 1.
func (ns *NotificationService) FormatTranscript(notes []entities.Note) string {
	var b strings.Builder
	for i, n := range notes {
		date := strftime.Format(ns.Settings.DateFormat, n.CreatedAt.In(ns.Settings.Location))
		fmt.Fprintf(&b, "%d - %s - %s\n", i+1, date, n.Content)
	}
	return b.String()
}
