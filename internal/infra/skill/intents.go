package skill

import (
	"context"
	"fmt"
	Iservices "voice-notes/internal/domain/interfaces/services"

	"github.com/sirupsen/logrus"
)

func (d *Dispatcher) launch() Reply {
	return Reply{
		Speech:   d.Messages.Welcome,
		Reprompt: d.Messages.Welcome,
		Card: &Card{
			Kind:    CardSimple,
			Title:   d.Messages.CardTitle,
			Content: d.Messages.Welcome,
		},
	}
}

func (d *Dispatcher) beginDictation(ev Event) Reply {
	next := d.DictationService.Begin(ev.Session)
	return Reply{
		Speech:   d.Messages.StartDictation,
		Reprompt: d.Messages.Listening,
		Session:  &next,
	}
}

func (d *Dispatcher) appendDictation(ev Event) Reply {
	next, outcome := d.DictationService.Append(ev.Session, ev.Slots[SlotDictation])
	if outcome == Iservices.AppendNotRecording {
		return Reply{
			Speech:   d.Messages.NotRecordingStart,
			Reprompt: d.Messages.NotRecordingStart,
		}
	}
	return Reply{
		Speech:   d.Messages.ContinueOrFinish,
		Reprompt: d.Messages.Listening,
		Session:  &next,
	}
}

func (d *Dispatcher) finishDictation(ctx context.Context, ev Event) (Reply, error) {
	next, outcome, err := d.DictationService.Finish(ctx, ev.UserID, ev.Session)
	if err != nil {
		return Reply{}, fmt.Errorf("finish dictation: %w", err)
	}

	var speech string
	switch outcome {
	case Iservices.FinishSaved:
		speech = d.Messages.Saved + " " + d.Messages.WhatToDoNext
	case Iservices.FinishNothingRecorded:
		speech = d.Messages.NoTextRecorded + " " + d.Messages.WhatToDoNext
	case Iservices.FinishNotRecording:
		speech = d.Messages.NotRecordingWhatNext
	}

	return Reply{
		Speech:   speech,
		Reprompt: d.Messages.WriteOrClose,
		Session:  &next,
	}, nil
}

func (d *Dispatcher) sendTranscript(ctx context.Context, ev Event) (Reply, error) {
	outcome, err := d.NotificationService.SendTranscript(ctx, ev.UserID, ev.Consent)
	if err != nil {
		return Reply{}, fmt.Errorf("send transcript: %w", err)
	}

	switch outcome {
	case Iservices.TranscriptPermissionNeeded:
		return Reply{
			Speech: d.Messages.EmailPermission,
			Card: &Card{
				Kind:        CardPermissionConsent,
				Permissions: []string{PermissionProfileEmail},
			},
		}, nil
	case Iservices.TranscriptNothingToSend:
		return Reply{Speech: d.Messages.NoNotesToSend}, nil
	case Iservices.TranscriptAddressNotFound:
		return Reply{Speech: d.Messages.EmailNotFound}, nil
	case Iservices.TranscriptEmailError:
		return Reply{Speech: d.Messages.EmailError}, nil
	}
	return Reply{Speech: d.Messages.EmailSent}, nil
}

func (d *Dispatcher) goodbye() Reply {
	return Reply{
		Speech:     d.Messages.Goodbye,
		EndSession: true,
	}
}

func (d *Dispatcher) help() Reply {
	return Reply{
		Speech:   d.Messages.Help,
		Reprompt: d.Messages.Help,
	}
}

// A session that ends while recording loses its text; nothing is saved.
func (d *Dispatcher) sessionEnded(ev Event) Reply {
	fields := logrus.Fields{"user_id": ev.UserID, "reason": ev.EndReason}
	if ev.Session.IsRecording && ev.Session.RecordingText != "" {
		fields["discarded_chars"] = len(ev.Session.RecordingText)
	}
	d.Logger.Info("Session ended", fields)
	if ev.EndError != "" {
		d.Logger.Info(fmt.Sprintf("Session ended error: %s", ev.EndError), logrus.Fields{"user_id": ev.UserID})
	}
	return Reply{}
}
