package skill

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	Iservices "voice-notes/internal/domain/interfaces/services"
	"voice-notes/internal/infra/logger"
	"voice-notes/internal/infra/messages"

	"github.com/sirupsen/logrus"
)

// ErrUnknownEvent is returned for requests that map to no handler.
var ErrUnknownEvent = errors.New("unknown event")

// Dispatcher routes each Event to exactly one handler. Every failure ends
// in the catch-all reply, so a turn always gets something to say.
type Dispatcher struct {
	Logger              *logger.Logger
	DictationService    Iservices.IDictationService
	NotificationService Iservices.INotificationService
	Messages            *messages.Catalog
}

func NewDispatcher(logger *logger.Logger, dictationService Iservices.IDictationService, notificationService Iservices.INotificationService, catalog *messages.Catalog) *Dispatcher {
	return &Dispatcher{
		Logger:              logger,
		DictationService:    dictationService,
		NotificationService: notificationService,
		Messages:            catalog,
	}
}

// Dispatch runs the handler for ev and recovers from both returned errors
// and panics.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			reply = d.catchAll(ev, fmt.Errorf("panic: %v", r), string(debug.Stack()))
		}
	}()

	reply, err := d.handle(ctx, ev)
	if err != nil {
		return d.catchAll(ev, err, "")
	}
	return reply
}

func (d *Dispatcher) handle(ctx context.Context, ev Event) (Reply, error) {
	switch ev.Kind {
	case EventLaunch:
		return d.launch(), nil
	case EventBeginDictation:
		return d.beginDictation(ev), nil
	case EventAppendDictation:
		return d.appendDictation(ev), nil
	case EventFinishDictation:
		return d.finishDictation(ctx, ev)
	case EventSendTranscript:
		return d.sendTranscript(ctx, ev)
	case EventClose, EventCancelOrStop:
		return d.goodbye(), nil
	case EventHelp:
		return d.help(), nil
	case EventSessionEnded:
		return d.sessionEnded(ev), nil
	case EventUnknown:
		return Reply{}, fmt.Errorf("%w: request=%q intent=%q", ErrUnknownEvent, ev.RequestType, ev.IntentName)
	}
	return Reply{}, fmt.Errorf("no handler for event kind %s", ev.Kind)
}

func (d *Dispatcher) catchAll(ev Event, err error, stack string) Reply {
	fields := logrus.Fields{
		"event":      ev.Kind.String(),
		"request":    ev.RequestType,
		"intent":     ev.IntentName,
		"request_id": ev.RequestID,
		"user_id":    ev.UserID,
		"error":      err.Error(),
	}
	if stack != "" {
		fields["stack"] = stack
	}
	d.Logger.Error("Unhandled failure while handling request", fields)

	return Reply{
		Speech:   d.Messages.Error,
		Reprompt: d.Messages.Error,
	}
}
