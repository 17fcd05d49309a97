package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"voice-notes/internal/domain/dto"
	"voice-notes/internal/domain/entities"
	Iservices "voice-notes/internal/domain/interfaces/services"
	"voice-notes/internal/infra/logger"
	"voice-notes/internal/infra/skill"

	"github.com/sirupsen/logrus"
)

const envelopeVersion = "1.0"

// maxEnvelopeBytes bounds the request body the skill endpoint will decode.
const maxEnvelopeBytes = 1 << 20

type Dispatcher interface {
	Dispatch(ctx context.Context, ev skill.Event) skill.Reply
}

type SkillHandlers struct {
	Logger     *logger.Logger
	Dispatcher Dispatcher
}

func NewSkillHandlers(logger *logger.Logger, dispatcher Dispatcher) *SkillHandlers {
	return &SkillHandlers{Logger: logger, Dispatcher: dispatcher}
}

// SkillWebhook receives one request envelope from the voice platform and
// answers with the response envelope for that turn.
//
// HTTP Status Codes:
//   - 200 OK: every decodable envelope, including failed turns (they carry an apology).
//   - 400 Bad Request: the body is not a valid envelope.
func (th *SkillHandlers) SkillWebhook(w http.ResponseWriter, r *http.Request) {
	var envelope dto.RequestEnvelope
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEnvelopeBytes)).Decode(&envelope); err != nil {
		th.Logger.Error(fmt.Sprintf("Invalid JSON payload: %s", err.Error()))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if envelope.Request.Type == "" {
		th.Logger.Warn("Received envelope without request type.")
		http.Error(w, "Missing request type", http.StatusBadRequest)
		return
	}

	ev := EventFromEnvelope(&envelope)
	th.Logger.Info("Handling request", logrus.Fields{
		"event":      ev.Kind.String(),
		"request":    ev.RequestType,
		"intent":     ev.IntentName,
		"request_id": ev.RequestID,
	})

	reply := th.Dispatcher.Dispatch(r.Context(), ev)
	response := ResponseFromReply(&envelope, reply)

	payload, err := json.Marshal(response)
	if err != nil {
		th.Logger.Error(fmt.Sprintf("Failed to marshal response: %v", err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	th.Logger.Debug(fmt.Sprintf("Response JSON: %s", string(payload)))

	w.Header().Set("Content-Type", "application/json;charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// EventFromEnvelope extracts everything the dispatcher needs from the
// platform envelope.
func EventFromEnvelope(envelope *dto.RequestEnvelope) skill.Event {
	req := envelope.Request
	ev := skill.Event{
		RequestType: req.Type,
		RequestID:   req.RequestID,
		Slots:       map[string]string{},
	}
	if req.Intent != nil {
		ev.IntentName = req.Intent.Name
		for name, slot := range req.Intent.Slots {
			ev.Slots[name] = slot.Value
		}
	}
	ev.Kind = skill.Classify(ev.RequestType, ev.IntentName)

	if envelope.Session != nil {
		ev.UserID = envelope.Session.User.UserID
		ev.Session = entities.SessionStateFromAttributes(envelope.Session.Attributes)
	}

	var consent Iservices.Consent
	if envelope.Context != nil {
		sys := envelope.Context.System
		if ev.UserID == "" {
			ev.UserID = sys.User.UserID
		}
		if sys.User.Permissions != nil {
			consent.Token = sys.User.Permissions.ConsentToken
		}
		consent.APIEndpoint = sys.APIEndpoint
		consent.APIAccessToken = sys.APIAccessToken
	}
	ev.Consent = consent

	if req.Type == skill.RequestSessionEnded {
		ev.EndReason = req.Reason
		if req.Error != nil {
			ev.EndError = fmt.Sprintf("%s: %s", req.Error.Type, req.Error.Message)
		}
	}

	return ev
}

// ResponseFromReply builds the response envelope. Session attributes are
// echoed back, with the reply's dictation state applied when it has one.
func ResponseFromReply(envelope *dto.RequestEnvelope, reply skill.Reply) dto.ResponseEnvelope {
	var attrs map[string]interface{}
	if envelope.Session != nil {
		attrs = envelope.Session.Attributes
	}
	if reply.Session != nil {
		attrs = reply.Session.ApplyTo(attrs)
	}

	out := dto.ResponseEnvelope{
		Version:           envelopeVersion,
		SessionAttributes: attrs,
	}

	if reply.Speech != "" {
		out.Response.OutputSpeech = ssml(reply.Speech)
	}
	if reply.Reprompt != "" {
		out.Response.Reprompt = &dto.Reprompt{OutputSpeech: *ssml(reply.Reprompt)}
	}
	if reply.Card != nil {
		out.Response.Card = toCard(reply.Card)
	}

	// A reprompt keeps the microphone open; without one the platform decides.
	switch {
	case reply.EndSession:
		end := true
		out.Response.ShouldEndSession = &end
	case reply.Reprompt != "":
		end := false
		out.Response.ShouldEndSession = &end
	}

	return out
}

func toCard(c *skill.Card) *dto.Card {
	switch c.Kind {
	case skill.CardPermissionConsent:
		return &dto.Card{Type: dto.CardAskForPermissionsConsent, Permissions: c.Permissions}
	default:
		return &dto.Card{Type: dto.CardSimple, Title: c.Title, Content: c.Content}
	}
}

var ssmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func ssml(text string) *dto.OutputSpeech {
	return &dto.OutputSpeech{
		Type: dto.OutputSpeechSSML,
		SSML: "<speak>" + ssmlEscaper.Replace(text) + "</speak>",
	}
}
