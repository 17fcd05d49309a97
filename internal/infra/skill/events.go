package skill

import (
	"voice-notes/internal/domain/entities"
	Iservices "voice-notes/internal/domain/interfaces/services"
)

// EventKind is the closed set of inbound events the skill understands.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventLaunch
	EventBeginDictation
	EventAppendDictation
	EventFinishDictation
	EventSendTranscript
	EventClose
	EventHelp
	EventCancelOrStop
	EventSessionEnded
)

var eventKindNames = [...]string{
	EventUnknown:         "Unknown",
	EventLaunch:          "Launch",
	EventBeginDictation:  "BeginDictation",
	EventAppendDictation: "AppendDictation",
	EventFinishDictation: "FinishDictation",
	EventSendTranscript:  "SendTranscript",
	EventClose:           "Close",
	EventHelp:            "Help",
	EventCancelOrStop:    "CancelOrStop",
	EventSessionEnded:    "SessionEnded",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "EventKind(?)"
	}
	return eventKindNames[k]
}

// EventKinds lists every kind, EventUnknown included.
func EventKinds() []EventKind {
	kinds := make([]EventKind, len(eventKindNames))
	for i := range eventKindNames {
		kinds[i] = EventKind(i)
	}
	return kinds
}

// Request types and intent names used by the voice platform.
const (
	RequestLaunch       = "LaunchRequest"
	RequestIntent       = "IntentRequest"
	RequestSessionEnded = "SessionEndedRequest"

	IntentWrite   = "ScriviIntent"
	IntentDictate = "DictationIntent"
	IntentFinish  = "FinishIntent"
	IntentSend    = "InviaIntent"
	IntentClose   = "ChiudiIntent"
	IntentHelp    = "AMAZON.HelpIntent"
	IntentCancel  = "AMAZON.CancelIntent"
	IntentStop    = "AMAZON.StopIntent"

	SlotDictation = "dictation"

	PermissionProfileEmail = "alexa::profile:email:read"
)

var intentKinds = map[string]EventKind{
	IntentWrite:   EventBeginDictation,
	IntentDictate: EventAppendDictation,
	IntentFinish:  EventFinishDictation,
	IntentSend:    EventSendTranscript,
	IntentClose:   EventClose,
	IntentHelp:    EventHelp,
	IntentCancel:  EventCancelOrStop,
	IntentStop:    EventCancelOrStop,
}

// Classify maps a request type and, for intent requests, the intent name
// to an EventKind.
func Classify(requestType, intentName string) EventKind {
	switch requestType {
	case RequestLaunch:
		return EventLaunch
	case RequestSessionEnded:
		return EventSessionEnded
	case RequestIntent:
		if kind, ok := intentKinds[intentName]; ok {
			return kind
		}
	}
	return EventUnknown
}

// Event is one turn of a conversation, already decoded from the envelope.
type Event struct {
	Kind        EventKind
	RequestType string
	IntentName  string
	RequestID   string
	UserID      string
	Slots       map[string]string
	Session     entities.SessionState
	Consent     Iservices.Consent

	EndReason string
	EndError  string
}

type CardKind int

const (
	CardSimple CardKind = iota
	CardPermissionConsent
)

type Card struct {
	Kind        CardKind
	Title       string
	Content     string
	Permissions []string
}

// Reply is what a handler produces for one turn. A nil Session leaves the
// session attributes as they came in.
type Reply struct {
	Speech     string
	Reprompt   string
	Card       *Card
	Session    *entities.SessionState
	EndSession bool
}
