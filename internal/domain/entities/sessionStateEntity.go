package entities

const (
	AttrIsRecording   = "is_recording"
	AttrRecordingText = "recording_text"
)

// SessionState is the dictation progress carried in the conversation's
// session attributes. It is never written to the note table.
type SessionState struct {
	IsRecording   bool
	RecordingText string
}

// SessionStateFromAttributes reads the dictation fields out of the session
// attributes. Missing or mistyped values fall back to the zero state.
func SessionStateFromAttributes(attrs map[string]interface{}) SessionState {
	var state SessionState
	if attrs == nil {
		return state
	}
	if v, ok := attrs[AttrIsRecording].(bool); ok {
		state.IsRecording = v
	}
	if v, ok := attrs[AttrRecordingText].(string); ok {
		state.RecordingText = v
	}
	return state
}

// ApplyTo writes the state into attrs, keeping every unrelated attribute.
func (s SessionState) ApplyTo(attrs map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(attrs)+2)
	for k, v := range attrs {
		out[k] = v
	}
	out[AttrIsRecording] = s.IsRecording
	out[AttrRecordingText] = s.RecordingText
	return out
}
