package chat

// TurnRequest is a single inbound user turn submitted by the app layer.
type TurnRequest struct {
	ConversationID string    `json:"conversationId"`
	Message        string    `json:"message"`
	History        []Message `json:"history,omitempty"`
}

// VoiceGuidance carries the delivery parameters handed to the audio collaborator.
// The core only produces these values, it never consumes audio.
type VoiceGuidance struct {
	VoiceID       string  `json:"voiceId"`
	LanguageCode  string  `json:"languageCode"`
	SpeakingRate  float64 `json:"speakingRate"`
	Pitch         float64 `json:"pitch"`
	VolumeGainDb  float64 `json:"volumeGainDb"`
	EmotionalTone string  `json:"emotionalTone"`
}

// TurnResult is the orchestrator outcome returned to the app layer.
type TurnResult struct {
	Text          string         `json:"text"`
	WasCorrected  bool           `json:"wasCorrected"`
	Violations    []string       `json:"violations,omitempty"`
	Techniques    []string       `json:"techniques,omitempty"`
	Followups     []string       `json:"followups,omitempty"`
	EmotionalTone string         `json:"emotionalTone"`
	CrisisFlag    bool           `json:"crisisFlag"`
	Resources     []string       `json:"resources,omitempty"`
	Voice         *VoiceGuidance `json:"voice,omitempty"`
}
