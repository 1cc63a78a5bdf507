package voice

import (
	"github.com/serein-care/serein/backend/internal/analysis/emotion"
	"github.com/serein-care/serein/backend/internal/model/chat"
	"github.com/serein-care/serein/backend/internal/model/persona"
)

// rateShift nudges the persona's base speaking rate per detected emotion.
// Distressed states slow delivery down; joy lifts it slightly.
var rateShift = map[emotion.Label]float64{
	emotion.Sadness:    -0.10,
	emotion.Anxiety:    -0.08,
	emotion.Anger:      -0.05,
	emotion.Joy:        +0.05,
	emotion.Confusion:  -0.05,
	emotion.Resistance: 0,
	emotion.Neutral:    0,
}

// Derive computes the audio-collaborator parameter block for a reply. The
// core only supplies these values; synthesis and playback live elsewhere.
func Derive(profile *persona.Profile, reading emotion.Reading) *chat.VoiceGuidance {
	if profile == nil {
		return nil
	}

	rate := profile.Voice.SpeakingRate + rateShift[reading.Emotion]
	if rate < 0.6 {
		rate = 0.6
	}
	if rate > 1.3 {
		rate = 1.3
	}

	return &chat.VoiceGuidance{
		VoiceID:       profile.Voice.VoiceID,
		LanguageCode:  profile.Voice.LanguageCode,
		SpeakingRate:  rate,
		Pitch:         profile.Voice.Pitch,
		VolumeGainDb:  profile.Voice.VolumeGainDb,
		EmotionalTone: string(reading.Emotion),
	}
}
