package persona

import "github.com/serein-care/serein/backend/internal/analysis/emotion"

// Profile captures the fixed role-playing attributes of one therapeutic persona.
// Profiles are immutable at runtime: personalization derives new text from these
// tables, it never edits them.
type Profile struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Title           string `json:"title"`
	Specialty       string `json:"specialty"`
	Backstory       string `json:"backstory"`
	YearsOfPractice int    `json:"yearsOfPractice"`
	Approach        string `json:"approach"`
	Personality     string `json:"personality"`
	Language        string `json:"language"`

	Style    CommunicationStyle               `json:"style"`
	Patterns map[emotion.Label]ResponsePattern `json:"-"`
	Voice    VoiceProfile                     `json:"voice"`
	Crisis   CrisisSensitivity                `json:"crisis"`

	// CulturalRules hold per-tag phrase substitutions applied when the
	// conversation declares a matching cultural background.
	CulturalRules []CulturalRule `json:"-"`

	// CoreValues feed the authenticity score of the consistency corrector.
	CoreValues []string `json:"-"`

	// SpecialtyAnswers are the canned identity-probe replies; the first entry
	// doubles as the specialty description frozen into the prompt snapshot.
	SpecialtyAnswers []string `json:"-"`

	// ContextualTemplates replace replies the corrector deems unsalvageable.
	ContextualTemplates []string `json:"-"`

	ThemeIDs []string `json:"themeIds"`
}

// CommunicationStyle describes how the persona phrases its replies.
type CommunicationStyle struct {
	GreetingStyle     string `json:"greetingStyle"`
	Tone              string `json:"tone"`
	ResponseLength    string `json:"responseLength"`
	UsesMetaphors     bool   `json:"usesMetaphors"`
	UsesCulturalRefs  bool   `json:"usesCulturalRefs"`
}

// ResponsePattern holds the ordered candidate phrases for one emotion, one
// list per structural slot of a therapeutic reply.
type ResponsePattern struct {
	Acknowledgments []string
	Validations     []string
	Explorations    []string
	Interventions   []string
	Closings        []string
}

// VoiceProfile is delivery metadata consumed only by the audio collaborator.
type VoiceProfile struct {
	VoiceID      string  `json:"voiceId"`
	LanguageCode string  `json:"languageCode"`
	SpeakingRate float64 `json:"speakingRate"`
	Pitch        float64 `json:"pitch"`
	VolumeGainDb float64 `json:"volumeGainDb"`
	PauseStyle   string  `json:"pauseStyle"`
}

// CrisisSensitivity tunes how the persona frames an escalation.
type CrisisSensitivity struct {
	Tier            string `json:"tier"`
	EscalationStyle string `json:"escalationStyle"`
}

// Substitution is one ordered phrase rewrite of a cultural adaptation rule.
type Substitution struct {
	From string
	To   string
}

// CulturalRule adapts persona phrasing for a declared cultural background.
type CulturalRule struct {
	Tag           string
	Substitutions []Substitution
}

// SpecialtyDescription returns the canonical one-line description used in the
// identity-lock snapshot.
func (p *Profile) SpecialtyDescription() string {
	if len(p.SpecialtyAnswers) > 0 {
		return p.SpecialtyAnswers[0]
	}
	return p.Specialty
}

// Pattern returns the response pattern for a label, falling back to the
// sadness table so callers always receive usable phrase lists.
func (p *Profile) Pattern(label emotion.Label) ResponsePattern {
	if pattern, ok := p.Patterns[label]; ok {
		return pattern
	}
	return p.Patterns[emotion.Sadness]
}

// RuleFor returns the cultural adaptation rule matching the given tag.
func (p *Profile) RuleFor(tag string) (CulturalRule, bool) {
	for _, rule := range p.CulturalRules {
		if rule.Tag == tag {
			return rule, true
		}
	}
	return CulturalRule{}, false
}
