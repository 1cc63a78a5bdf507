package orchestrator

import (
	"regexp"

	"github.com/serein-care/serein/backend/internal/model/persona"
)

// identityProbes match messages asking about the persona's identity, nature
// or specialty. Matching turns are answered from the persona's canned
// templates; the completion provider is never called for them.
var identityProbes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)quelle est (votre|ta) spécialité`),
	regexp.MustCompile(`(?i)c'est quoi (votre|ta) spécialité`),
	regexp.MustCompile(`(?i)(êtes|es)[- ]?(vous|tu) (un |une )?(robot|intelligence artificielle|ia\b|machine|programme|humain|réel|réelle|vrai)`),
	regexp.MustCompile(`(?i)qui (êtes-vous|es-tu)`),
	regexp.MustCompile(`(?i)parlez-moi de (vous|votre parcours|votre formation)`),
	regexp.MustCompile(`(?i)(votre|ta) (formation|parcours|expérience professionnelle)`),
	regexp.MustCompile(`(?i)what('s| is) your special`),
	regexp.MustCompile(`(?i)are you (a |an )?(robot|bot|ai\b|artificial|human|real|machine)`),
	regexp.MustCompile(`(?i)who are you`),
	regexp.MustCompile(`(?i)tell me about (yourself|your background)`),
}

// specialtyAnswer intercepts identity probes for a bound persona. Without a
// persona the probe falls through to normal generation, where the validator
// still guards the output.
func (o *Orchestrator) specialtyAnswer(profile *persona.Profile, message string) (string, bool) {
	if profile == nil || len(profile.SpecialtyAnswers) == 0 {
		return "", false
	}
	for _, probe := range identityProbes {
		if probe.MatchString(message) {
			return profile.SpecialtyAnswers[o.pick(len(profile.SpecialtyAnswers))], true
		}
	}
	return "", false
}
