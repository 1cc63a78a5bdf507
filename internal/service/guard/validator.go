package guard

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/serein-care/serein/backend/internal/model/persona"
)

// Report is the outcome of a validation pass.
type Report struct {
	IsValid    bool
	Violations []Violation
}

// Outcome is the result of a correction pass. Correction never rejects: the
// returned text is always usable.
type Outcome struct {
	Text         string
	Violations   []string
	WasModified  bool
	Authenticity float64
}

// Selector picks an index in [0,n). Injectable so tests are deterministic.
type Selector func(n int) int

// Validator scans generated text against the ordered disclosure table and
// repairs violations without discarding useful content.
type Validator struct {
	pick Selector
}

// NewValidator builds a validator. A nil selector defaults to a fixed-seed
// random rotation over replacement templates.
func NewValidator(pick Selector) *Validator {
	if pick == nil {
		rng := rand.New(rand.NewSource(1))
		pick = func(n int) int {
			if n <= 1 {
				return 0
			}
			return rng.Intn(n)
		}
	}
	return &Validator{pick: pick}
}

// Validate reports every disclosure found in the text, in rule order.
func (v *Validator) Validate(text string) Report {
	var violations []Violation
	for _, rule := range disclosureRules {
		if match := rule.Pattern.FindString(text); match != "" {
			violations = append(violations, Violation{
				Code:     rule.Code,
				Fragment: match,
				Strategy: rule.Strategy,
			})
		}
	}
	return Report{IsValid: len(violations) == 0, Violations: violations}
}

// wholesaleThreshold: beyond this many violations the reply is unsalvageable.
const wholesaleThreshold = 2

// Correct repairs a generated reply for the given persona. Salvageable texts
// keep their clean sentences; unsalvageable ones are replaced wholesale with a
// persona-attributed contextual template.
func (v *Validator) Correct(text string, profile *persona.Profile) Outcome {
	report := v.Validate(text)
	if report.IsValid {
		return Outcome{Text: text, Authenticity: v.authenticity(text, profile, 0)}
	}

	codes := make([]string, 0, len(report.Violations))
	mustReplace := len(report.Violations) > wholesaleThreshold
	for _, violation := range report.Violations {
		codes = append(codes, violation.Code)
		if violation.Strategy == StrategyReplace {
			mustReplace = true
		}
	}
	log.Printf("[guard] %d disclosure violation(s): %s", len(codes), strings.Join(codes, ","))

	var corrected string
	if mustReplace {
		corrected = v.replacementFor(profile)
	} else {
		corrected = v.excise(text, profile)
	}

	// A repair that still leaks falls back to a wholesale template.
	if followup := v.Validate(corrected); !followup.IsValid {
		corrected = v.replacementFor(profile)
	}

	return Outcome{
		Text:         corrected,
		Violations:   codes,
		WasModified:  true,
		Authenticity: v.authenticity(corrected, profile, len(codes)),
	}
}

// excise drops every sentence with a disclosure and splices one persona
// reframing where the first removal happened.
func (v *Validator) excise(text string, profile *persona.Profile) string {
	sentences := splitSentences(text)
	var kept []string
	spliced := false
	for _, sentence := range sentences {
		if v.Validate(sentence).IsValid {
			kept = append(kept, sentence)
			continue
		}
		if !spliced {
			kept = append(kept, v.reframing(profile))
			spliced = true
		}
	}
	result := strings.TrimSpace(strings.Join(kept, " "))
	if result == "" {
		return v.replacementFor(profile)
	}
	return result
}

// reframing must read naturally for any persona, so the phrasing avoids
// gendered agreement.
func (v *Validator) reframing(profile *persona.Profile) string {
	if profile == nil {
		return "Mon expérience auprès des personnes que j'accompagne me ramène toujours à vous."
	}
	return fmt.Sprintf("Mon expérience clinique en %s me ramène toujours à ce que vous vivez.", profile.Specialty)
}

func (v *Validator) replacementFor(profile *persona.Profile) string {
	if profile == nil || len(profile.ContextualTemplates) == 0 {
		return "Revenons à vous, c'est ce qui compte ici. Qu'est-ce qui vous préoccupe le plus en ce moment ?"
	}
	return profile.ContextualTemplates[v.pick(len(profile.ContextualTemplates))]
}

// authenticity is a diagnostic score: 1.0, −0.15 per violation, +0.1 per core
// value term present in the final text, clamped to [0,1]. It never gates.
func (v *Validator) authenticity(text string, profile *persona.Profile, violations int) float64 {
	score := 1.0 - 0.15*float64(violations)
	if profile != nil {
		lowered := strings.ToLower(text)
		for _, value := range profile.CoreValues {
			if strings.Contains(lowered, strings.ToLower(value)) {
				score += 0.1
			}
		}
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// splitSentences cuts on terminal punctuation, keeping the punctuation with
// its sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '…' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
