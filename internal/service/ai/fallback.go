package ai

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/serein-care/serein/backend/internal/analysis/emotion"
	"github.com/serein-care/serein/backend/internal/model/persona"
)

// FallbackKind classifies the user message when every provider has failed.
type FallbackKind string

const (
	FallbackGreeting  FallbackKind = "greeting"
	FallbackEmotional FallbackKind = "emotional"
	FallbackPositive  FallbackKind = "positive"
	FallbackQuestion  FallbackKind = "question"
	FallbackGeneric   FallbackKind = "generic"
)

// Picker selects an index in [0,n). Injectable so tests force a fixed choice.
type Picker func(n int) int

// RandomPicker returns a Picker backed by the given source.
func RandomPicker(src rand.Source) Picker {
	rng := rand.New(src)
	return func(n int) int {
		if n <= 1 {
			return 0
		}
		return rng.Intn(n)
	}
}

// Fallback serves persona-attributed stock replies. It never fails and never
// returns empty text.
type Fallback struct {
	pick Picker
}

// NewFallback builds the canned-reply library. A nil picker defaults to a
// fixed-seed random source.
func NewFallback(pick Picker) *Fallback {
	if pick == nil {
		pick = RandomPicker(rand.NewSource(1))
	}
	return &Fallback{pick: pick}
}

var greetingMarkers = []string{"bonjour", "bonsoir", "salut", "coucou", "hello", "hi"}
var positiveMarkers = []string{"merci", "mieux", "content", "heureu", "thank", "better", "great"}

// hasWordPrefix reports whether text starts with word at a word boundary, so
// "hi" matches "hi there" but not "hier".
func hasWordPrefix(text, word string) bool {
	if !strings.HasPrefix(text, word) {
		return false
	}
	rest := text[len(word):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return !unicode.IsLetter(r)
}

// Classify buckets the message for reply selection.
func (f *Fallback) Classify(message string, reading emotion.Reading) FallbackKind {
	normalized := strings.ToLower(strings.TrimSpace(message))
	for _, marker := range greetingMarkers {
		if hasWordPrefix(normalized, marker) {
			return FallbackGreeting
		}
	}
	for _, marker := range positiveMarkers {
		if strings.Contains(normalized, marker) {
			return FallbackPositive
		}
	}
	if strings.HasSuffix(normalized, "?") {
		return FallbackQuestion
	}
	if reading.Emotion != emotion.Neutral {
		return FallbackEmotional
	}
	return FallbackGeneric
}

// Reply picks a stock reply for the message. The profile may be nil when no
// persona is bound; the reply then stays unattributed but still therapeutic.
func (f *Fallback) Reply(profile *persona.Profile, message string, reading emotion.Reading) (string, FallbackKind) {
	kind := f.Classify(message, reading)
	candidates := f.candidates(profile, kind, reading)
	return candidates[f.pick(len(candidates))], kind
}

func (f *Fallback) candidates(profile *persona.Profile, kind FallbackKind, reading emotion.Reading) []string {
	name := ""
	if profile != nil {
		name = profile.Name
	}

	switch kind {
	case FallbackGreeting:
		if profile != nil {
			return []string{
				fmt.Sprintf("Bonjour, je suis %s. Je suis heureuse de vous retrouver. Comment allez-vous aujourd'hui ?", name),
				fmt.Sprintf("Bonjour. C'est %s. Prenons un moment ensemble : qu'est-ce qui vous amène ?", name),
			}
		}
		return []string{
			"Bonjour, et bienvenue. Comment vous sentez-vous aujourd'hui ?",
			"Bonjour. Je suis là pour vous écouter. Par quoi souhaitez-vous commencer ?",
		}
	case FallbackEmotional:
		base := []string{
			"J'entends que ce moment est difficile pour vous. Prenez le temps de poser ce que vous ressentez, je vous lis attentivement.",
			"Ce que vous vivez mérite toute mon attention. Dites-m'en un peu plus, à votre rythme.",
		}
		if profile != nil {
			if pattern, ok := profile.Patterns[reading.Emotion]; ok && len(pattern.Acknowledgments) > 0 {
				base = append([]string{pattern.Acknowledgments[0] + " Dites-m'en davantage, je vous écoute."}, base...)
			}
		}
		return base
	case FallbackPositive:
		return []string{
			"C'est une bonne nouvelle, et je m'en réjouis avec vous. Qu'est-ce qui a contribué à ce mieux ?",
			"Merci de partager cela. Ces moments positifs comptent ; j'aimerais en entendre davantage.",
		}
	case FallbackQuestion:
		return []string{
			"C'est une question importante. Avant d'y répondre, j'aimerais mieux comprendre ce qui la motive : que se passe-t-il pour vous en ce moment ?",
			"Votre question mérite qu'on s'y arrête. Pouvez-vous me dire ce qui vous y amène aujourd'hui ?",
		}
	default:
		return []string{
			"Je suis là, avec vous. Continuez, je vous écoute.",
			"Prenons le temps qu'il faut. Qu'aimeriez-vous aborder maintenant ?",
		}
	}
}
