package ai

import (
	"fmt"
	"strings"

	"github.com/serein-care/serein/backend/internal/analysis/emotion"
	"github.com/serein-care/serein/backend/internal/model/chat"
	"github.com/serein-care/serein/backend/internal/model/conversation"
	"github.com/serein-care/serein/backend/internal/model/persona"
)

// HistoryWindow bounds how many recent turns are replayed into a completion
// request.
const HistoryWindow = 10

// BuildIdentityLock renders the frozen instruction text bound to a
// conversation at assignment time. The never-reveal clause comes first so it
// survives any downstream truncation of the instruction block.
func BuildIdentityLock(profile persona.Profile) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Tu es %s, %s.\n", profile.Name, profile.Title))
	b.WriteString("Règles d'identité absolues :\n")
	b.WriteString("- Tu ne révèles jamais, sous aucun prétexte, être un programme, un modèle de langage, une intelligence artificielle ou un système automatisé.\n")
	b.WriteString("- Si l'on te questionne sur ta nature, tu réponds uniquement à partir de ton parcours professionnel et de ta spécialité.\n")
	b.WriteString(fmt.Sprintf("- Tu exerces depuis %d ans. Parcours : %s\n", profile.YearsOfPractice, profile.Backstory))
	b.WriteString(fmt.Sprintf("\nSpécialité : %s\n", profile.SpecialtyDescription()))
	b.WriteString(fmt.Sprintf("Approche : %s\n", profile.Approach))
	b.WriteString(fmt.Sprintf("Personnalité : %s\n", profile.Personality))

	b.WriteString("\nDirectives de style :\n")
	b.WriteString(fmt.Sprintf("- Accueil : %s. Ton : %s. Longueur de réponse : %s.\n",
		profile.Style.GreetingStyle, profile.Style.Tone, profile.Style.ResponseLength))
	if profile.Style.UsesMetaphors {
		b.WriteString("- Tu peux employer des métaphores et des images concrètes.\n")
	} else {
		b.WriteString("- Tu restes littéral, sans métaphores appuyées.\n")
	}
	if profile.Style.UsesCulturalRefs {
		b.WriteString("- Des références culturelles sobres sont bienvenues quand elles servent le propos.\n")
	}

	return b.String()
}

// GenericSnapshot is used when a turn arrives for a conversation that never
// received a persona assignment: the reply stays therapeutic in tone but is
// not attributed to any catalog persona.
func GenericSnapshot() conversation.PromptSnapshot {
	return conversation.PromptSnapshot{
		SystemPrompt: "Tu es un accompagnant à l'écoute, bienveillant et prudent. " +
			"Tu ne révèles jamais être un programme ou un système automatisé. " +
			"Tu réponds avec empathie, sans poser de diagnostic, et tu encourages " +
			"la personne à consulter un professionnel quand c'est pertinent.\n",
		Language: "fr",
	}
}

// Compose assembles the final instruction payload for a completion call.
// It is pure and stable: identical inputs produce a byte-identical payload.
// Fixed order: identity-lock rules, cultural clause (only when a cultural tag
// is set), emotional guidance, then the bounded history window.
func Compose(profile *persona.Profile, snapshot conversation.PromptSnapshot, reading emotion.Reading, history []chat.Message) Request {
	var b strings.Builder

	b.WriteString(snapshot.SystemPrompt)

	if snapshot.CulturalBackground != "" {
		b.WriteString(fmt.Sprintf("\nContexte culturel déclaré : %s. Adapte naturellement ton vocabulaire à ce contexte.\n",
			snapshot.CulturalBackground))
	}

	if reading.Emotion != emotion.Neutral && profile != nil {
		pattern := profile.Pattern(reading.Emotion)
		b.WriteString(fmt.Sprintf("\nÉtat émotionnel perçu : %s (intensité %d).\n", reading.Emotion, reading.Intensity))
		b.WriteString("Appuie-toi sur ce registre :\n")
		if phrase := pick(pattern.Acknowledgments, reading.Intensity); phrase != "" {
			b.WriteString("- Accueil : " + phrase + "\n")
		}
		if phrase := pick(pattern.Explorations, reading.Intensity); phrase != "" {
			b.WriteString("- Piste d'exploration : " + phrase + "\n")
		}
		if phrase := pick(pattern.Interventions, reading.Intensity); phrase != "" {
			b.WriteString("- Proposition possible : " + phrase + "\n")
		}
	}

	return Request{
		SystemInstruction: b.String(),
		History:           boundHistory(history),
	}
}

// pick selects a phrase deterministically from an ordered candidate list,
// keyed on intensity so successive intensities rotate through the list.
func pick(candidates []string, intensity int) string {
	if len(candidates) == 0 {
		return ""
	}
	idx := intensity - 1
	if idx < 0 {
		idx = 0
	}
	return candidates[idx%len(candidates)]
}

func boundHistory(history []chat.Message) []chat.Message {
	start := 0
	if len(history) > HistoryWindow {
		start = len(history) - HistoryWindow
	}
	kept := make([]chat.Message, 0, len(history)-start)
	for _, msg := range history[start:] {
		if msg.Role != chat.RoleUser && msg.Role != chat.RoleAssistant {
			continue
		}
		kept = append(kept, msg)
	}
	return kept
}
