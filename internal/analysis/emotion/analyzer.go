package emotion

import "strings"

// Label identifies one of the coarse emotional categories tracked per turn.
type Label string

const (
	Neutral    Label = "neutral"
	Sadness    Label = "sadness"
	Anxiety    Label = "anxiety"
	Anger      Label = "anger"
	Joy        Label = "joy"
	Confusion  Label = "confusion"
	Resistance Label = "resistance"
)

// DefaultIntensity is applied when no keyword matches the user message.
const DefaultIntensity = 3

// Reading captures the classifier outcome for a single user message.
type Reading struct {
	Emotion   Label
	Intensity int
	Matches   []string
}

// labelOrder fixes the tie-break: the earliest declared category wins when two
// buckets collect the same number of matches.
var labelOrder = []Label{Sadness, Anxiety, Anger, Joy, Confusion, Resistance}

var keywordBuckets = map[Label][]string{
	Sadness: {
		"triste", "tristesse", "déprim", "abattu", "malheureu", "chagrin", "pleur",
		"larmes", "vide", "seul", "solitude", "découragé", "sombre",
		"sad", "depressed", "lonely", "crying", "miserable", "empty",
	},
	Anxiety: {
		"anxieu", "angoiss", "stress", "inquiet", "inquiète", "peur", "panique",
		"nerveu", "oppressé", "insomnie", "palpitations", "tendu",
		"anxious", "anxiety", "worried", "panic", "nervous", "scared", "overwhelmed",
	},
	Anger: {
		"colère", "énervé", "furieu", "rage", "agacé", "frustré", "injuste",
		"insupportable", "marre", "exaspéré",
		"angry", "furious", "frustrated", "annoyed", "unfair", "fed up",
	},
	Joy: {
		"heureu", "content", "joie", "joyeu", "fier", "fière", "soulagé", "mieux",
		"progrès", "réussi", "merci", "génial",
		"happy", "glad", "proud", "relieved", "better", "great", "thank",
	},
	Confusion: {
		"perdu", "confus", "comprends pas", "sais pas", "flou", "incertain",
		"hésite", "doute", "pourquoi moi",
		"confused", "lost", "don't understand", "don't know", "unsure", "unclear",
	},
	Resistance: {
		"ça sert à rien", "inutile", "pas envie", "laissez-moi", "fichez-moi la paix",
		"personne ne comprend", "pas besoin d'aide", "déjà essayé", "ça ne marchera pas",
		"pointless", "useless", "leave me alone", "won't work", "already tried",
		"don't need help",
	},
}

// Analyze derives the dominant emotion of a user message by counting keyword
// matches per category. It is deterministic and never fails: a message with no
// match yields Neutral at DefaultIntensity.
func Analyze(text string) Reading {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Reading{Emotion: Neutral, Intensity: DefaultIntensity}
	}

	counts := make(map[Label]int, len(labelOrder))
	matched := make(map[Label][]string, len(labelOrder))
	for _, label := range labelOrder {
		for _, keyword := range keywordBuckets[label] {
			if strings.Contains(normalized, keyword) {
				counts[label]++
				matched[label] = append(matched[label], keyword)
			}
		}
	}

	best := Neutral
	bestCount := 0
	for _, label := range labelOrder {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}

	if bestCount == 0 {
		return Reading{Emotion: Neutral, Intensity: DefaultIntensity}
	}

	intensity := bestCount
	if intensity > 10 {
		intensity = 10
	}
	return Reading{Emotion: best, Intensity: intensity, Matches: matched[best]}
}
