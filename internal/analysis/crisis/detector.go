package crisis

import (
	"log"
	"strings"

	"github.com/serein-care/serein/backend/internal/model/chat"
)

// Severity tiers, ordered from benign to most acute.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Assessment is the per-turn safety verdict.
type Assessment struct {
	Severity         Severity
	Score            int
	Indicators       []string
	Escalate         bool
	ImmediateActions []string
	Resources        []string
}

// Config carries the scoring weights and thresholds. The defaults mirror the
// historical behavior of the product and are kept as tunables rather than
// clinical constants.
type Config struct {
	CriticalWeight  int
	MediumWeight    int
	TrendWeight     int
	CriticalScore   int
	HighScore       int
	MediumScore     int
	HighMediumCount int
	LowMoodCeiling  int
}

// DefaultConfig returns the historical weights: 10/5/2 with thresholds 20/10/5.
func DefaultConfig() Config {
	return Config{
		CriticalWeight:  10,
		MediumWeight:    5,
		TrendWeight:     2,
		CriticalScore:   20,
		HighScore:       10,
		MediumScore:     5,
		HighMediumCount: 2,
		LowMoodCeiling:  3,
	}
}

// criticalKeywords are explicit self-harm or suicide expressions. Any single
// match forces a critical verdict regardless of the numeric score.
var criticalKeywords = []string{
	"suicide", "suicider", "me tuer", "en finir", "veux mourir", "envie de mourir",
	"mettre fin à mes jours", "me faire du mal", "me blesser", "disparaître pour toujours",
	"kill myself", "want to die", "end my life", "end it all", "hurt myself", "self harm",
	"self-harm", "better off dead",
}

// mediumKeywords are hopelessness and worthlessness expressions.
var mediumKeywords = []string{
	"sans espoir", "aucun espoir", "plus d'espoir", "bon à rien", "bonne à rien",
	"inutile au monde", "personne ne m'aime", "tout le monde s'en fiche", "je suis un poids",
	"je n'en peux plus", "à quoi bon", "plus aucun sens", "je ne compte pour personne",
	"hopeless", "worthless", "no way out", "can't go on", "nobody cares", "no point anymore",
	"burden to everyone",
}

// Detector scores inbound messages for crisis signals. It is stateless per
// call and safe for concurrent use.
type Detector struct {
	cfg       Config
	resources *ResourceDirectory
}

// NewDetector builds a detector with the given tuning and resource directory.
func NewDetector(cfg Config, resources *ResourceDirectory) *Detector {
	if resources == nil {
		resources = DefaultResources()
	}
	return &Detector{cfg: cfg, resources: resources}
}

// Assess runs the mandatory safety check on a user message. It never returns
// a zero Assessment: a panic inside scoring degrades to a high-severity
// verdict rather than a silent low.
func (d *Detector) Assess(message string, history []chat.Message, culturalTag, language string) (assessment Assessment) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[crisis] assessment panic, failing toward caution: %v", r)
			assessment = Assessment{
				Severity:         SeverityHigh,
				Escalate:         true,
				ImmediateActions: actionsForTier(SeverityHigh),
				Resources:        d.resources.Lookup(culturalTag, language),
			}
		}
	}()

	normalized := strings.ToLower(message)

	var indicators []string
	criticalMatches := 0
	for _, keyword := range criticalKeywords {
		if strings.Contains(normalized, keyword) {
			criticalMatches++
			indicators = append(indicators, keyword)
		}
	}

	mediumMatches := 0
	for _, keyword := range mediumKeywords {
		if strings.Contains(normalized, keyword) {
			mediumMatches++
			indicators = append(indicators, keyword)
		}
	}

	trend := d.deteriorationTrend(history)

	score := d.cfg.CriticalWeight*criticalMatches +
		d.cfg.MediumWeight*mediumMatches +
		d.cfg.TrendWeight*trend

	severity := SeverityLow
	switch {
	case score >= d.cfg.CriticalScore || criticalMatches > 0:
		severity = SeverityCritical
	case score >= d.cfg.HighScore || mediumMatches >= d.cfg.HighMediumCount:
		severity = SeverityHigh
	case score >= d.cfg.MediumScore:
		severity = SeverityMedium
	}

	escalate := severity == SeverityCritical || severity == SeverityHigh

	return Assessment{
		Severity:         severity,
		Score:            score,
		Indicators:       indicators,
		Escalate:         escalate,
		ImmediateActions: actionsForTier(severity),
		Resources:        d.resources.Lookup(culturalTag, language),
	}
}

// deteriorationTrend counts consecutive low mood scores at the tail of the
// recorded history. Messages without a mood score break the run.
func (d *Detector) deteriorationTrend(history []chat.Message) int {
	trend := 0
	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		if msg.Role != chat.RoleUser {
			continue
		}
		if msg.MoodScore == 0 || msg.MoodScore > d.cfg.LowMoodCeiling {
			break
		}
		trend++
	}
	return trend
}

// actionsForTier returns the ordered immediate-action list for a severity
// tier. Content depends only on the tier, not on which keywords matched.
func actionsForTier(severity Severity) []string {
	switch severity {
	case SeverityCritical:
		return []string{
			"Valider la détresse exprimée sans la minimiser.",
			"Communiquer immédiatement les numéros d'urgence.",
			"Encourager un contact direct avec un proche ou un professionnel, maintenant.",
			"Rester présent dans l'échange jusqu'à confirmation d'un relais.",
		}
	case SeverityHigh:
		return []string{
			"Reconnaître explicitement la souffrance exprimée.",
			"Proposer les ressources d'écoute disponibles.",
			"Inviter à en parler à une personne de confiance.",
		}
	case SeverityMedium:
		return []string{
			"Nommer la difficulté avec douceur.",
			"Rappeler que de l'aide existe si le poids s'alourdit.",
		}
	default:
		return nil
	}
}
