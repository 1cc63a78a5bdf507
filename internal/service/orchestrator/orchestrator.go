package orchestrator

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/serein-care/serein/backend/internal/analysis/crisis"
	"github.com/serein-care/serein/backend/internal/analysis/emotion"
	"github.com/serein-care/serein/backend/internal/model/chat"
	"github.com/serein-care/serein/backend/internal/model/conversation"
	"github.com/serein-care/serein/backend/internal/model/persona"
	"github.com/serein-care/serein/backend/internal/service/ai"
	"github.com/serein-care/serein/backend/internal/service/contextstore"
	"github.com/serein-care/serein/backend/internal/service/guard"
	"github.com/serein-care/serein/backend/internal/service/journal"
	"github.com/serein-care/serein/backend/internal/service/transcript"
	"github.com/serein-care/serein/backend/internal/service/voice"
)

var ErrEmptyMessage = errors.New("message is required")

// ContextSource reads the persona binding for a conversation.
type ContextSource interface {
	Get(ctx context.Context, conversationID string) (*conversation.Context, error)
}

// CrisisAssessor runs the mandatory safety check. It is an interface so tests
// can spy on call ordering.
type CrisisAssessor interface {
	Assess(message string, history []chat.Message, culturalTag, language string) crisis.Assessment
}

// Corrector repairs role-consistency violations in generated text.
type Corrector interface {
	Correct(text string, profile *persona.Profile) guard.Outcome
}

// Orchestrator sequences the per-turn pipeline: crisis check, special-query
// interception, provider calls with ordered fallback, validation, correction
// and journaling. All collaborators are injected at construction.
type Orchestrator struct {
	personas    persona.Store
	contexts    ContextSource
	crises      CrisisAssessor
	corrector   Corrector
	providers   []ai.Provider
	fallback    *ai.Fallback
	transcripts *transcript.Service
	recorder    journal.Recorder
	pick        ai.Picker

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New wires the orchestrator. providers are tried in order, each exactly once
// per turn. pick may be nil; specialty answers then rotate pseudo-randomly.
func New(
	personas persona.Store,
	contexts ContextSource,
	crises CrisisAssessor,
	corrector Corrector,
	providers []ai.Provider,
	fallback *ai.Fallback,
	transcripts *transcript.Service,
	recorder journal.Recorder,
	pick ai.Picker,
) *Orchestrator {
	if pick == nil {
		pick = func(n int) int { return 0 }
	}
	return &Orchestrator{
		personas:    personas,
		contexts:    contexts,
		crises:      crises,
		corrector:   corrector,
		providers:   providers,
		fallback:    fallback,
		transcripts: transcripts,
		recorder:    recorder,
		pick:        pick,
		locks:       make(map[string]*sync.Mutex),
	}
}

// Respond processes one user turn. Provider and validation failures are
// absorbed into the fallback chain; the only error surfaced to callers is an
// empty message.
func (o *Orchestrator) Respond(ctx context.Context, req chat.TurnRequest) (chat.TurnResult, error) {
	if strings.TrimSpace(req.Message) == "" {
		return chat.TurnResult{}, ErrEmptyMessage
	}

	// Turns for the same conversation are serialized: each turn reads the
	// context written by assignment and appends to the transcript.
	unlock := o.lockConversation(req.ConversationID)
	defer unlock()

	profile, snapshot := o.resolvePersona(ctx, req.ConversationID)

	history := req.History
	if len(history) == 0 && o.transcripts != nil {
		history = o.transcripts.Load(ctx, req.ConversationID)
	}

	// The safety check runs first, unconditionally, before any persona-styled
	// logic touches the message.
	assessment := o.crises.Assess(req.Message, history, snapshot.CulturalBackground, snapshot.Language)
	reading := emotion.Analyze(req.Message)

	if assessment.Severity == crisis.SeverityCritical {
		result := chat.TurnResult{
			Text:          o.crisisReply(profile, assessment),
			EmotionalTone: string(reading.Emotion),
			CrisisFlag:    true,
			Resources:     assessment.Resources,
			Voice:         voice.Derive(profile, reading),
		}
		o.remember(ctx, req, result.Text, reading)
		o.record(ctx, req, profile, "crisis", assessment)
		return result, nil
	}

	if answer, ok := o.specialtyAnswer(profile, req.Message); ok {
		answer = localize(answer, profile, snapshot.CulturalBackground)
		result := chat.TurnResult{
			Text:          answer,
			EmotionalTone: string(reading.Emotion),
			CrisisFlag:    assessment.Escalate,
			Voice:         voice.Derive(profile, reading),
		}
		if assessment.Escalate {
			result.Resources = assessment.Resources
		}
		o.remember(ctx, req, answer, reading)
		o.record(ctx, req, profile, "specialty", assessment)
		return result, nil
	}

	composed := ai.Compose(profile, snapshot, reading, history)
	composed.Message = req.Message

	text, styleTag := o.generate(ctx, composed)

	var violations []string
	wasCorrected := false
	if text == "" {
		fallbackText, kind := o.fallback.Reply(profile, req.Message, reading)
		text = fallbackText
		styleTag = "fallback:" + string(kind)
	} else {
		outcome := o.corrector.Correct(text, profile)
		text = outcome.Text
		violations = outcome.Violations
		wasCorrected = outcome.WasModified
		if wasCorrected {
			styleTag = styleTag + ":corrected"
		}
	}
	text = localize(text, profile, snapshot.CulturalBackground)

	result := chat.TurnResult{
		Text:          text,
		WasCorrected:  wasCorrected,
		Violations:    violations,
		Techniques:    techniqueTags(reading.Emotion),
		Followups:     o.followups(profile, reading),
		EmotionalTone: string(reading.Emotion),
		CrisisFlag:    assessment.Escalate,
		Voice:         voice.Derive(profile, reading),
	}
	if assessment.Escalate {
		result.Resources = assessment.Resources
	}

	o.remember(ctx, req, text, reading)
	o.record(ctx, req, profile, styleTag, assessment)
	return result, nil
}

// generate walks the provider chain. Each provider is tried exactly once; the
// first success wins. Empty return means every provider failed.
func (o *Orchestrator) generate(ctx context.Context, req ai.Request) (string, string) {
	for _, provider := range o.providers {
		resp, err := provider.Generate(ctx, req)
		if err != nil {
			log.Printf("[orchestrator] provider %s failed, advancing chain: %v", provider.Name(), err)
			continue
		}
		return resp.Text, "generated:" + provider.Name()
	}
	return "", ""
}

func (o *Orchestrator) resolvePersona(ctx context.Context, conversationID string) (*persona.Profile, conversation.PromptSnapshot) {
	convCtx, err := o.contexts.Get(ctx, conversationID)
	if err != nil {
		if !errors.Is(err, contextstore.ErrContextMissing) {
			log.Printf("[orchestrator] context load failed for %s, continuing persona-less: %v", conversationID, err)
		}
		return nil, ai.GenericSnapshot()
	}

	snapshot := convCtx.Snapshot
	if found, ok := o.personas.FindByID(snapshot.PersonaID); ok {
		return &found, snapshot
	}
	return nil, snapshot
}

// crisisReply builds the safety response locally: it must never depend on a
// provider being reachable. The persona voice is kept where a persona is
// bound, the resources are delivered verbatim.
func (o *Orchestrator) crisisReply(profile *persona.Profile, assessment crisis.Assessment) string {
	var b strings.Builder

	b.WriteString("Ce que vous venez de me confier est très important, et je vous prends entièrement au sérieux. ")
	b.WriteString("Votre souffrance est réelle, et vous n'avez pas à la porter seul. ")

	if profile != nil && profile.Crisis.Tier == "heightened" {
		b.WriteString("Je reste là, avec vous, pendant que nous faisons le point. ")
	}

	b.WriteString("\n\nDes personnes formées peuvent vous aider dès maintenant :\n")
	for _, resource := range assessment.Resources {
		b.WriteString("- " + resource + "\n")
	}
	b.WriteString("\nSi vous êtes en danger immédiat, contactez les services d'urgence sans attendre. ")
	b.WriteString("Et si vous le pouvez, prévenez une personne de confiance près de vous.")

	return b.String()
}

func (o *Orchestrator) followups(profile *persona.Profile, reading emotion.Reading) []string {
	if profile == nil {
		return nil
	}
	pattern := profile.Pattern(reading.Emotion)
	var followups []string
	if len(pattern.Explorations) > 0 {
		followups = append(followups, pattern.Explorations[o.pick(len(pattern.Explorations))])
	}
	if len(pattern.Interventions) > 0 {
		followups = append(followups, pattern.Interventions[o.pick(len(pattern.Interventions))])
	}
	return followups
}

// remember appends both sides of the turn to the transcript, best-effort.
func (o *Orchestrator) remember(ctx context.Context, req chat.TurnRequest, reply string, reading emotion.Reading) {
	if o.transcripts == nil {
		return
	}
	userMsg := chat.Message{
		ConversationID: req.ConversationID,
		Role:           chat.RoleUser,
		Content:        req.Message,
		Emotion:        string(reading.Emotion),
		MoodScore:      moodScore(reading),
	}
	if err := o.transcripts.Append(ctx, userMsg); err != nil {
		log.Printf("[orchestrator] transcript append failed: %v", err)
		return
	}
	assistantMsg := chat.Message{
		ConversationID: req.ConversationID,
		Role:           chat.RoleAssistant,
		Content:        reply,
	}
	if err := o.transcripts.Append(ctx, assistantMsg); err != nil {
		log.Printf("[orchestrator] transcript append failed: %v", err)
	}
}

// record journals the interaction, best-effort: a sink failure never fails
// the user-facing response.
func (o *Orchestrator) record(ctx context.Context, req chat.TurnRequest, profile *persona.Profile, styleTag string, assessment crisis.Assessment) {
	if o.recorder == nil {
		return
	}
	personaID := ""
	if profile != nil {
		personaID = profile.ID
	}
	entry := journal.Entry{
		SessionID:          req.ConversationID,
		PersonaID:          personaID,
		UserMessageSummary: journal.Summarize(req.Message, 80),
		ResponseStyleTag:   styleTag,
		CrisisLevel:        string(assessment.Severity),
		CreatedAt:          time.Now().UTC(),
	}
	if err := o.recorder.Append(ctx, entry); err != nil {
		log.Printf("[orchestrator] journal append failed: %v", err)
	}
}

func (o *Orchestrator) lockConversation(conversationID string) func() {
	o.mu.Lock()
	lock, ok := o.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		o.locks[conversationID] = lock
	}
	o.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// localize applies the persona's cultural substitution rules when the
// conversation declared a matching background. Substitutions run in table
// order over the final text.
func localize(text string, profile *persona.Profile, culturalTag string) string {
	if profile == nil || culturalTag == "" {
		return text
	}
	rule, ok := profile.RuleFor(culturalTag)
	if !ok {
		return text
	}
	for _, sub := range rule.Substitutions {
		text = strings.ReplaceAll(text, sub.From, sub.To)
	}
	return text
}

// moodScore projects the emotional reading onto the 1-10 mood scale consumed
// by the deterioration trend.
func moodScore(reading emotion.Reading) int {
	switch reading.Emotion {
	case emotion.Sadness:
		return 2
	case emotion.Anxiety, emotion.Confusion:
		return 3
	case emotion.Anger, emotion.Resistance:
		return 4
	case emotion.Joy:
		return 8
	default:
		return 5
	}
}

// techniqueTags names the therapeutic techniques suggested by the detected
// emotional state.
func techniqueTags(label emotion.Label) []string {
	switch label {
	case emotion.Sadness:
		return []string{"validation", "activation_douce"}
	case emotion.Anxiety:
		return []string{"respiration", "ancrage"}
	case emotion.Anger:
		return []string{"regulation", "mise_a_distance"}
	case emotion.Joy:
		return []string{"renforcement_positif"}
	case emotion.Confusion:
		return []string{"clarification", "priorisation"}
	case emotion.Resistance:
		return []string{"alliance", "non_directivite"}
	default:
		return []string{"ecoute_active"}
	}
}
