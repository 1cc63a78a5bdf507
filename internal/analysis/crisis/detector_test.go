package crisis

import (
	"testing"

	"github.com/serein-care/serein/backend/internal/model/chat"
)

func TestAssessCriticalKeywordForcesCritical(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	assessment := d.Assess("je veux mourir", nil, "", "fr")
	if assessment.Severity != SeverityCritical {
		t.Fatalf("expected critical severity, got %s", assessment.Severity)
	}
	if !assessment.Escalate {
		t.Fatal("critical verdict must escalate")
	}
	if len(assessment.Indicators) == 0 {
		t.Fatal("expected matched indicators")
	}
	if len(assessment.Resources) == 0 {
		t.Fatal("escalated assessment must carry resources")
	}
	if len(assessment.ImmediateActions) == 0 {
		t.Fatal("critical tier must carry immediate actions")
	}
}

func TestAssessEnglishCriticalKeyword(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	assessment := d.Assess("sometimes I think I should just kill myself", nil, "", "en")
	if assessment.Severity != SeverityCritical {
		t.Fatalf("expected critical severity, got %s", assessment.Severity)
	}
}

func TestAssessTwoMediumKeywordsReachHigh(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	assessment := d.Assess("je suis sans espoir, je n'en peux plus", nil, "", "fr")
	if assessment.Severity != SeverityHigh {
		t.Fatalf("expected high severity, got %s (score %d)", assessment.Severity, assessment.Score)
	}
	if !assessment.Escalate {
		t.Fatal("high verdict must escalate")
	}
}

func TestAssessSingleMediumKeywordIsMedium(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	assessment := d.Assess("à quoi bon continuer mes séances", nil, "", "fr")
	if assessment.Severity != SeverityMedium {
		t.Fatalf("expected medium severity, got %s (score %d)", assessment.Severity, assessment.Score)
	}
	if assessment.Escalate {
		t.Fatal("medium verdict must not escalate")
	}
}

func TestAssessBenignMessageIsLow(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	assessment := d.Assess("J'ai passé une bonne journée au travail", nil, "", "fr")
	if assessment.Severity != SeverityLow {
		t.Fatalf("expected low severity, got %s", assessment.Severity)
	}
	if assessment.Escalate {
		t.Fatal("low verdict must not escalate")
	}
	if len(assessment.Resources) == 0 {
		t.Fatal("resources must be populated even on low verdicts")
	}
}

func TestAssessDeteriorationTrendRaisesScore(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	history := []chat.Message{
		{Role: chat.RoleUser, Content: "ça va moyen", MoodScore: 2},
		{Role: chat.RoleAssistant, Content: "je vous écoute"},
		{Role: chat.RoleUser, Content: "pas mieux", MoodScore: 2},
		{Role: chat.RoleAssistant, Content: "prenons le temps"},
		{Role: chat.RoleUser, Content: "toujours pareil", MoodScore: 3},
	}

	withTrend := d.Assess("à quoi bon", history, "", "fr")
	without := d.Assess("à quoi bon", nil, "", "fr")
	if withTrend.Score <= without.Score {
		t.Fatalf("trend should raise the score: %d vs %d", withTrend.Score, without.Score)
	}
	// Three consecutive low moods at TrendWeight 2 plus one medium keyword.
	if withTrend.Score != without.Score+3*DefaultConfig().TrendWeight {
		t.Fatalf("unexpected trend contribution, score %d", withTrend.Score)
	}
}

func TestDeteriorationTrendBreaksOnUnscoredMessage(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	history := []chat.Message{
		{Role: chat.RoleUser, Content: "dur", MoodScore: 2},
		{Role: chat.RoleUser, Content: "question pratique"}, // no mood score
		{Role: chat.RoleUser, Content: "dur encore", MoodScore: 2},
	}
	if got := d.deteriorationTrend(history); got != 1 {
		t.Fatalf("expected trend 1, got %d", got)
	}
}

func TestAssessCulturalTagSelectsRegionalResources(t *testing.T) {
	d := NewDetector(DefaultConfig(), nil)

	quebec := d.Assess("je veux mourir", nil, "qc", "fr")
	france := d.Assess("je veux mourir", nil, "", "fr")
	if len(quebec.Resources) == 0 || len(france.Resources) == 0 {
		t.Fatal("both lookups must return resources")
	}
	if quebec.Resources[0] == france.Resources[0] {
		t.Fatal("regional tag should change the leading resource")
	}
}
