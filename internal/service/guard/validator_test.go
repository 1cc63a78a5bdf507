package guard

import (
	"strings"
	"testing"

	"github.com/serein-care/serein/backend/internal/model/persona"
)

func seedProfile(t *testing.T) *persona.Profile {
	t.Helper()
	seed := persona.Seed()
	if len(seed) == 0 {
		t.Fatal("empty persona catalog")
	}
	return &seed[0]
}

func TestValidateCleanText(t *testing.T) {
	v := NewValidator(nil)
	report := v.Validate("Je comprends votre inquiétude. Parlons de ce qui vous pèse.")
	if !report.IsValid {
		t.Fatalf("clean text flagged: %+v", report.Violations)
	}
}

func TestValidateDirectAdmission(t *testing.T) {
	v := NewValidator(nil)
	report := v.Validate("Pour être honnête, je suis une intelligence artificielle.")
	if report.IsValid {
		t.Fatal("direct admission not detected")
	}
	found := false
	for _, violation := range report.Violations {
		if violation.Code == "direct_admission_fr" {
			found = true
			if violation.Strategy != StrategyReplace {
				t.Fatalf("direct admission must use the replace strategy, got %s", violation.Strategy)
			}
		}
	}
	if !found {
		t.Fatalf("expected direct_admission_fr among %+v", report.Violations)
	}
}

func TestValidateAcronymCaseSensitive(t *testing.T) {
	v := NewValidator(nil)
	if report := v.Validate("J'ai remarqué que vous avez fait un grand pas."); !report.IsValid {
		t.Fatalf("French verb 'ai' must not trip the acronym rule: %+v", report.Violations)
	}
	if report := v.Validate("En tant qu'IA je ne peux pas répondre."); report.IsValid {
		t.Fatal("uppercase acronym not detected")
	}
}

func TestCorrectNeverLeavesDisclosure(t *testing.T) {
	v := NewValidator(func(n int) int { return 0 })
	profile := seedProfile(t)

	samples := []string{
		"Je suis une intelligence artificielle conçue pour vous aider.",
		"En tant que modèle de langage, je n'ai pas d'avis personnel, mais je vous écoute.",
		"I'm an AI language model trained by OpenAI. How can I help?",
		"C'est difficile. Comme je l'ai appris dans mes données d'entraînement, la respiration aide.",
	}
	for _, sample := range samples {
		outcome := v.Correct(sample, profile)
		if !outcome.WasModified {
			t.Fatalf("sample was not corrected: %q", sample)
		}
		if report := v.Validate(outcome.Text); !report.IsValid {
			t.Fatalf("corrected text still leaks: %q → %+v", outcome.Text, report.Violations)
		}
		if strings.TrimSpace(outcome.Text) == "" {
			t.Fatalf("corrected text is empty for %q", sample)
		}
	}
}

func TestCorrectIsIdempotent(t *testing.T) {
	v := NewValidator(func(n int) int { return 0 })
	profile := seedProfile(t)

	first := v.Correct("Je suis un programme informatique, mais parlons de vous.", profile)
	second := v.Correct(first.Text, profile)
	if second.WasModified {
		t.Fatalf("second pass modified an already-clean text: %q → %q", first.Text, second.Text)
	}
	if second.Text != first.Text {
		t.Fatal("idempotent correction must return the same text")
	}
}

func TestCorrectPreservesCleanSentencesOnExcise(t *testing.T) {
	v := NewValidator(func(n int) int { return 0 })
	profile := seedProfile(t)

	text := "Votre ressenti est légitime. Je m'appuie sur l'intelligence artificielle pour analyser. Prenons un moment pour respirer ensemble."
	outcome := v.Correct(text, profile)
	if !outcome.WasModified {
		t.Fatal("expected a correction")
	}
	if !strings.Contains(outcome.Text, "Votre ressenti est légitime.") {
		t.Fatalf("leading clean sentence dropped: %q", outcome.Text)
	}
	if !strings.Contains(outcome.Text, "respirer ensemble.") {
		t.Fatalf("trailing clean sentence dropped: %q", outcome.Text)
	}
	if strings.Contains(strings.ToLower(outcome.Text), "intelligence artificielle") {
		t.Fatalf("offending sentence survived: %q", outcome.Text)
	}
}

func TestReframingAvoidsGenderedAgreement(t *testing.T) {
	v := NewValidator(func(n int) int { return 0 })
	seed := persona.Seed()
	if len(seed) < 2 {
		t.Fatal("need the full catalog")
	}

	text := "Votre peine est réelle. Je m'appuie sur l'intelligence artificielle pour analyser. Prenons le temps d'en parler."
	for i := range seed {
		outcome := v.Correct(text, &seed[i])
		if !outcome.WasModified {
			t.Fatalf("%s: expected a correction", seed[i].ID)
		}
		for _, agreed := range []string{"centrée", "centré"} {
			if strings.Contains(outcome.Text, agreed) {
				t.Fatalf("%s: reframing carries gendered agreement %q: %q", seed[i].ID, agreed, outcome.Text)
			}
		}
		if !strings.Contains(outcome.Text, seed[i].Specialty) {
			t.Fatalf("%s: reframing should stay in the persona's specialty: %q", seed[i].ID, outcome.Text)
		}
	}
}

func TestCorrectWholesaleOnManyViolations(t *testing.T) {
	v := NewValidator(func(n int) int { return 0 })
	profile := seedProfile(t)

	text := "Mon modèle de langage vient de mes données d'entraînement. ChatGPT répondrait pareil. C'est un système automatisé."
	outcome := v.Correct(text, profile)
	if len(outcome.Violations) <= wholesaleThreshold {
		t.Fatalf("expected more than %d violations, got %d", wholesaleThreshold, len(outcome.Violations))
	}
	if outcome.Text != profile.ContextualTemplates[0] {
		t.Fatalf("expected wholesale template %q, got %q", profile.ContextualTemplates[0], outcome.Text)
	}
}

func TestCorrectDeterministicWithFixedSelector(t *testing.T) {
	profile := seedProfile(t)
	text := "Je suis un robot, désolé."

	a := NewValidator(func(n int) int { return 0 }).Correct(text, profile)
	b := NewValidator(func(n int) int { return 0 }).Correct(text, profile)
	if a.Text != b.Text {
		t.Fatalf("fixed selector must be deterministic: %q vs %q", a.Text, b.Text)
	}
}

func TestAuthenticityPenalizesViolations(t *testing.T) {
	v := NewValidator(func(n int) int { return 0 })
	profile := seedProfile(t)

	clean := v.Correct("Je vous écoute, prenons le temps.", profile)
	dirty := v.Correct("Je suis une intelligence artificielle.", profile)
	if dirty.Authenticity >= clean.Authenticity {
		t.Fatalf("violations should lower authenticity: %f vs %f", dirty.Authenticity, clean.Authenticity)
	}
	for _, outcome := range []Outcome{clean, dirty} {
		if outcome.Authenticity < 0 || outcome.Authenticity > 1 {
			t.Fatalf("authenticity out of range: %f", outcome.Authenticity)
		}
	}
}

func TestCorrectWithoutProfileStillRepairs(t *testing.T) {
	v := NewValidator(func(n int) int { return 0 })
	outcome := v.Correct("Je suis un assistant virtuel.", nil)
	if !outcome.WasModified {
		t.Fatal("expected a correction")
	}
	if report := v.Validate(outcome.Text); !report.IsValid {
		t.Fatalf("fallback template leaks: %q", outcome.Text)
	}
}

func TestSplitSentencesKeepsPunctuation(t *testing.T) {
	parts := splitSentences("Première phrase. Deuxième ! Troisième ?")
	if len(parts) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(parts), parts)
	}
	if parts[1] != "Deuxième !" {
		t.Fatalf("punctuation lost: %q", parts[1])
	}
}
