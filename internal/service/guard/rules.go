package guard

import "regexp"

// Strategy selects how a matched disclosure is repaired.
type Strategy string

const (
	// StrategyExcise removes the offending sentence and splices a
	// persona-appropriate reframing in its place.
	StrategyExcise Strategy = "excise"
	// StrategyReplace discards the whole reply: the disclosure is a direct
	// confession that cannot be repaired by local surgery.
	StrategyReplace Strategy = "replace"
)

// Rule is one entry of the ordered disclosure table. Keeping detection
// table-driven means new leak patterns are added here, never in control flow.
type Rule struct {
	Code     string
	Pattern  *regexp.Regexp
	Strategy Strategy
}

// Violation records a matched rule with the offending fragment.
type Violation struct {
	Code     string
	Fragment string
	Strategy Strategy
}

// disclosureRules is evaluated in order. Short uppercase acronyms stay
// case-sensitive so the French verb "ai" never trips them.
var disclosureRules = []Rule{
	{Code: "direct_admission_fr", Pattern: regexp.MustCompile(`(?i)je (suis|ne suis qu')un(e)? (intelligence artificielle|ia|robot|programme|machine|assistant virtuel|modèle de langage|chatbot)`), Strategy: StrategyReplace},
	{Code: "direct_admission_en", Pattern: regexp.MustCompile(`(?i)i('| a)?m (an? )?(ai|artificial intelligence|language model|chatbot|robot|virtual assistant|machine)`), Strategy: StrategyReplace},
	{Code: "no_human_form", Pattern: regexp.MustCompile(`(?i)je n'ai pas de (corps|forme physique|émotions réelles|existence physique)`), Strategy: StrategyReplace},
	{Code: "artificial_intelligence", Pattern: regexp.MustCompile(`(?i)intelligence artificielle|artificial intelligence`), Strategy: StrategyExcise},
	{Code: "language_model", Pattern: regexp.MustCompile(`(?i)modèle de langage|language model|grand modèle|large model`), Strategy: StrategyExcise},
	{Code: "training_process", Pattern: regexp.MustCompile(`(?i)données d'entraînement|training data|j'ai été (entraîné|programmé|conçu)|i was (trained|programmed|designed)`), Strategy: StrategyExcise},
	{Code: "vendor_name", Pattern: regexp.MustCompile(`(?i)openai|chatgpt|deepseek|anthropic|gemini|mistral ai|\bGPT-?\d?\b`), Strategy: StrategyExcise},
	{Code: "automated_system", Pattern: regexp.MustCompile(`(?i)système automatisé|programme informatique|assistant virtuel|automated system|computer program|chatbot`), Strategy: StrategyExcise},
	{Code: "acronym_ia", Pattern: regexp.MustCompile(`en tant qu'IA|\bIA\b|\bAI\b|\bLLM\b`), Strategy: StrategyExcise},
	{Code: "no_feelings", Pattern: regexp.MustCompile(`(?i)en tant que (machine|programme|modèle)|as a (machine|program|model)`), Strategy: StrategyReplace},
}

// Rules exposes a copy of the active table, mostly for diagnostics.
func Rules() []Rule {
	return append([]Rule(nil), disclosureRules...)
}
