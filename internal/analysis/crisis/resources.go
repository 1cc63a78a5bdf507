package crisis

// ResourceDirectory maps cultural context and language to localized help
// resources. Lookup always returns a non-empty list: unknown tags fall back to
// the language default, unknown languages to the French national entries.
type ResourceDirectory struct {
	byTag      map[string][]string
	byLanguage map[string][]string
	fallback   []string
}

// DefaultResources returns the shipped directory.
func DefaultResources() *ResourceDirectory {
	fr := []string{
		"3114 — numéro national de prévention du suicide (gratuit, 24h/24)",
		"SOS Amitié — 09 72 39 40 50 (24h/24)",
		"15 (SAMU) en cas de danger immédiat",
	}
	en := []string{
		"988 Suicide & Crisis Lifeline (call or text, 24/7)",
		"Samaritans — 116 123 (UK & ROI, 24/7)",
		"Emergency services: 911 / 112",
	}
	return &ResourceDirectory{
		byTag: map[string][]string{
			"qc": {
				"1 866 APPELLE (1 866 277-3553) — prévention du suicide, Québec",
				"Suicide.ca — clavardage et texto 535353",
				"911 en cas de danger immédiat",
			},
			"be": {
				"Centre de Prévention du Suicide — 0800 32 123 (Belgique, 24h/24)",
				"112 en cas de danger immédiat",
			},
			"ch": {
				"La Main Tendue — 143 (Suisse, 24h/24)",
				"144 en cas d'urgence vitale",
			},
		},
		byLanguage: map[string][]string{
			"fr": fr,
			"en": en,
		},
		fallback: fr,
	}
}

// Lookup resolves resources for a cultural tag and language.
func (r *ResourceDirectory) Lookup(culturalTag, language string) []string {
	if entries, ok := r.byTag[culturalTag]; ok {
		return append([]string(nil), entries...)
	}
	if entries, ok := r.byLanguage[language]; ok {
		return append([]string(nil), entries...)
	}
	return append([]string(nil), r.fallback...)
}
