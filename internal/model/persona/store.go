package persona

// Store exposes read-only persona retrieval. Implementations must be safe for
// unsynchronized concurrent reads once constructed.
type Store interface {
	List() []Profile
	FindByID(id string) (Profile, bool)
	ListByTheme(themeID string) []Profile
}

// MemoryStore implements Store over a fixed slice loaded once at start-up.
type MemoryStore struct {
	items []Profile
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied profiles.
func NewMemoryStore(items []Profile) *MemoryStore {
	return &MemoryStore{items: append([]Profile(nil), items...)}
}

// List returns the full persona catalog in declaration order.
func (s *MemoryStore) List() []Profile {
	return append([]Profile(nil), s.items...)
}

// FindByID looks up a persona by identifier.
func (s *MemoryStore) FindByID(id string) (Profile, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Profile{}, false
}

// ListByTheme returns the personas declaring the given theme, in catalog
// order. The first entry of the result is the default choice for that theme.
func (s *MemoryStore) ListByTheme(themeID string) []Profile {
	var matches []Profile
	for _, item := range s.items {
		for _, theme := range item.ThemeIDs {
			if theme == themeID {
				matches = append(matches, item)
				break
			}
		}
	}
	return matches
}
