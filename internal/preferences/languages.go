package preferences

import (
	"encoding/json"
	"errors"
	"fmt"

	"translate-bridge/internal/languages"
)

// SelectedLanguagesKey holds the JSON array of languages picked by the user.
const SelectedLanguagesKey = "selectedLanguages"

// MinSelectedLanguages is the fewest languages a selection may hold.
const MinSelectedLanguages = 2

var ErrTooFewLanguages = errors.New("at least two languages must be selected")

// SaveSelected stores the selection in order, dropping repeated codes.
func SaveSelected(store Store, selected []languages.Language) error {
	unique := make([]languages.Language, 0, len(selected))
	for _, l := range selected {
		if containsLanguage(unique, l) {
			continue
		}
		unique = append(unique, l)
	}

	if len(unique) < MinSelectedLanguages {
		return ErrTooFewLanguages
	}

	data, err := json.Marshal(unique)
	if err != nil {
		return fmt.Errorf("failed to encode selected languages: %w", err)
	}
	return store.Set(SelectedLanguagesKey, data)
}

// LoadSelected returns the stored selection, or nil when none was saved.
func LoadSelected(store Store) ([]languages.Language, error) {
	data, ok, err := store.Get(SelectedLanguagesKey)
	if err != nil || !ok {
		return nil, err
	}

	var selected []languages.Language
	if err := json.Unmarshal(data, &selected); err != nil {
		return nil, fmt.Errorf("failed to decode selected languages: %w", err)
	}
	return selected, nil
}

// ParseCodes resolves codes against the supported catalog.
func ParseCodes(codes []string) ([]languages.Language, error) {
	out := make([]languages.Language, 0, len(codes))
	for _, code := range codes {
		if languages.Normalize(code) == "" {
			continue
		}
		l, ok := languages.Lookup(code)
		if !ok {
			return nil, fmt.Errorf("unsupported language: %s", code)
		}
		out = append(out, l)
	}
	return out, nil
}

func containsLanguage(list []languages.Language, l languages.Language) bool {
	for _, other := range list {
		if other.Equal(l) {
			return true
		}
	}
	return false
}
