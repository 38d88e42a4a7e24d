// Package languages holds the catalog of translatable languages and the
// routing table that decides how a language pair is translated.
package languages

import (
	"errors"
	"fmt"
	"strings"

	"translate-bridge/pkg/types"
)

// Language is a natural language identified by its short code.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Equal reports whether both languages have the same code.
func (l Language) Equal(other Language) bool {
	return strings.EqualFold(l.Code, other.Code)
}

// Descriptor returns the wire form echoed back in translation responses.
func (l Language) Descriptor() *types.LanguageDescriptor {
	return &types.LanguageDescriptor{Name: l.Name, Flag: l.Flag}
}

func (l Language) String() string {
	return fmt.Sprintf("%s %s (%s)", l.Flag, l.Name, l.Code)
}

// Pivot is the language every bridged translation goes through.
const Pivot = "en"

var supported = []Language{
	{Code: "tr", Name: "Türkçe", Flag: "🇹🇷"},
	{Code: "en", Name: "İngilizce", Flag: "🇬🇧"},
	{Code: "de", Name: "Almanca", Flag: "🇩🇪"},
	{Code: "fr", Name: "Fransızca", Flag: "🇫🇷"},
	{Code: "es", Name: "İspanyolca", Flag: "🇪🇸"},
}

// Pairs that have a dedicated translation model.
var directPairs = map[[2]string]bool{
	{"tr", "en"}: true,
	{"en", "tr"}: true,
	{"en", "de"}: true,
	{"de", "en"}: true,
	{"en", "fr"}: true,
	{"fr", "en"}: true,
	{"en", "es"}: true,
	{"es", "en"}: true,
	{"de", "fr"}: true,
	{"fr", "de"}: true,
	{"de", "es"}: true,
	{"es", "de"}: true,
	{"fr", "es"}: true,
	{"es", "fr"}: true,
}

// Supported returns a copy of the supported language list in display order.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Lookup finds a supported language by code, ignoring case and surrounding space.
func Lookup(code string) (Language, bool) {
	code = Normalize(code)
	for _, l := range supported {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Normalize lower-cases and trims a language code.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// Method names how a pair is translated. The values are sent on the wire.
type Method string

const (
	MethodSame   Method = "same"
	MethodDirect Method = "direct"
	MethodBridge Method = "bridge"
)

// ErrUnsupportedPair is returned when no route exists between two languages.
var ErrUnsupportedPair = errors.New("unsupported language pair")

// Step is a single source→target hop of a route.
type Step struct {
	Source string
	Target string
}

// Route is the sequence of hops needed to translate a pair.
type Route struct {
	Method Method
	Steps  []Step
}

// RouteFor determines how to translate source into target.
// Same-language routes have no steps.
func RouteFor(source, target string) (Route, error) {
	source, target = Normalize(source), Normalize(target)

	if source == target {
		return Route{Method: MethodSame}, nil
	}

	if directPairs[[2]string{source, target}] {
		return Route{Method: MethodDirect, Steps: []Step{{source, target}}}, nil
	}

	if source != Pivot && target != Pivot &&
		directPairs[[2]string{source, Pivot}] && directPairs[[2]string{Pivot, target}] {
		return Route{
			Method: MethodBridge,
			Steps:  []Step{{source, Pivot}, {Pivot, target}},
		}, nil
	}

	return Route{}, fmt.Errorf("%w: %s -> %s", ErrUnsupportedPair, source, target)
}

// Pair is a routable ordered language pair.
type Pair struct {
	Source Language `json:"source"`
	Target Language `json:"target"`
	Method Method   `json:"method"`
}

// Pairs lists every ordered pair of distinct supported languages with its method.
func Pairs() []Pair {
	var pairs []Pair
	for _, s := range supported {
		for _, t := range supported {
			if s.Code == t.Code {
				continue
			}
			route, err := RouteFor(s.Code, t.Code)
			if err != nil {
				continue
			}
			pairs = append(pairs, Pair{Source: s, Target: t, Method: route.Method})
		}
	}
	return pairs
}
