package format

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/hypernum/internal/bignum"
	"github.com/osse101/hypernum/internal/domain"
)

// Pluralizer turns a word and a count into the right noun form. Generated
// plurals are memoized in a bounded cache.
type Pluralizer struct {
	overrides map[string]string
	cache     *lru.Cache[string, string]
}

// NewPluralizer creates a Pluralizer whose cache holds up to size words.
func NewPluralizer(size int) (*Pluralizer, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("%w: plural cache size %d: %v", domain.ErrInvalidInput, size, err)
	}
	return &Pluralizer{overrides: pluralOverrides, cache: cache}, nil
}

// Pluralize returns word when count is exactly one and its plural otherwise.
// It panics on an empty word.
func (p *Pluralizer) Pluralize(word string, count bignum.Number) string {
	if word == "" {
		panic(panicMissingWord)
	}
	if count.Eq(bignum.One) {
		return word
	}
	if plural, ok := p.overrides[word]; ok {
		return plural
	}
	if plural, ok := p.cache.Get(word); ok {
		return plural
	}

	plural := generatePlural(word)
	p.cache.Add(word, plural)
	return plural
}

// Cached reports how many generated plurals are currently memoized.
func (p *Pluralizer) Cached() int {
	return p.cache.Len()
}

func generatePlural(word string) string {
	for _, rule := range pluralRules {
		if strings.HasSuffix(word, rule.suffix) {
			return strings.TrimSuffix(word, rule.suffix) + rule.replacement
		}
	}
	return word
}

// Pluralize uses the Formatter's plural cache.
func (f *Formatter) Pluralize(word string, count bignum.Number) string {
	return f.plurals.Pluralize(word, count)
}

// Quantify renders value followed by name, pluralized to match. It panics on
// an empty name.
func (f *Formatter) Quantify(name string, value bignum.Number, o Options) string {
	if name == "" {
		panic(panicMissingName)
	}
	return f.Format(value, o) + " " + f.Pluralize(name, value)
}

// QuantifyInt is Quantify with FormatInt.
func (f *Formatter) QuantifyInt(name string, value bignum.Number) string {
	if name == "" {
		panic(panicMissingName)
	}
	return f.FormatInt(value) + " " + f.Pluralize(name, value)
}

// Pluralize uses the shared Formatter.
func Pluralize(word string, count bignum.Number) string {
	return std.Pluralize(word, count)
}

// MakeEnumeration joins items with a serial comma: "a", "a and b",
// "a, b, and c". It panics on a nil slice.
func MakeEnumeration(items []string) string {
	if items == nil {
		panic(panicNilItems)
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + enumerationAnd + items[1]
	}
	last := len(items) - 1
	return strings.Join(items[:last], enumerationComma) + enumerationLastSep + items[last]
}
