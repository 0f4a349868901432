package analysis

import (
	"math"
	"strings"
	"unicode"

	"crypto-sentiment-bot/internal/domain"
)

const (
	negationScale   = -0.74
	boosterIncrease = 0.293
	exclaimIncrease = 0.292
	maxExclaims     = 4
	negationWindow  = 3
	compoundAlpha   = 15
)

// LexiconScorer is a rule-based polarity scorer: word valences, negation
// flips and intensity boosters, normalized into [-1, 1].
type LexiconScorer struct {
	lexicon  map[string]float64
	negators map[string]struct{}
	boosters map[string]float64
}

func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{
		lexicon:  defaultLexicon,
		negators: defaultNegators,
		boosters: defaultBoosters,
	}
}

// Score is the arithmetic mean of the per-item compound polarity.
// Placeholder items are skipped; a collection with nothing else scores exactly 0.
func (s *LexiconScorer) Score(items []domain.NewsItem) float64 {
	total, n := 0.0, 0
	for _, item := range items {
		if item.IsPlaceholder() {
			continue
		}
		total += s.Compound(item.Text())
		n++
	}
	if n == 0 {
		return 0
	}
	return clamp(total/float64(n), -1, 1)
}

// Compound scores one text in [-1, 1]. Text with no lexicon hits is 0.
func (s *LexiconScorer) Compound(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0
	}

	sum := 0.0
	hits := 0
	for i, tok := range tokens {
		valence, ok := s.lexicon[tok]
		if !ok {
			continue
		}
		hits++
		if i > 0 {
			if boost, ok := s.boosters[tokens[i-1]]; ok {
				if valence > 0 {
					valence += boost
				} else {
					valence -= boost
				}
			}
		}
		if s.negated(tokens, i) {
			valence *= negationScale
		}
		sum += valence
	}
	if hits == 0 {
		return 0
	}

	if n := strings.Count(text, "!"); n > 0 && sum != 0 {
		bump := float64(min(n, maxExclaims)) * exclaimIncrease
		if sum > 0 {
			sum += bump
		} else {
			sum -= bump
		}
	}

	return clamp(sum/math.Sqrt(sum*sum+compoundAlpha), -1, 1)
}

func (s *LexiconScorer) negated(tokens []string, idx int) bool {
	start := max(0, idx-negationWindow)
	for _, prev := range tokens[start:idx] {
		if _, ok := s.negators[prev]; ok {
			return true
		}
		if strings.HasSuffix(prev, "n't") {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-')
	})
	out := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, "'-")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
