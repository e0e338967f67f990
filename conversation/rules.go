package conversation

import (
	"regexp"
	"strings"
)

// classificationRule pairs a predicate with a strategy. The rule list is
// ordered and evaluated top-down; the first match wins and short-circuits
// the rest, which keeps the precedence auditable.
type classificationRule struct {
	strategy Strategy
	matches  func(lowered string) bool
}

// Conversational opener patterns, checked against the start of the input.
var (
	greetingRe  = regexp.MustCompile(`^(hi|hello|hey|hii+|hola|namaste)`)
	howAreYouRe = regexp.MustCompile(`^(how are you|how're you|wassup|what's up)`)
	thanksRe    = regexp.MustCompile(`^(thanks|thank you|thx)`)
	goodbyeRe   = regexp.MustCompile(`^(bye|goodbye|see you)`)
)

// Phrases asking for a personalized clinical decision. These deflect to a
// licensed professional even when the phrase names a known medicine.
var medicalAdvicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`should i take`),
	regexp.MustCompile(`can i take.*while.*pregnant`),
	regexp.MustCompile(`can i take.*during.*pregnancy`),
	regexp.MustCompile(`is it safe.*for me`),
	regexp.MustCompile(`what dose.*should`),
	regexp.MustCompile(`how much.*should i take`),
}

var casualPatterns = []*regexp.Regexp{greetingRe, howAreYouRe, thanksRe, goodbyeRe}

// rules is the process-wide classification table, loaded once.
var rules = []classificationRule{
	{StrategyCasual, isCasual},
	{StrategyMedicalAdvice, isMedicalAdvice},
	{StrategyFeverGuidance, isFeverQuery},
}

func isCasual(lowered string) bool {
	for _, re := range casualPatterns {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}

func isMedicalAdvice(lowered string) bool {
	for _, re := range medicalAdvicePatterns {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}

// isFeverQuery needs both the topic keyword and an interrogative keyword,
// so "fever" alone still falls through to the lookup path.
func isFeverQuery(lowered string) bool {
	if !strings.Contains(lowered, "fever") {
		return false
	}
	return strings.Contains(lowered, "medicine") ||
		strings.Contains(lowered, "what") ||
		strings.Contains(lowered, "which")
}

// Classify routes a user utterance to a strategy. Input is lower-cased and
// trimmed before matching; anything no rule claims is a lookup candidate.
func Classify(text string) Strategy {
	lowered := strings.ToLower(strings.TrimSpace(text))
	for _, rule := range rules {
		if rule.matches(lowered) {
			return rule.strategy
		}
	}
	return StrategyLookup
}
