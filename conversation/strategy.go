// Package conversation implements the chat core: the transcript model, the
// per-session turn state machine and the router that classifies user input
// and picks a response strategy.
package conversation

// Strategy is the classification outcome that decides which response path
// a turn takes.
type Strategy string

// Strategies in priority order. Casual always wins over lookup: a greeting
// is never treated as a medicine name.
const (
	StrategyCasual        Strategy = "casual"
	StrategyMedicalAdvice Strategy = "medical_advice"
	StrategyFeverGuidance Strategy = "fever_guidance"
	StrategyLookup        Strategy = "lookup"
)

func (s Strategy) String() string { return string(s) }
