package conversation

import (
	"context"
	"errors"

	"github.com/sidesh-hub/medinfo-india/interfaces"
	"github.com/sidesh-hub/medinfo-india/logging"
	"github.com/sidesh-hub/medinfo-india/medicine"
	"github.com/sidesh-hub/medinfo-india/metrics"
	"github.com/sidesh-hub/medinfo-india/resolver"
)

// Router classifies user input and produces the next assistant messages.
// Canned strategies never touch a data source; the lookup strategy asks the
// remote resolver first and falls back to the local store.
type Router struct {
	store    interfaces.LocalStore
	resolver interfaces.Resolver
}

// NewRouter creates a router over the given data sources. The resolver may
// be nil for offline operation; lookups then use the local store only.
func NewRouter(store interfaces.LocalStore, res interfaces.Resolver) *Router {
	return &Router{store: store, resolver: res}
}

// Route runs one turn: it appends the user's message, resolves a response
// per the classification rules and appends the assistant messages. Any
// lookup failure is converted into a user-facing message; the only error a
// caller sees is ErrTurnInFlight. The returned slice holds the assistant
// messages appended by this turn.
func (rt *Router) Route(ctx context.Context, s *Session, text string) ([]medicine.Message, error) {
	if err := s.beginTurn(text); err != nil {
		return nil, err
	}

	strategy := Classify(text)
	metrics.ConversationTurnsTotal.WithLabelValues(strategy.String()).Inc()

	var replies []medicine.Message
	switch strategy {
	case StrategyCasual:
		replies = []medicine.Message{medicine.NewMessage(medicine.RoleAssistant, casualReply(text))}
	case StrategyMedicalAdvice:
		replies = []medicine.Message{medicine.NewMessage(medicine.RoleAssistant, deflectionText)}
	case StrategyFeverGuidance:
		replies = []medicine.Message{medicine.NewMessage(medicine.RoleAssistant, feverGuidanceText)}
	default:
		replies = rt.lookup(ctx, text)
	}

	s.completeTurn(replies)
	return replies, nil
}

// AttachImage records an image upload as its own mini-turn: a user message
// naming the file and the fixed acknowledgment. No analysis happens.
func (rt *Router) AttachImage(s *Session, filename string) ([]medicine.Message, error) {
	if err := s.beginTurn(imageUploadText(filename)); err != nil {
		return nil, err
	}

	replies := []medicine.Message{medicine.NewMessage(medicine.RoleAssistant, imageAckText)}
	s.completeTurn(replies)
	return replies, nil
}

// lookup treats the whole input as a candidate medicine name. It never
// returns an error: every failure mode ends in an assistant message, so a
// turn cannot die on the lookup path.
func (rt *Router) lookup(ctx context.Context, query string) []medicine.Message {
	if rt.resolver != nil {
		result, err := rt.resolver.Lookup(ctx, query)
		switch {
		case err == nil && result.Found && result.Medicine != nil:
			metrics.MedicineLookupTotal.WithLabelValues("remote", "found").Inc()
			return successReplies(result.Medicine)

		case err == nil:
			// Provider answered. A parse failure carries an error text; a
			// clean found=false is a normal negative result.
			if result.Error != "" {
				metrics.MedicineLookupTotal.WithLabelValues("remote", "error").Inc()
				return rt.localFallback(query, parseErrorText)
			}
			metrics.MedicineLookupTotal.WithLabelValues("remote", "not_found").Inc()
			return rt.localFallback(query, notFoundText(query, result.Suggestion))

		case errors.Is(err, resolver.ErrNoAPIKey):
			logging.Warn("Remote lookup unavailable: no provider credential")
			return rt.localFallback(query, configErrorText)

		default:
			logging.Warn("Remote lookup failed", "query", query, "error", err)
			metrics.MedicineLookupTotal.WithLabelValues("remote", "error").Inc()
			return rt.localFallback(query, retryLaterText)
		}
	}

	return rt.localFallback(query, notFoundText(query, ""))
}

// localFallback serves the query from the static store, or the given
// failure message when nothing matches.
func (rt *Router) localFallback(query, failureText string) []medicine.Message {
	if med, ok := rt.store.Lookup(query); ok {
		metrics.MedicineLookupTotal.WithLabelValues("local", "found").Inc()
		return successReplies(med)
	}

	metrics.MedicineLookupTotal.WithLabelValues("local", "not_found").Inc()
	return []medicine.Message{medicine.NewMessage(medicine.RoleAssistant, failureText)}
}

// successReplies is the lookup-success pair: the card plus the fixed
// packaging follow-up.
func successReplies(med *medicine.Medicine) []medicine.Message {
	return []medicine.Message{
		medicine.NewMedicineMessage(foundText(med.Name), med),
		medicine.NewMessage(medicine.RoleAssistant, followUpText),
	}
}
