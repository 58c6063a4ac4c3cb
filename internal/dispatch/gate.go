package dispatch

import "github.com/givecircle/dispatch-api/internal/models"

const (
	ReasonEmailDisabled = "email disabled"
	ReasonTypeDisabled  = "type disabled"
)

// Decision is the outcome of the preference gate. A disallowed decision
// carries the suppression reason reported to the caller.
type Decision struct {
	Allowed bool
	Reason  string
}

// EvaluateGate applies the recipient's preferences to a notification: the
// global email switch is checked first, then the per-type switch for the
// notification's category.
func EvaluateGate(prefs models.Preferences, category models.Category) Decision {
	if !prefs.EmailEnabled {
		return Decision{Reason: ReasonEmailDisabled}
	}
	if !prefs.CategoryEnabled(category) {
		return Decision{Reason: ReasonTypeDisabled}
	}
	return Decision{Allowed: true}
}
