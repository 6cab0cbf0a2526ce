package resolve

import "fmt"

// Kind is the closed error taxonomy a resolver can fail with (spec §7).
type Kind int

const (
	KindInvalidState Kind = iota
	KindCardNotFound
	KindInvalidTarget
	KindTargetNotAlive
	KindRuleValidationFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidState:
		return "InvalidState"
	case KindCardNotFound:
		return "CardNotFound"
	case KindInvalidTarget:
		return "InvalidTarget"
	case KindTargetNotAlive:
		return "TargetNotAlive"
	case KindRuleValidationFailed:
		return "RuleValidationFailed"
	default:
		return "Unknown"
	}
}

// ResolutionError is the error type every resolver-boundary failure
// returns. MessageKey and Details carry structured context for callers
// that want to render localized messages without parsing Error() strings.
type ResolutionError struct {
	Kind       Kind
	MessageKey string
	Details    map[string]any
}

func (e *ResolutionError) Error() string {
	if e.MessageKey != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.MessageKey)
	}
	return e.Kind.String()
}

// NewResolutionError builds a ResolutionError with the given kind and message key.
func NewResolutionError(kind Kind, messageKey string, details map[string]any) *ResolutionError {
	return &ResolutionError{Kind: kind, MessageKey: messageKey, Details: details}
}

func errCardNotFound(id int) *ResolutionError {
	return NewResolutionError(KindCardNotFound, "card not found", map[string]any{"cardID": id})
}

func errInvalidTarget(seat Seat, reason string) *ResolutionError {
	return NewResolutionError(KindInvalidTarget, reason, map[string]any{"seat": seat})
}

func errTargetNotAlive(seat Seat) *ResolutionError {
	return NewResolutionError(KindTargetNotAlive, "target not alive", map[string]any{"seat": seat})
}

func errInvalidState(reason string) *ResolutionError {
	return NewResolutionError(KindInvalidState, reason, nil)
}

func errRuleValidationFailed(messageKey string, details map[string]any) *ResolutionError {
	return NewResolutionError(KindRuleValidationFailed, messageKey, details)
}
