package resolve

import "github.com/google/uuid"

// ActionDescriptor describes a card-playing action before conversion and
// validation run over it (spec §3: "Action descriptor").
type ActionDescriptor struct {
	ActionID        string // stable string, e.g. "UseSlash", "UseDuel" (spec §6)
	Source          Seat
	CardCandidates  []int // selected card ids; conversion may rewrite this
	TargetSeats     []Seat
	TargetConstraints any // opaque, interpreted by the rule service
}

// ChoiceDiscriminator tags what kind of answer a ChoiceRequest expects.
type ChoiceDiscriminator int

const (
	ChoiceConfirm ChoiceDiscriminator = iota
	ChoiceSelectCards
	ChoiceSelectTargets
	ChoiceSelectOption
)

// ChoiceRequest is what a resolver asks the calling layer's player-choice
// function to answer (spec §6).
type ChoiceRequest struct {
	ID                string
	Seat              Seat
	Discriminator     ChoiceDiscriminator
	Prompt            string
	AllowedCards      []int
	TargetConstraints any
	Options           []string
	ResponseWindowID  string
	CanPass           bool
}

// NewChoiceRequest builds a ChoiceRequest with a fresh correlation id.
func NewChoiceRequest(seat Seat, disc ChoiceDiscriminator, prompt string) ChoiceRequest {
	return ChoiceRequest{ID: uuid.NewString(), Seat: seat, Discriminator: disc, Prompt: prompt}
}

// ChoiceResult is the calling layer's answer to a ChoiceRequest. A nil
// result, one with Passed set, or one with no selected cards, seats or
// option and no confirm is treated as a pass (see IsPass; spec §6).
type ChoiceResult struct {
	RequestID      string
	Seat           Seat
	SelectedCards  []int
	SelectedSeats  []Seat
	SelectedOption string
	Confirm        bool
	Passed         bool
}

// IsPass reports whether this result should be treated as passing.
func (r *ChoiceResult) IsPass() bool {
	if r == nil {
		return true
	}
	if r.Passed {
		return true
	}
	return len(r.SelectedCards) == 0 && len(r.SelectedSeats) == 0 && r.SelectedOption == "" && !r.Confirm
}

// PlayerChoiceFunc is the external, blocking collaborator that resolves a
// ChoiceRequest into a ChoiceResult (spec §6). It is supplied by the
// calling layer (network round-trip, UI prompt, or scripted test double)
// and may be nil, in which case protocols that need it (nullification
// windows in particular) degrade to their documented default.
type PlayerChoiceFunc func(req ChoiceRequest) ChoiceResult
