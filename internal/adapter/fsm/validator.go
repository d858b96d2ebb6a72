package fsm

import (
	"context"
	"errors"

	loopfsm "github.com/looplab/fsm"

	"github.com/CATIGERN/job-applications/internal/domain"
)

var _ domain.TransitionValidator = (*Validator)(nil)

// events folds domain.Transitions into looplab/fsm descriptors, one per
// event and destination, listing every source state.
var events = buildEvents()

func buildEvents() []loopfsm.EventDesc {
	type key struct {
		event domain.OfferEvent
		dst   domain.OfferStatus
	}
	sources := make(map[key][]string)
	var order []key

	for _, t := range domain.Transitions {
		k := key{event: t.Event, dst: t.Dst}
		if _, seen := sources[k]; !seen {
			order = append(order, k)
		}
		sources[k] = append(sources[k], string(t.Src))
	}

	out := make([]loopfsm.EventDesc, 0, len(order))
	for _, k := range order {
		out = append(out, loopfsm.EventDesc{Name: string(k.event), Src: sources[k], Dst: string(k.dst)})
	}
	return out
}

// Validator resolves job offer transitions with looplab/fsm. The machine is
// stateful, so each Apply builds one seeded with the offer's current status.
type Validator struct{}

// New creates an FSM-backed transition validator.
func New() *Validator {
	return &Validator{}
}

// Apply returns the status the event leads to from current. A transition
// onto the same status is valid and returns current unchanged.
func (v *Validator) Apply(ctx context.Context, current domain.OfferStatus, event domain.OfferEvent) (domain.OfferStatus, error) {
	machine := loopfsm.NewFSM(string(current), events, nil)

	err := machine.Event(ctx, string(event))
	if err == nil {
		return domain.OfferStatus(machine.Current()), nil
	}

	var noTransition loopfsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return current, nil
	}

	var invalidEvent loopfsm.InvalidEventError
	var unknownEvent loopfsm.UnknownEventError
	if errors.As(err, &invalidEvent) || errors.As(err, &unknownEvent) {
		return "", &domain.TransitionError{Event: event, Current: current}
	}
	return "", err
}
