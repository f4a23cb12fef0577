package proof

import (
	"sync"

	"github.com/alethic/tableaux/internal/domain"
)

// Channel names one of the engine's event points (section 4.5).
type Channel string

const (
	BeforeTrunkBuild Channel = "BEFORE_TRUNK_BUILD"
	AfterTrunkBuild  Channel = "AFTER_TRUNK_BUILD"
	AfterBranchAdd   Channel = "AFTER_BRANCH_ADD"
	AfterBranchClose Channel = "AFTER_BRANCH_CLOSE"
	AfterNodeAdd     Channel = "AFTER_NODE_ADD"
	AfterNodeTick    Channel = "AFTER_NODE_TICK"
	BeforeApply      Channel = "BEFORE_APPLY"
	AfterApply       Channel = "AFTER_APPLY"
)

// Event carries whatever is relevant to the channel it was emitted on;
// unused fields are left at their zero value.
type Event struct {
	Channel Channel
	Tableau *Tableau
	Branch  *Branch
	Node    *domain.Node
	Target  *Target
}

// Listener observes one channel. A returned error is not fatal to the
// tableau (the triggering application has already committed) but
// surfaces from the Step()/Build() call that raised the event, per
// section 4.5's "a listener exception surfaces from step() but does not
// corrupt state".
type Listener func(Event) error

type registration struct {
	fn   Listener
	once bool
}

// Emitter is a synchronous, registration-ordered pub/sub hub, grounded
// on mbflow's ObserverManager (internal/infrastructure/monitoring) but
// generalized from a fixed observer interface to named channels so each
// logic/engine concern can listen independently.
type Emitter struct {
	mu        sync.RWMutex
	listeners map[Channel][]registration
}

// NewEmitter returns an empty Emitter.
func NewEmitter() *Emitter {
	return &Emitter{listeners: make(map[Channel][]registration)}
}

// On registers fn to be called every time ch fires.
func (e *Emitter) On(ch Channel, fn Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[ch] = append(e.listeners[ch], registration{fn: fn})
}

// Once registers fn to be called exactly once, the next time ch fires.
func (e *Emitter) Once(ch Channel, fn Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[ch] = append(e.listeners[ch], registration{fn: fn, once: true})
}

// Emit calls every listener on ch synchronously, in registration order.
// The first error returned by a listener is remembered and returned
// after every listener has run; once-listeners are removed regardless
// of whether they errored.
func (e *Emitter) Emit(ev Event) error {
	e.mu.Lock()
	regs := e.listeners[ev.Channel]
	remaining := regs[:0:0]
	var firstErr error
	for _, r := range regs {
		if err := r.fn(ev); err != nil && firstErr == nil {
			firstErr = err
		}
		if !r.once {
			remaining = append(remaining, r)
		}
	}
	e.listeners[ev.Channel] = remaining
	e.mu.Unlock()
	return firstErr
}
