package proof

import (
	"fmt"
	"sync"

	"github.com/alethic/tableaux/internal/domain"
)

// Meta is the descriptive half of a logic bundle (section 4.3).
type Meta struct {
	Category      string
	Description   string
	CategoryOrder int
	Tags          []string
	NativeOps     []domain.Operator
}

// Logic is the static, declarative bundle through which a logic plugs
// into the engine (section 4.3). Logics are registered at init time and
// never loaded dynamically (explicit non-goal).
type Logic interface {
	Name() string
	Meta() Meta
	ClosureRules() []ClosureRule
	RuleGroups() [][]Rule
	// BuildTrunk constructs the initial nodes on tableau's sole branch
	// for argument.
	BuildTrunk(tableau *Tableau, argument domain.Argument) error
	// NewModel returns a fresh, empty Model of this logic's semantics.
	NewModel() Model
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Logic)
)

// Register adds logic to the static registry under its own Name(),
// overwriting any previous registration of the same name. Intended to be
// called from each logic package's init().
func Register(logic Logic) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[logic.Name()] = logic
}

// Lookup resolves a logic by name (section 6's BuildTableau(logic-name, ...)).
func Lookup(name string) (Logic, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	l, ok := registry[name]
	if !ok {
		return nil, domain.NewError(domain.ErrKindLogic, domain.CodeUnknownLogic,
			fmt.Sprintf("unknown logic %q", name), nil)
	}
	return l, nil
}

// Names returns every registered logic name, in no particular order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	return out
}
