package proof

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alethic/tableaux/internal/domain"
)

// State is the tableau's lifecycle state (section 4.5).
type State int

const (
	StateNew State = iota
	StateTrunkBuilt
	StateRunning
	StateFinished
	StateError
)

// Tableau is a tree of branches with one initial branch (section 3). It
// owns the step scheduler, the event emitter, and the accumulated
// history and stats.
type Tableau struct {
	logic    Logic
	argument domain.Argument
	options  Options

	branches     []*Branch
	nextBranchID int

	history   []StepEntry
	stepIndex int

	emitter *Emitter
	state   State

	premature bool
	timedOut  bool

	startedAt    time.Time
	buildElapsed time.Duration
	trunkElapsed time.Duration
	treeElapsed  time.Duration

	models            map[int]Model
	modelsElapsed     time.Duration
	modelExtractErr   map[int]error
}

// Open constructs a Tableau for (logic, argument) per section 4.5.
func Open(logic Logic, argument domain.Argument, options Options) (*Tableau, error) {
	if logic == nil {
		return nil, domain.NewEngineError(domain.CodeIllegalState, "logic is nil", nil)
	}
	t := &Tableau{
		logic:    logic,
		argument: argument,
		options:  options,
		emitter:  NewEmitter(),
		state:    StateNew,
		models:   make(map[int]Model),
	}
	return t, nil
}

// On registers a listener on ch.
func (t *Tableau) On(ch Channel, fn Listener) { t.emitter.On(ch, fn) }

// Once registers a one-shot listener on ch.
func (t *Tableau) Once(ch Channel, fn Listener) { t.emitter.Once(ch, fn) }

// State returns the tableau's current lifecycle state.
func (t *Tableau) State() State { return t.state }

// Branches returns every branch, open or closed, in creation order.
func (t *Tableau) Branches() []*Branch { return t.branches }

// OpenBranches returns every currently-open branch, in creation order.
func (t *Tableau) OpenBranches() []*Branch {
	var out []*Branch
	for _, b := range t.branches {
		if !b.Closed() {
			out = append(out, b)
		}
	}
	return out
}

// ClosedBranches returns every currently-closed branch, in creation order.
func (t *Tableau) ClosedBranches() []*Branch {
	var out []*Branch
	for _, b := range t.branches {
		if b.Closed() {
			out = append(out, b)
		}
	}
	return out
}

// History returns every applied step so far, in application order.
func (t *Tableau) History() []StepEntry { return t.history }

// newBranch allocates and registers a fresh branch, emitting AfterBranchAdd.
func (t *Tableau) newBranch() (*Branch, error) {
	b := newBranch(t.nextBranchID)
	t.nextBranchID++
	t.branches = append(t.branches, b)
	return b, t.emitter.Emit(Event{Channel: AfterBranchAdd, Tableau: t, Branch: b})
}

// buildTrunk runs the initialization sequence of section 4.5: attach
// BEFORE/AFTER_TRUNK_BUILD events around the logic's trunk builder.
func (t *Tableau) buildTrunk() error {
	if t.state != StateNew {
		return domain.NewEngineError(domain.CodeIllegalState, "build_trunk called outside New", nil)
	}
	start := time.Now()

	root, err := t.newBranch()
	if err != nil {
		return err
	}

	if err := t.emitter.Emit(Event{Channel: BeforeTrunkBuild, Tableau: t, Branch: root}); err != nil {
		log.Warn().Err(err).Msg("BEFORE_TRUNK_BUILD listener returned an error")
	}

	if err := t.logic.BuildTrunk(t, t.argument); err != nil {
		t.state = StateError
		return domain.NewEngineError(domain.CodeIllegalState, "trunk build failed", err)
	}

	if err := t.emitter.Emit(Event{Channel: AfterTrunkBuild, Tableau: t, Branch: root}); err != nil {
		log.Warn().Err(err).Msg("AFTER_TRUNK_BUILD listener returned an error")
	}

	t.trunkElapsed = time.Since(start)
	t.state = StateTrunkBuilt
	log.Info().
		Str("logic", t.logic.Name()).
		Int("branch_id", root.ID()).
		Msg("trunk built")
	return nil
}

// AddNode appends n to branch and emits AfterNodeAdd. Logics call this
// from BuildTrunk; rule application calls the lower-level applyAdds.
func (t *Tableau) AddNode(branch *Branch, props domain.NodeProps) error {
	n := domain.NewNode(props)
	branch.Add(n)
	return t.emitter.Emit(Event{Channel: AfterNodeAdd, Tableau: t, Branch: branch, Node: n})
}

// Root returns the tableau's initial branch.
func (t *Tableau) Root() *Branch {
	if len(t.branches) == 0 {
		return nil
	}
	return t.branches[0]
}

// Step performs exactly one rule application (section 4.5) and returns
// its entry, or nil when nothing is left to do. The closure pass always
// runs first; a rule-group application happens only once no branch can
// be closed.
func (t *Tableau) Step() (*StepEntry, error) {
	if t.state == StateNew {
		if err := t.buildTrunk(); err != nil {
			return nil, err
		}
	}
	if t.state == StateFinished || t.state == StateError {
		return nil, domain.NewEngineError(domain.CodeIllegalState, "step called after finish", nil)
	}
	t.state = StateRunning

	start := time.Now()

	if rule, target, ok := t.findClosureTarget(); ok {
		if err := t.applyClosure(rule, target); err != nil {
			t.state = StateError
			return nil, err
		}
		entry := StepEntry{Index: t.stepIndex, Rule: rule.Name(), Target: target, DurationMs: msSince(start)}
		t.history = append(t.history, entry)
		log.Debug().
			Str("rule", rule.Name()).
			Int("branch_id", target.Branch.ID()).
			Int("step", t.stepIndex).
			Msg("closure rule applied")
		t.stepIndex++
		return &entry, nil
	}

	rule, target, ok := t.findGroupTarget()
	if !ok {
		return nil, nil
	}

	var listenerErr error
	if err := t.emitter.Emit(Event{Channel: BeforeApply, Tableau: t, Branch: target.Branch, Target: &target}); err != nil {
		log.Warn().Err(err).Msg("BEFORE_APPLY listener returned an error")
		listenerErr = err
	}

	adds, err := rule.Apply(target)
	if err != nil {
		t.state = StateError
		log.Error().
			Err(err).
			Str("rule", rule.Name()).
			Int("branch_id", target.Branch.ID()).
			Int("step", t.stepIndex).
			Msg("rule application failed")
		return nil, domain.NewEngineError(domain.CodeRuleApplicationFailed, "rule application failed", err)
	}

	if err := t.applyAdds(target.Branch, adds); err != nil {
		t.state = StateError
		return nil, err
	}

	if rule.Ticks() && target.Node != nil {
		target.Branch.Tick(target.Node)
		if err := t.emitter.Emit(Event{Channel: AfterNodeTick, Tableau: t, Branch: target.Branch, Node: target.Node}); err != nil {
			log.Warn().Err(err).Msg("AFTER_NODE_TICK listener returned an error")
			if listenerErr == nil {
				listenerErr = err
			}
		}
	}

	entry := StepEntry{Index: t.stepIndex, Rule: rule.Name(), Target: target, DurationMs: msSince(start)}
	t.history = append(t.history, entry)
	log.Debug().
		Str("rule", rule.Name()).
		Int("branch_id", target.Branch.ID()).
		Int("step", t.stepIndex).
		Msg("rule applied")
	t.stepIndex++

	if err := t.emitter.Emit(Event{Channel: AfterApply, Tableau: t, Branch: target.Branch, Target: &target}); err != nil {
		log.Warn().Err(err).Msg("AFTER_APPLY listener returned an error")
		if listenerErr == nil {
			listenerErr = err
		}
	}

	return &entry, listenerErr
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

func (t *Tableau) findClosureTarget() (ClosureRule, Target, bool) {
	for _, b := range t.branches {
		if b.Closed() {
			continue
		}
		for _, cr := range t.logic.ClosureRules() {
			if target, ok := cr.Applies(b); ok {
				return cr, target, true
			}
		}
	}
	return nil, Target{}, false
}

func (t *Tableau) applyClosure(rule ClosureRule, target Target) error {
	if err := t.AddNode(target.Branch, domain.NodeProps{Flag: domain.FlagClosure}); err != nil {
		return err
	}
	target.Branch.Close()
	return t.emitter.Emit(Event{Channel: AfterBranchClose, Tableau: t, Branch: target.Branch})
}

type scoredTarget struct {
	rule   Rule
	target Target
	score  int
}

// findGroupTarget walks rule groups in order; the first group with any
// target wins (later groups are not consulted that step), and within the
// winning group the best-scoring target is chosen, tie-broken by lowest
// branch id then lowest node insertion sequence (section 4.5).
func (t *Tableau) findGroupTarget() (Rule, Target, bool) {
	for _, group := range t.logic.RuleGroups() {
		var candidates []scoredTarget
		for _, rule := range group {
			for _, b := range t.branches {
				if b.Closed() {
					continue
				}
				for _, target := range rule.Applies(b) {
					score := 0
					if t.options.IsRankOptim && rule.Branching() {
						score = 1
					}
					candidates = append(candidates, scoredTarget{rule: rule, target: target, score: score})
				}
			}
		}
		if len(candidates) == 0 {
			continue
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.score != b.score {
				return a.score < b.score
			}
			if a.target.Branch.ID() != b.target.Branch.ID() {
				return a.target.Branch.ID() < b.target.Branch.ID()
			}
			return nodeSeqOf(a.target) < nodeSeqOf(b.target)
		})
		best := candidates[0]
		return best.rule, best.target, true
	}
	return nil, Target{}, false
}

func nodeSeqOf(target Target) int {
	if target.Node == nil {
		return -1
	}
	return target.Branch.Seq(target.Node)
}

// applyAdds commits a rule's Adds description: a single-element Adds
// extends branch in place; a multi-element Adds forks (n-1) children and
// appends each list (section 4.3).
func (t *Tableau) applyAdds(branch *Branch, adds Adds) error {
	if len(adds) == 0 {
		return nil
	}
	if len(adds) == 1 {
		for _, props := range adds[0] {
			if err := t.AddNode(branch, props); err != nil {
				return err
			}
		}
		return nil
	}

	targets := make([]*Branch, 0, len(adds))
	targets = append(targets, branch)
	for i := 1; i < len(adds); i++ {
		child, err := t.forkBranch(branch)
		if err != nil {
			return err
		}
		targets = append(targets, child)
	}
	for i, list := range adds {
		for _, props := range list {
			if err := t.AddNode(targets[i], props); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Tableau) forkBranch(parent *Branch) (*Branch, error) {
	child := parent.Fork(t.nextBranchID)
	t.nextBranchID++
	t.branches = append(t.branches, child)
	return child, t.emitter.Emit(Event{Channel: AfterBranchAdd, Tableau: t, Branch: child})
}

// Build runs Step until finished, max_steps is reached, or the timeout
// expires (section 4.5).
func (t *Tableau) Build() error {
	t.startedAt = time.Now()
	for {
		if t.options.Cancel != nil {
			select {
			case <-t.options.Cancel:
				t.premature = true
			default:
			}
		}
		if t.premature {
			break
		}

		elapsed := time.Since(t.startedAt)
		if t.options.BuildTimeoutMs > 0 && elapsed.Milliseconds() >= t.options.BuildTimeoutMs {
			t.timedOut = true
			break
		}
		if t.options.MaxSteps > 0 && t.stepIndex >= t.options.MaxSteps {
			t.premature = true
			break
		}

		entry, err := t.Step()
		if err != nil {
			return err
		}
		if entry == nil {
			break
		}
	}

	t.buildElapsed = time.Since(t.startedAt)
	if t.state != StateError {
		t.state = StateFinished
	}

	switch {
	case t.timedOut:
		log.Warn().
			Str("logic", t.logic.Name()).
			Int("steps", t.stepIndex).
			Dur("elapsed", t.buildElapsed).
			Msg("tableau build timed out")
	case t.premature:
		log.Warn().
			Str("logic", t.logic.Name()).
			Int("steps", t.stepIndex).
			Dur("elapsed", t.buildElapsed).
			Msg("tableau build stopped before completion")
	default:
		log.Info().
			Str("logic", t.logic.Name()).
			Int("steps", t.stepIndex).
			Int("branches", len(t.branches)).
			Dur("elapsed", t.buildElapsed).
			Msg("tableau build finished")
	}

	if t.options.IsBuildModels {
		t.buildModels()
	}
	return nil
}

func (t *Tableau) buildModels() {
	start := time.Now()
	t.modelExtractErr = make(map[int]error)
	for _, b := range t.OpenBranches() {
		m := t.logic.NewModel()
		m.ReadBranch(b)
		t.models[b.id] = m
	}
	t.modelsElapsed = time.Since(start)
}

// Models returns the extracted counter-models, keyed by open branch id
// (only populated when Options.IsBuildModels is true).
func (t *Tableau) Models() map[int]Model { return t.models }

// Stats reports the summary of section 6.
func (t *Tableau) Stats() Stats {
	open := len(t.OpenBranches())
	closed := len(t.ClosedBranches())

	result := "incomplete"
	if t.state == StateFinished && !t.premature && !t.timedOut {
		if open == 0 {
			result = "valid"
		} else {
			result = "invalid"
		}
	}

	return Stats{
		Result:           result,
		Branches:         len(t.branches),
		OpenBranches:     open,
		ClosedBranches:   closed,
		Steps:            t.stepIndex,
		RulesApplied:     len(t.history),
		BuildDurationMs:  float64(t.buildElapsed) / float64(time.Millisecond),
		TrunkDurationMs:  float64(t.trunkElapsed) / float64(time.Millisecond),
		TreeDurationMs:   float64(t.treeElapsed) / float64(time.Millisecond),
		ModelsDurationMs: float64(t.modelsElapsed) / float64(time.Millisecond),
	}
}
