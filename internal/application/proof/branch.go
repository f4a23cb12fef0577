package proof

import (
	"github.com/google/uuid"

	"github.com/alethic/tableaux/internal/domain"
)

type sentenceDesigKey struct {
	sentenceID string
	designated bool
	hasDesig   bool
}

type sentenceWorldKey struct {
	sentenceID string
	world      int
	hasWorld   bool
}

type accessKey struct {
	w1, w2 int
}

type quantInstKey struct {
	nodeID uuid.UUID
	term   domain.Term
}

// Branch is an ordered sequence of nodes plus a closed flag, per section
// 3. It owns the subformula/access indexes and the rule-helper caches
// (section 4.4) that a split must clone into the child before further
// mutation (section 5).
type Branch struct {
	id            int
	parentID      int
	hasParent     bool
	forkNodeCount int // len(parent.nodes) at fork time

	nodes  []*domain.Node
	seq    map[uuid.UUID]int // insertion order, for deterministic tie-breaking
	ticked map[uuid.UUID]bool
	closed bool

	bySentenceDesig map[sentenceDesigKey][]*domain.Node
	bySentenceWorld map[sentenceWorldKey][]*domain.Node
	access          map[accessKey]bool

	constants map[domain.Term]bool
	nextWorld int
	worlds    map[int]bool

	appliedNodes map[string]map[uuid.UUID]bool
	quantInsts   map[string]map[quantInstKey]bool
	pairApplied  map[string]bool
}

func newBranch(id int) *Branch {
	return &Branch{
		id:              id,
		seq:             make(map[uuid.UUID]int),
		ticked:          make(map[uuid.UUID]bool),
		bySentenceDesig: make(map[sentenceDesigKey][]*domain.Node),
		bySentenceWorld: make(map[sentenceWorldKey][]*domain.Node),
		access:          make(map[accessKey]bool),
		constants:       make(map[domain.Term]bool),
		worlds:          make(map[int]bool),
		appliedNodes:    make(map[string]map[uuid.UUID]bool),
		quantInsts:      make(map[string]map[quantInstKey]bool),
		pairApplied:     make(map[string]bool),
	}
}

// Fork creates a child branch that inherits every node, index, constant
// and world counter from b (section 3: "on split the child inherits all
// ancestor nodes, all indexes, all constants and world counters").
func (b *Branch) Fork(childID int) *Branch {
	c := newBranch(childID)
	c.parentID, c.hasParent = b.id, true
	c.forkNodeCount = len(b.nodes)

	c.nodes = append(c.nodes, b.nodes...)
	for k, v := range b.seq {
		c.seq[k] = v
	}
	for k, v := range b.ticked {
		c.ticked[k] = v
	}
	for k, v := range b.bySentenceDesig {
		cp := make([]*domain.Node, len(v))
		copy(cp, v)
		c.bySentenceDesig[k] = cp
	}
	for k, v := range b.bySentenceWorld {
		cp := make([]*domain.Node, len(v))
		copy(cp, v)
		c.bySentenceWorld[k] = cp
	}
	for k, v := range b.access {
		c.access[k] = v
	}
	for k, v := range b.constants {
		c.constants[k] = v
	}
	for k, v := range b.worlds {
		c.worlds[k] = v
	}
	c.nextWorld = b.nextWorld
	for rule, set := range b.appliedNodes {
		cp := make(map[uuid.UUID]bool, len(set))
		for k, v := range set {
			cp[k] = v
		}
		c.appliedNodes[rule] = cp
	}
	for rule, set := range b.quantInsts {
		cp := make(map[quantInstKey]bool, len(set))
		for k, v := range set {
			cp[k] = v
		}
		c.quantInsts[rule] = cp
	}
	for k, v := range b.pairApplied {
		c.pairApplied[k] = v
	}
	return c
}

// ID returns the branch's identity, stable for its lifetime.
func (b *Branch) ID() int { return b.id }

// Closed reports whether a closure rule has already fired on b.
func (b *Branch) Closed() bool { return b.closed }

// Close marks b closed. Idempotent.
func (b *Branch) Close() { b.closed = true }

// Nodes returns every node on b, including inherited ones, in the order
// they were added (ancestor nodes first).
func (b *Branch) Nodes() []*domain.Node { return b.nodes }

// Add appends n to b, updating every index and helper counter. Once a
// node is added it is never removed (section 3's monotonic-growth
// invariant, tested in section 8 property 3).
func (b *Branch) Add(n *domain.Node) {
	b.seq[n.ID()] = len(b.nodes)
	b.nodes = append(b.nodes, n)

	if n.HasSentence() {
		var world int
		hasWorld := n.HasWorld()
		if hasWorld {
			world = n.WorldOr(0)
		}
		var designated bool
		hasDesig := n.Designated != nil
		if hasDesig {
			designated = *n.Designated
		}

		dk := sentenceDesigKey{n.Sentence.ID(), designated, hasDesig}
		b.bySentenceDesig[dk] = append(b.bySentenceDesig[dk], n)

		wk := sentenceWorldKey{n.Sentence.ID(), world, hasWorld}
		b.bySentenceWorld[wk] = append(b.bySentenceWorld[wk], n)

		for _, c := range domain.Constants(n.Sentence) {
			b.constants[c] = true
		}
	}

	if n.World1 != nil && n.World2 != nil {
		b.access[accessKey{*n.World1, *n.World2}] = true
	}

	for _, w := range b.worldsOf(n) {
		b.worlds[w] = true
		if w+1 > b.nextWorld {
			b.nextWorld = w + 1
		}
	}
}

// Worlds returns every world index referenced on b, in no particular
// order.
func (b *Branch) Worlds() []int {
	out := make([]int, 0, len(b.worlds))
	for w := range b.worlds {
		out = append(out, w)
	}
	return out
}

func (b *Branch) worldsOf(n *domain.Node) []int {
	var ws []int
	if n.World != nil {
		ws = append(ws, *n.World)
	}
	if n.World1 != nil {
		ws = append(ws, *n.World1)
	}
	if n.World2 != nil {
		ws = append(ws, *n.World2)
	}
	ws = append(ws, n.Worlds...)
	return ws
}

// Seq returns n's zero-based insertion index on b, used for deterministic
// tie-breaking when two targets otherwise score equally.
func (b *Branch) Seq(n *domain.Node) int { return b.seq[n.ID()] }

// Tick marks n consumed on b. Ticked state never flips back (section 8
// property 3).
func (b *Branch) Tick(n *domain.Node) { b.ticked[n.ID()] = true }

// IsTicked reports whether n has been consumed on b.
func (b *Branch) IsTicked(n *domain.Node) bool { return b.ticked[n.ID()] }

// Unticked returns every node on b not yet ticked, in insertion order.
func (b *Branch) Unticked() []*domain.Node {
	out := make([]*domain.Node, 0, len(b.nodes))
	for _, n := range b.nodes {
		if !b.ticked[n.ID()] {
			out = append(out, n)
		}
	}
	return out
}

// FindSentence returns every node on b asserting s with the given
// designation (pass nil to match any designation).
func (b *Branch) FindSentence(s domain.Sentence, designated *bool) []*domain.Node {
	if designated == nil {
		var out []*domain.Node
		out = append(out, b.bySentenceDesig[sentenceDesigKey{s.ID(), false, false}]...)
		out = append(out, b.bySentenceDesig[sentenceDesigKey{s.ID(), true, true}]...)
		out = append(out, b.bySentenceDesig[sentenceDesigKey{s.ID(), false, true}]...)
		return out
	}
	return b.bySentenceDesig[sentenceDesigKey{s.ID(), *designated, true}]
}

// HasSentence reports whether any node on b asserts s with the given
// designation.
func (b *Branch) HasSentence(s domain.Sentence, designated *bool) bool {
	return len(b.FindSentence(s, designated)) > 0
}

// FindSentenceAtWorld returns every node on b asserting s at world w.
func (b *Branch) FindSentenceAtWorld(s domain.Sentence, w int) []*domain.Node {
	return b.bySentenceWorld[sentenceWorldKey{s.ID(), w, true}]
}

// HasAccess reports whether the branch's access relation contains (w1, w2).
func (b *Branch) HasAccess(w1, w2 int) bool { return b.access[accessKey{w1, w2}] }

// AddAccess extends the branch's access relation (used by serial,
// reflexive, transitive and symmetric frame rules).
func (b *Branch) AddAccess(w1, w2 int) {
	b.access[accessKey{w1, w2}] = true
	b.worlds[w1] = true
	b.worlds[w2] = true
}

// AccessPairs returns every (w1, w2) pair currently in the access
// relation, in no particular order.
func (b *Branch) AccessPairs() [][2]int {
	out := make([][2]int, 0, len(b.access))
	for k := range b.access {
		out = append(out, [2]int{k.w1, k.w2})
	}
	return out
}

// Constants returns every constant term referenced on b.
func (b *Branch) Constants() []domain.Term {
	out := make([]domain.Term, 0, len(b.constants))
	for t := range b.constants {
		out = append(out, t)
	}
	return out
}

// NewConstant returns a constant not yet referenced on b, cycling
// through successive subscripts of index 0 (the "MaxConstants" heuristic
// of section 4.4).
func (b *Branch) NewConstant() domain.Term {
	sub := uint(0)
	for {
		c := domain.NewConstant(0, sub)
		if !b.constants[c] {
			return c
		}
		sub++
	}
}

// NextWorld returns the next unused world index on b.
func (b *Branch) NextWorld() int {
	w := b.nextWorld
	b.nextWorld++
	return w
}

// HasApplied reports whether rule ruleName has already consumed nodeID
// on b (the AppliedNodes helper of section 4.4).
func (b *Branch) HasApplied(ruleName string, nodeID uuid.UUID) bool {
	return b.appliedNodes[ruleName][nodeID]
}

// MarkApplied records that rule ruleName has consumed nodeID on b.
func (b *Branch) MarkApplied(ruleName string, nodeID uuid.UUID) {
	set := b.appliedNodes[ruleName]
	if set == nil {
		set = make(map[uuid.UUID]bool)
		b.appliedNodes[ruleName] = set
	}
	set[nodeID] = true
}

// HasAppliedPair reports whether key (an arbitrary rule-chosen composite
// key, typically combining two node ids) has already been recorded on b.
// Used by rules whose applicability depends on a pair of nodes rather
// than a single node (e.g. identity indiscernibility, modal access-pair
// propagation), which AppliedNodes cannot key on directly.
func (b *Branch) HasAppliedPair(key string) bool { return b.pairApplied[key] }

// MarkAppliedPair records key as applied on b.
func (b *Branch) MarkAppliedPair(key string) { b.pairApplied[key] = true }

// QuantifierInstantiated reports whether rule ruleName has already
// instantiated nodeID with constant c on b.
func (b *Branch) QuantifierInstantiated(ruleName string, nodeID uuid.UUID, c domain.Term) bool {
	return b.quantInsts[ruleName][quantInstKey{nodeID, c}]
}

// MarkQuantifierInstantiated records that rule ruleName has instantiated
// nodeID with constant c on b.
func (b *Branch) MarkQuantifierInstantiated(ruleName string, nodeID uuid.UUID, c domain.Term) {
	set := b.quantInsts[ruleName]
	if set == nil {
		set = make(map[quantInstKey]bool)
		b.quantInsts[ruleName] = set
	}
	set[quantInstKey{nodeID, c}] = true
}
