package proof

import "github.com/alethic/tableaux/internal/domain"

// Target designates a rule-application site (section 3). Branch is the
// only field the engine itself consults; everything else is opaque
// payload a rule attaches for its own Apply to read back.
type Target struct {
	Branch     *Branch
	Node       *domain.Node
	Nodes      []*domain.Node
	Sentence   domain.Sentence
	Designated *bool
	World      int
	HasWorld   bool
	World1     int
	World2     int
	HasAccess  bool
	Constant   domain.Term
	HasConstant bool
	Flag       string
	Rule       string
}

// Adds is what Rule.Apply returns: an ordered list of branch
// descriptions. A single-element Adds extends the current branch; a
// multi-element Adds splits the branch once per element (section 4.3).
type Adds [][]domain.NodeProps
