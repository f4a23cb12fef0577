package domain

import "github.com/google/uuid"

// FlagClosure is the sentinel Flag value marking a branch-closure node
// (section 3: "the token 'closure' marks a branch-closure sentinel node").
const FlagClosure = "closure"

// NodeProps is the property-map literal a rule's "adds" description uses
// to describe a node to be appended to a branch. Only the recognized
// keys of section 3 are modeled; unused fields are left at their zero
// value (nil pointer / nil slice / empty string).
type NodeProps struct {
	Sentence   Sentence
	Designated *bool
	World      *int
	World1     *int
	World2     *int
	Worlds     []int
	Flag       string
}

// Node is an opaque property map, identified by a stable id rather than
// by its contents: two nodes with identical properties are distinct
// entities (section 3).
type Node struct {
	id uuid.UUID
	NodeProps
}

// NewNode allocates a Node with a fresh stable id.
func NewNode(props NodeProps) *Node {
	return &Node{id: uuid.New(), NodeProps: props}
}

// ID returns the node's stable identity.
func (n *Node) ID() uuid.UUID { return n.id }

// HasSentence reports whether this node asserts a sentence.
func (n *Node) HasSentence() bool { return n.Sentence != nil }

// IsDesignated reports the designated flag, defaulting to false when
// absent (non-designation-style logics never set it).
func (n *Node) IsDesignated() bool { return n.Designated != nil && *n.Designated }

// HasDesignated reports whether the designated key is present at all,
// distinguishing "undesignated" from "not applicable".
func (n *Node) HasDesignated() bool { return n.Designated != nil }

// HasWorld reports whether the world key is present.
func (n *Node) HasWorld() bool { return n.World != nil }

// WorldOr returns the node's world or a fallback when absent.
func (n *Node) WorldOr(fallback int) int {
	if n.World == nil {
		return fallback
	}
	return *n.World
}

// IsModal reports whether any of {world, world1, world2, worlds} is
// present (section 3).
func (n *Node) IsModal() bool {
	return n.World != nil || n.World1 != nil || n.World2 != nil || len(n.Worlds) > 0
}

// IsClosureFlag reports whether this node is the branch-closure
// sentinel.
func (n *Node) IsClosureFlag() bool { return n.Flag == FlagClosure }

// Designate returns a pointer to a bool literal, for convenient
// NodeProps construction (rule bodies write domain.Designate(true)).
func Designate(b bool) *bool { return &b }

// WorldP returns a pointer to an int literal, for convenient NodeProps
// construction.
func WorldP(w int) *int { return &w }
