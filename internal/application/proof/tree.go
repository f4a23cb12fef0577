package proof

import "github.com/alethic/tableaux/internal/domain"

// TreeNode is the structured render of section 6: "tableau.tree()
// returns a tree of {nodes, children, closed, leaf, open, depth,
// branch_id}". Since this engine stores branches flat (each owning its
// full inherited node list) rather than as a literal tree of deltas,
// Tree() reconstructs the parent/child shape from Branch.parentID once,
// at render time.
type TreeNode struct {
	Nodes    []domain.NodeProps
	Children []*TreeNode
	Closed   bool
	Leaf     bool
	Open     bool
	Depth    int
	BranchID int
}

// Tree renders the tableau's branch set as a nested tree.
func (t *Tableau) Tree() TreeNode {
	children := make(map[int][]*Branch)
	var roots []*Branch
	for _, b := range t.branches {
		if b.hasParent {
			children[b.parentID] = append(children[b.parentID], b)
		} else {
			roots = append(roots, b)
		}
	}

	var build func(b *Branch, depth int) *TreeNode
	build = func(b *Branch, depth int) *TreeNode {
		node := &TreeNode{
			Closed:   b.Closed(),
			Open:     !b.Closed(),
			Depth:    depth,
			BranchID: b.id,
		}
		// Only the nodes this branch added beyond its parent (at fork
		// time) are rendered at this level; ancestor nodes appear at the
		// ancestor's level. Root branches render everything.
		parentLen := 0
		if b.hasParent {
			parentLen = b.forkNodeCount
		}
		for _, n := range b.nodes[parentLen:] {
			node.Nodes = append(node.Nodes, n.NodeProps)
		}
		kids := children[b.id]
		for _, k := range kids {
			node.Children = append(node.Children, build(k, depth+1))
		}
		node.Leaf = len(kids) == 0
		return node
	}

	root := &TreeNode{Depth: -1}
	for _, r := range roots {
		root.Children = append(root.Children, build(r, 0))
	}
	root.Leaf = len(root.Children) == 0
	return *root
}

func (t *Tableau) branchByID(id int) *Branch {
	for _, b := range t.branches {
		if b.id == id {
			return b
		}
	}
	return nil
}
