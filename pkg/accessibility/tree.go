package accessibility

// NodePair couples a node with its stable ID inside a TreeUpdate.
// Pairs are ordered parent-before-child so adapters can rebuild the
// tree in a single pass.
type NodePair struct {
	ID   NodeID
	Node Node
}

// Tree carries tree-level state: which node is the root. It is only
// present on updates that replace the whole tree.
type Tree struct {
	Root NodeID
}

// TreeUpdate is a full snapshot of the accessibility tree. Updates are
// snapshots rather than diffs: adapters replace their previous state
// wholesale, which keeps the producer side stateless.
type TreeUpdate struct {
	Nodes []NodePair
	Tree  *Tree
	Focus *NodeID
}

// IsEmpty reports whether the update carries nothing for the adapter.
func (u TreeUpdate) IsEmpty() bool {
	return len(u.Nodes) == 0 && u.Tree == nil && u.Focus == nil
}
