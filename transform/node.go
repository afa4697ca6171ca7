// SPDX-License-Identifier: GPL-2.0-or-later

package transform

// Node is an attachment point in a scene hierarchy. A node with a nil
// parent is a root. Nodes are driven from the host frame loop and are
// not safe for concurrent use.
type Node struct {
	parent *Node
	local  Pose
}

func NewNode(local Pose) *Node {
	return &Node{local: local}
}

func (n *Node) Local() Pose {
	return n.local
}

func (n *Node) SetLocal(p Pose) {
	n.local = p
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) SetParent(p *Node) {
	n.parent = p
}

// World returns the node's pose in the root frame, composed root first.
func (n *Node) World() Pose {
	if n.parent == nil {
		return n.local
	}
	return n.parent.World().Mul(n.local)
}

// UniformScaledAncestors reports whether every strict ancestor carries a
// uniform scale. Composition through a non-uniformly scaled ancestor is
// only an approximation.
func (n *Node) UniformScaledAncestors() bool {
	for a := n.parent; a != nil; a = a.parent {
		if !a.local.UniformScale() {
			return false
		}
	}
	return true
}
