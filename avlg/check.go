// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

// IsBST - check each node against its immediate children
//
// Only the parent/child relation is checked, bounds from higher
// ancestors are not carried down; see IsOrdered for the strict check.
func (tree *Tree) IsBST() bool {
	return isBST(tree.root)
}

// internal: local ordering checker
func isBST(p *node) bool {
	if nil == p {
		return true
	}
	if nil != p.left && -1 != p.left.key.Compare(p.key) {
		return false
	}
	if nil != p.right && +1 != p.right.key.Compare(p.key) {
		return false
	}
	return isBST(p.left) && isBST(p.right)
}

// IsOrdered - check that every key lies strictly between the bounds
// set by all of its ancestors
func (tree *Tree) IsOrdered() bool {
	return isOrdered(tree.root, nil, nil)
}

// internal: global ordering checker, nil bound means unbounded
func isOrdered(p *node, low Item, high Item) bool {
	if nil == p {
		return true
	}
	if nil != low && +1 != p.key.Compare(low) {
		return false
	}
	if nil != high && -1 != p.key.Compare(high) {
		return false
	}
	return isOrdered(p.left, low, p.key) && isOrdered(p.right, p.key, high)
}

// IsBalanced - check the height difference at every node against the
// bound, heights are recomputed and the cache is not used
func (tree *Tree) IsBalanced() bool {
	_, ok := tree.balanced(tree.root)
	return ok
}

// internal: returns recomputed height and whether the sub-tree is balanced
func (tree *Tree) balanced(p *node) (int, bool) {
	if nil == p {
		return -1, true
	}
	lh, ok := tree.balanced(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := tree.balanced(p.right)
	if !ok {
		return 0, false
	}
	d := lh - rh
	if d > tree.bound || -d > tree.bound {
		return 0, false
	}
	if lh > rh {
		return 1 + lh, true
	}
	return 1 + rh, true
}

// CheckHeights - check the cached heights for consistency
func (tree *Tree) CheckHeights() bool {
	return checkHeights(tree.root)
}

// internal: consistency checker
func checkHeights(p *node) bool {
	if nil == p {
		return true
	}
	if p.height != measure(p) {
		return false
	}
	return checkHeights(p.left) && checkHeights(p.right)
}

// CheckCount - check the node count matches the reachable nodes
func (tree *Tree) CheckCount() bool {
	return tree.count == countNodes(tree.root)
}

func countNodes(p *node) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
