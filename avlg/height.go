// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

// cached height of a sub-tree, -1 for an empty sub-tree
func height(p *node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height from the immediate children
func (p *node) update() {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// signed difference: positive when the left side is taller
func skew(p *node) int {
	return height(p.left) - height(p.right)
}

// true if the heights of the children differ by more than the bound
func (tree *Tree) violated(p *node) bool {
	d := skew(p)
	return d > tree.bound || -d > tree.bound
}

// full recursive height computation, ignores the cache
func measure(p *node) int {
	if nil == p {
		return -1
	}
	lh := measure(p.left)
	rh := measure(p.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}
