// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

// all rotations return the new local root and leave the in-order
// sequence of keys unchanged

// single RR rotation, p.right must exist
func (tree *Tree) rotateLeft(p *node) *node {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.update()
	p1.update()

	tree.rotations.left.Increment()
	return p1
}

// single LL rotation, p.left must exist
func (tree *Tree) rotateRight(p *node) *node {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	p.update()
	p1.update()

	tree.rotations.right.Increment()
	return p1
}

// double LR rotation, p.left.right must exist
func (tree *Tree) rotateLeftRight(p *node) *node {
	p1 := p.left
	p2 := p1.right
	p1.right = p2.left
	p2.left = p1
	p.left = p2.right
	p2.right = p

	p1.update()
	p.update()
	p2.update()

	tree.rotations.leftRight.Increment()
	return p2
}

// double RL rotation, p.right.left must exist
func (tree *Tree) rotateRightLeft(p *node) *node {
	p1 := p.right
	p2 := p1.left
	p1.left = p2.right
	p2.right = p1
	p.right = p2.left
	p2.left = p

	p.update()
	p1.update()
	p2.update()

	tree.rotations.rightLeft.Increment()
	return p2
}
