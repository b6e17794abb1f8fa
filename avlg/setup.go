// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

import (
	"github.com/bitmark-inc/avlgtree/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root      *node
	count     int
	bound     int
	rotations rotationCounters
}

// New - create an initially empty tree that allows sub-tree heights
// to differ by up to maxImbalance
func New(maxImbalance int) (*Tree, error) {
	if maxImbalance < 1 {
		return nil, fault.ErrInvalidImbalance
	}
	return &Tree{
		root:  nil,
		count: 0,
		bound: maxImbalance,
	}, nil
}

// ImbalanceBound - the maximum height difference given to New
func (tree *Tree) ImbalanceBound() int {
	return tree.bound
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the root, -1 for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root - return the key at the root of the tree
func (tree *Tree) Root() (Item, error) {
	if nil == tree.root {
		return nil, fault.ErrTreeIsEmpty
	}
	return tree.root.key, nil
}

// Clear - remove all nodes
func (tree *Tree) Clear() {
	freeTree(tree.root)
	tree.root = nil
	tree.count = 0
}
