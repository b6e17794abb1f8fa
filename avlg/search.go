// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

import (
	"github.com/bitmark-inc/avlgtree/fault"
)

// Search - find a specific item
// returns the stored key or nil if not present
func (tree *Tree) Search(key Item) (Item, error) {
	if nil == tree.root {
		return nil, fault.ErrTreeIsEmpty
	}
	p := search(key, tree.root)
	if nil == p {
		return nil, nil
	}
	return p.key, nil
}

// Contains - true if the key is in the tree
func (tree *Tree) Contains(key Item) bool {
	return nil != search(key, tree.root)
}

func search(key Item, tree *node) *node {
	for nil != tree {
		switch tree.key.Compare(key) {
		case +1: // tree.key > key
			tree = tree.left
		case -1: // tree.key < key
			tree = tree.right
		default:
			return tree
		}
	}
	return nil
}
