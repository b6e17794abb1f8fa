// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

import (
	"github.com/bitmark-inc/avlgtree/fault"
)

// Delete - removes a specific item from the tree
// returns the stored key that was removed or nil if not present
func (tree *Tree) Delete(key Item) (Item, error) {
	if nil == tree.root {
		return nil, fault.ErrTreeIsEmpty
	}
	removed, ok := tree.delete(key, &tree.root)
	if !ok {
		return nil, nil
	}
	tree.count -= 1
	return removed, nil
}

// delete: tree balancer, left branch has shrunk
func (tree *Tree) shrunkLeft(pp **node) {
	p := *pp
	p.update()
	if !tree.violated(p) {
		return
	}
	p1 := p.right
	if height(p1.right) >= height(p1.left) {
		*pp = tree.rotateLeft(p)
	} else {
		*pp = tree.rotateRightLeft(p)
	}
}

// delete: tree balancer, right branch has shrunk
func (tree *Tree) shrunkRight(pp **node) {
	p := *pp
	p.update()
	if !tree.violated(p) {
		return
	}
	p1 := p.left
	if height(p1.left) >= height(p1.right) {
		*pp = tree.rotateRight(p)
	} else {
		*pp = tree.rotateLeftRight(p)
	}
}

// delete: detach the lowest node of a non-empty sub-tree
// and return its key
func (tree *Tree) deleteFirst(pp **node) Item {
	p := *pp
	if nil == p.left {
		key := p.key
		*pp = p.right
		freeNode(p)
		return key
	}
	key := tree.deleteFirst(&p.left)
	tree.shrunkLeft(pp)
	return key
}

// internal delete routine
func (tree *Tree) delete(key Item, pp **node) (Item, bool) {
	p := *pp
	if nil == p { // key not in tree
		return nil, false
	}
	value := Item(nil)
	removed := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		value, removed = tree.delete(key, &p.left)
		if removed {
			tree.shrunkLeft(pp)
		}
	case -1: // p.key < key
		value, removed = tree.delete(key, &p.right)
		if removed {
			tree.shrunkRight(pp)
		}
	default: // found: delete p
		value = p.key // preserve the stored key
		removed = true
		if nil == p.right {
			*pp = p.left
			freeNode(p)
			break
		}
		// the node stays in place and takes the key of its
		// in-order successor, which is detached instead
		p.key = tree.deleteFirst(&p.right)
		tree.shrunkRight(pp)
	}
	return value, removed
}
