// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

// Insert - insert a new key into the tree
// returns false if an equal key was already present
func (tree *Tree) Insert(key Item) bool {
	added := false
	tree.root, added = tree.insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly rotated sub-tree
func (tree *Tree) insert(key Item, p *node) (*node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}
	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = tree.insert(key, p.left)
		if !added {
			return p, false
		}
		p.update()
		if tree.violated(p) {
			// left branch has grown too tall
			if p.left.key.Compare(key) == +1 {
				p = tree.rotateRight(p)
			} else {
				p = tree.rotateLeftRight(p)
			}
		}
	case -1: // p.key < key
		p.right, added = tree.insert(key, p.right)
		if !added {
			return p, false
		}
		p.update()
		if tree.violated(p) {
			// right branch has grown too tall
			if p.right.key.Compare(key) == -1 {
				p = tree.rotateLeft(p)
			} else {
				p = tree.rotateRightLeft(p)
			}
		}
	default:
		// duplicate: leave the tree unchanged
	}
	return p, added
}
