// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

// KeysAtDepth - returns the keys of all nodes at a specific depth,
// from left to right, the root is at depth zero
func (tree *Tree) KeysAtDepth(depth uint) []Item {
	return keysAtDepth(tree.root, depth, []Item{})
}

func keysAtDepth(p *node, depth uint, keys []Item) []Item {
	if nil == p {
		return keys
	}
	if 0 == depth {
		return append(keys, p.key)
	}
	keys = keysAtDepth(p.left, depth-1, keys)
	return keysAtDepth(p.right, depth-1, keys)
}

// Children - the keys of the left and right children of the node
// holding key, nil for an absent child
func (tree *Tree) Children(key Item) (Item, Item, bool) {
	p := search(key, tree.root)
	if nil == p {
		return nil, nil, false
	}
	l := Item(nil)
	if nil != p.left {
		l = p.left.key
	}
	r := Item(nil)
	if nil != p.right {
		r = p.right.key
	}
	return l, r, true
}
