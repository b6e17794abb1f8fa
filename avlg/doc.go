// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avlg - an AVL tree with a relaxed balance condition
//
// A tree is created with an imbalance bound G >= 1 and guarantees that
// for every node the heights of the left and right sub-trees differ by
// at most G.  G == 1 is the classic AVL tree; larger values accept a
// taller tree in exchange for fewer rotations.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are unique: inserting a key that compares equal to one already
// in the tree leaves the tree unchanged.
//
// There are no parent pointers, the recursive insert and delete
// return the possibly rotated sub-tree to the caller which rewires its
// own child link.  Heights are cached in each node and refreshed on
// the way back up.
package avlg
