// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

import (
	"github.com/bitmark-inc/avlgtree/counter"
)

type rotationCounters struct {
	left      counter.Counter
	right     counter.Counter
	leftRight counter.Counter
	rightLeft counter.Counter
}

// Statistics - number of rotations of each kind performed by a tree
type Statistics struct {
	Left      uint64 `json:"left"`
	Right     uint64 `json:"right"`
	LeftRight uint64 `json:"leftRight"`
	RightLeft uint64 `json:"rightLeft"`
}

// Total - all rotations, a double rotation counts once
func (s Statistics) Total() uint64 {
	return s.Left + s.Right + s.LeftRight + s.RightLeft
}

// Statistics - read the rotation counters
func (tree *Tree) Statistics() Statistics {
	return Statistics{
		Left:      tree.rotations.left.Uint64(),
		Right:     tree.rotations.right.Uint64(),
		LeftRight: tree.rotations.leftRight.Uint64(),
		RightLeft: tree.rotations.rightLeft.Uint64(),
	}
}

// ResetStatistics - zero all rotation counters
func (tree *Tree) ResetStatistics() {
	tree.rotations.left.Reset()
	tree.rotations.right.Reset()
	tree.rotations.leftRight.Reset()
	tree.rotations.rightLeft.Reset()
}
