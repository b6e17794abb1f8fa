// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

import (
	"sync"

	"github.com/bitmark-inc/avlgtree/fault"
)

// a node in the tree
type node struct {
	left   *node // left sub-tree
	right  *node // right sub-tree
	key    Item  // key part for ordering
	height int   // 0 for a leaf
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key Item) *node {
	m.Lock()
	defer m.Unlock()
	if nil == pool {
		if 0 != freeNodes {
			fault.Panic("avlg: node pool corrupt")
		}
		totalNodes += 1
		return &node{
			key:    key,
			height: 0,
		}
	}
	p := pool
	pool = p.left
	p.key = key
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	p.height = 0
	freeNodes -= 1
	return p
}

// reclaim a node and keep it in a pool
func freeNode(p *node) {
	m.Lock()
	p.left = pool // use as free list pointer
	p.right = nil
	p.key = nil
	p.height = 0
	freeNodes += 1
	pool = p
	m.Unlock()
}

// reclaim a whole sub-tree
func freeTree(p *node) {
	if nil == p {
		return
	}
	freeTree(p.left)
	freeTree(p.right)
	freeNode(p)
}

// PoolStatistics - total nodes ever allocated and the number
// currently held for reuse
func PoolStatistics() (total int, free int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}
