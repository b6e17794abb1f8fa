// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlgtree/avlg"
	"github.com/bitmark-inc/avlgtree/fault"
)

// Result - summary of a single workload run
type Result struct {
	Name      string          `json:"name"`
	Imbalance int             `json:"imbalance"`
	Inserted  int             `json:"inserted"`
	Deleted   int             `json:"deleted"`
	Count     int             `json:"count"`
	Height    int             `json:"height"`
	Rotations avlg.Statistics `json:"rotations"`
}

// generate the keys of a workload in insertion order
func workloadKeys(w WorkloadType) ([]avlg.Item, error) {
	keys := make([]avlg.Item, 0, w.Keys)
	switch w.Order {
	case orderAscending:
		for i := 0; i < w.Keys; i += 1 {
			keys = append(keys, avlg.IntItem(i))
		}
	case orderDescending:
		for i := w.Keys - 1; i >= 0; i -= 1 {
			keys = append(keys, avlg.IntItem(i))
		}
	case orderRandom:
		r := rand.New(rand.NewSource(w.Seed))
		for _, i := range r.Perm(w.Keys) {
			keys = append(keys, avlg.IntItem(i))
		}
	case orderListed:
		for _, i := range w.List {
			keys = append(keys, avlg.IntItem(i))
		}
	default:
		return nil, fault.ErrInvalidKeyOrder
	}
	return keys, nil
}

// check every structural invariant of a tree
func verify(log *logger.L, tree *avlg.Tree, phase string) error {
	checks := []struct {
		name string
		ok   func() bool
	}{
		{"bst", tree.IsBST},
		{"ordered", tree.IsOrdered},
		{"balanced", tree.IsBalanced},
		{"heights", tree.CheckHeights},
		{"count", tree.CheckCount},
	}
	for _, c := range checks {
		if !c.ok() {
			log.Errorf("%s: %s check failed  count: %d  height: %d", phase, c.name, tree.Count(), tree.Height())
			return fault.ErrVerificationFailed
		}
	}
	return nil
}

// build a tree with the given bound, insert all keys of the workload
// then delete the requested number of them in insertion order
func runWorkload(log *logger.L, w WorkloadType, imbalance int) (*Result, *avlg.Tree, error) {

	keys, err := workloadKeys(w)
	if nil != err {
		return nil, nil, err
	}
	if w.Delete > len(keys) {
		return nil, nil, fault.ErrInvalidDeleteCount
	}

	tree, err := avlg.New(imbalance)
	if nil != err {
		return nil, nil, err
	}

	log.Debugf("%s: G=%d inserting %d %s keys", w.Name, imbalance, len(keys), w.Order)

	inserted := 0
	for _, key := range keys {
		if !tree.Insert(key) {
			log.Warnf("%s: duplicate key: %v", w.Name, key)
			continue
		}
		inserted += 1
	}
	if err := verify(log, tree, w.Name+" insert"); nil != err {
		return nil, tree, err
	}

	log.Debugf("%s: G=%d height: %d after insert, deleting %d keys", w.Name, imbalance, tree.Height(), w.Delete)

	deleted := 0
	for _, key := range keys[:w.Delete] {
		removed, err := tree.Delete(key)
		if nil != err {
			return nil, tree, err
		}
		if nil == removed {
			log.Warnf("%s: key: %v not found for delete", w.Name, key)
			continue
		}
		deleted += 1
	}
	if err := verify(log, tree, w.Name+" delete"); nil != err {
		return nil, tree, err
	}

	result := &Result{
		Name:      w.Name,
		Imbalance: imbalance,
		Inserted:  inserted,
		Deleted:   deleted,
		Count:     tree.Count(),
		Height:    tree.Height(),
		Rotations: tree.Statistics(),
	}
	log.Infof("%s: G=%d count: %d  height: %d  rotations: %d", w.Name, imbalance, result.Count, result.Height, result.Rotations.Total())
	return result, tree, nil
}
