// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/avlgtree/counter"
)

// test incrementing and resetting a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 3 != c1.Uint64() {
		t.Errorf("counter is not 3 after incrementing: %d", c1.Uint64())
	}

	if n := c1.Add(7); 10 != n {
		t.Errorf("counter is not 10 after add: %d", n)
	}

	if old := c1.Reset(); 10 != old {
		t.Errorf("reset returned: %d  expected: 10", old)
	}

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}
}

// several go routines incrementing the same counter
func TestConcurrentIncrement(t *testing.T) {

	const routines = 8
	const increments = 1000

	var c1 counter.Counter
	var wg sync.WaitGroup
	for i := 0; i < routines; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j += 1 {
				c1.Increment()
			}
		}()
	}
	wg.Wait()

	if routines*increments != c1.Uint64() {
		t.Errorf("counter: %d  expected: %d", c1.Uint64(), routines*increments)
	}
}
