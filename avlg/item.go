// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlg

import (
	"strconv"
	"strings"
)

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0, +1 for receiver less than, equal to or
// greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// IntItem - integer key
type IntItem int

// Compare - integer comparison for AVL interface
func (i IntItem) Compare(x interface{}) int {
	j := x.(IntItem)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (i IntItem) String() string {
	return strconv.Itoa(int(i))
}

// StringItem - string key
type StringItem string

// Compare - lexical comparison for AVL interface
func (s StringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(StringItem)))
}

// String - the string itself
func (s StringItem) String() string {
	return string(s)
}
