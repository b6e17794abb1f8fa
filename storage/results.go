// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avlgtree/fault"
)

const (
	resultPrefix   = 'R'
	nameTerminator = 0x00

	currentVersion = 0x100
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// next sequence number
var sequenceKey = []byte{0x00, 'S', 'E', 'Q', 'U', 'E', 'N', 'C', 'E'}

// Element - a stored result
type Element struct {
	Name     string
	Sequence uint64
	Value    []byte
}

// Results - handle to the results database
type Results struct {
	sync.Mutex
	database *leveldb.DB
	sequence uint64
}

// Open - open or create the results database
//
// a read-only database must already exist
func Open(name string, readOnly bool) (*Results, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		if readOnly {
			db.Close()
			return nil, fault.ErrIncompatibleVersion
		}
		if err := putVersion(db, currentVersion); nil != err {
			db.Close()
			return nil, err
		}
	} else if nil != err {
		db.Close()
		return nil, err
	} else if 4 != len(versionValue) || currentVersion != binary.BigEndian.Uint32(versionValue) {
		db.Close()
		return nil, fault.ErrIncompatibleVersion
	}

	r := &Results{
		database: db,
	}

	sequenceValue, err := db.Get(sequenceKey, nil)
	if nil == err && 8 == len(sequenceValue) {
		r.sequence = binary.BigEndian.Uint64(sequenceValue)
	} else if nil != err && leveldb.ErrNotFound != err {
		db.Close()
		return nil, err
	}

	return r, nil
}

func putVersion(db *leveldb.DB, version uint32) error {
	v := make([]byte, 4)
	binary.BigEndian.PutUint32(v, version)
	return db.Put(versionKey, v, nil)
}

// Close - flush and release the database
func (r *Results) Close() error {
	r.Lock()
	defer r.Unlock()

	if nil == r.database {
		return fault.ErrDatabaseIsNotSet
	}
	err := r.database.Close()
	r.database = nil
	return err
}

// the prefix covering all results for one name
// empty name covers every result
func namePrefix(name string) []byte {
	prefix := make([]byte, 1, len(name)+2)
	prefix[0] = resultPrefix
	if "" == name {
		return prefix
	}
	prefix = append(prefix, name...)
	return append(prefix, nameTerminator)
}

// Put - append a result for a name, returns its sequence number
func (r *Results) Put(name string, value []byte) (uint64, error) {
	if "" == name || bytes.IndexByte([]byte(name), nameTerminator) >= 0 {
		return 0, fault.ErrInvalidName
	}

	r.Lock()
	defer r.Unlock()

	if nil == r.database {
		return 0, fault.ErrDatabaseIsNotSet
	}

	sequence := r.sequence
	s := make([]byte, 8)
	binary.BigEndian.PutUint64(s, sequence)

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, sequence+1)

	batch := new(leveldb.Batch)
	batch.Put(append(namePrefix(name), s...), value)
	batch.Put(sequenceKey, next)

	if err := r.database.Write(batch, nil); nil != err {
		return 0, err
	}
	r.sequence = sequence + 1
	return sequence, nil
}

// Fetch - return up to count results for a name in the order they
// were stored, empty name returns results for all names sorted by name
func (r *Results) Fetch(name string, count int) ([]Element, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	r.Lock()
	defer r.Unlock()

	if nil == r.database {
		return nil, fault.ErrDatabaseIsNotSet
	}

	iter := r.database.NewIterator(util.BytesPrefix(namePrefix(name)), nil)
	defer iter.Release()

	results := make([]Element, 0, count)
	for iter.Next() && len(results) < count {

		// contents of the returned slices are only valid until the
		// next call to Next
		key := iter.Key()
		value := iter.Value()

		n := bytes.IndexByte(key[1:], nameTerminator)
		if n < 0 || len(key) != 1+n+1+8 {
			continue
		}

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		results = append(results, Element{
			Name:     string(key[1 : 1+n]),
			Sequence: binary.BigEndian.Uint64(key[1+n+1:]),
			Value:    dataValue,
		})
	}

	return results, iter.Error()
}

// Delete - remove all results for a name, returns the number removed
func (r *Results) Delete(name string) (int, error) {
	r.Lock()
	defer r.Unlock()

	if nil == r.database {
		return 0, fault.ErrDatabaseIsNotSet
	}

	iter := r.database.NewIterator(util.BytesPrefix(namePrefix(name)), nil)
	batch := new(leveldb.Batch)
	for iter.Next() {
		batch.Delete(append([]byte{}, iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return 0, err
	}

	if err := r.database.Write(batch, nil); nil != err {
		return 0, err
	}
	return batch.Len(), nil
}
