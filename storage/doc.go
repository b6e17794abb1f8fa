// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk history of workload results
//
// A single LevelDB database holds the results of every workload run
// in key->value form.
//
// Notes:
// 1. ++       = concatenation of byte data
// 2. sequence = successive index value as big endian uint64 (8 bytes)
// 3. name     = workload name as UTF-8 bytes, must not contain 0x00
//
// Results:
//
//   R ++ name ++ 0x00 ++ sequence  - one run of a workload
//                                    data: JSON encoded result
//
// Housekeeping:
//
//   0x00 ++ VERSION                - database version
//                                    data: big endian uint32
//   0x00 ++ SEQUENCE               - next sequence to use
//                                    data: sequence
package storage
