// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrConfigurationIsEmpty = InvalidError("configuration returned no table")
	ErrDatabaseIsNotSet     = ProcessError("database is not set")
	ErrIncompatibleVersion  = InvalidError("incompatible database version")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidCompareBound  = InvalidError("compare bound must be a positive integer")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidDeleteCount   = InvalidError("delete count exceeds key count")
	ErrInvalidImbalance     = InvalidError("maximum imbalance must be at least 1")
	ErrInvalidKeyCount      = InvalidError("key count must not be negative")
	ErrInvalidKeyOrder      = InvalidError("key order is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidName          = InvalidError("invalid name")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyAlreadyExists     = ExistsError("key already exists")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundWorkloads    = NotFoundError("no workloads configured")
	ErrTreeIsEmpty          = EmptyError("tree is empty")
	ErrVerificationFailed   = ProcessError("tree verification failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool    { _, ok := e.(EmptyError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
