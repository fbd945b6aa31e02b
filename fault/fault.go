// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceFactor        = InvalidError("balance factor out of range")
	ErrConcurrentMutation   = ProcessError("tree was modified during iteration")
	ErrHeightExceedsBound   = ProcessError("tree height exceeds balanced bound")
	ErrHeightMismatch       = InvalidError("node height is inconsistent")
	ErrInvalidCount         = InvalidError("count must be positive")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidPercentage    = InvalidError("percentage must be in range 0..100")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyOrder             = InvalidError("keys are out of order")
	ErrMembershipMismatch   = ProcessError("tree membership differs from reference")
	ErrMissingArguments     = InvalidError("missing arguments")
	ErrNodeCount            = InvalidError("node count does not match tree")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrSizeMismatch         = ProcessError("tree size differs from reference")
	ErrTraversalOrder       = ProcessError("traversal is not in ascending order")
	ErrUnknownAction        = InvalidError("unknown action")
	ErrUnknownKeyType       = InvalidError("unknown key type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
