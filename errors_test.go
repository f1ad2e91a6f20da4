// SPDX-License-Identifier: GPL-3.0-or-later

package ioredis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "argument", ErrKindArgument.String())
	assert.Equal(t, "driver", ErrKindDriver.String())
	assert.Equal(t, "transaction_aborted", ErrKindTransactionAborted.String())
	assert.Equal(t, "closed", ErrKindClosed.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}

func TestErrorMessageIncludesWrappedCause(t *testing.T) {
	cause := errors.New("dial refused")
	err := &Error{Kind: ErrKindDriver, Msg: "connect", Err: cause}
	assert.Contains(t, err.Error(), "dial refused")
	assert.Contains(t, err.Error(), "connect")
	assert.True(t, errors.Is(err, cause))
}

func TestErrorMessageWithoutCauseOmitsColonValue(t *testing.T) {
	err := newArgumentError("bad key %q", "foo")
	assert.Equal(t, `ioredis: argument: bad key "foo"`, err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewClosedErrorNamesTheOperation(t *testing.T) {
	err := newClosedError("Get")
	assert.Equal(t, ErrKindClosed, err.Kind)
	assert.Contains(t, err.Error(), "Get called after disconnect")
}

func TestWrongNumberOfArgsNamesCommand(t *testing.T) {
	err := wrongNumberOfArgs("SET")
	assert.Equal(t, ErrKindArgument, err.Kind)
	assert.Contains(t, err.Error(), "'SET'")
}

func TestInvalidKeyErrorIsArgumentKind(t *testing.T) {
	err := invalidKeyError()
	assert.Equal(t, ErrKindArgument, err.Kind)
	assert.Contains(t, err.Error(), "invalid key")
}
