// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	// ErrAuth means the credentials were rejected; the connection is unusable.
	ErrAuth
	// ErrConnection is a network or TLS failure; the connection is unusable.
	ErrConnection
	// ErrProtocol is an unexpected server response to a structural command
	// such as list or select; it fails the current folder.
	ErrProtocol
	// ErrMessageOperation is a failed copy/store/fetch for a single message;
	// it is logged, counted and skipped, never fatal.
	ErrMessageOperation
	ErrNoFoldersSelected
	ErrJobAlreadyActive
	// ErrUnsupportedOperation means the server lacks the Gmail extensions
	// required for permanent deletion.
	ErrUnsupportedOperation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrAuth:
		return "auth"
	case ErrConnection:
		return "connection"
	case ErrProtocol:
		return "protocol"
	case ErrMessageOperation:
		return "messageoperation"
	case ErrNoFoldersSelected:
		return "nofoldersselected"
	case ErrJobAlreadyActive:
		return "jobalreadyactive"
	case ErrUnsupportedOperation:
		return "unsupportedoperation"
	}
	return "unknown"
}

// Error pairs a human-readable message with a machine-checkable kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

func WrapError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or ErrUnknown.
func KindOf(err error) ErrorKind {
	var purgeErr *Error
	if errors.As(err, &purgeErr) {
		return purgeErr.Kind
	}
	return ErrUnknown
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
