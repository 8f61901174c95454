package types

import (
	"fmt"
)

// CodeType - ABCI code identifier within codespace
type CodeType uint32

// CodespaceType - codespace identifier
type CodespaceType uint32

// IsOK - is everything okay?
func (code CodeType) IsOK() bool {
	return code == CodeOK
}

// SDK error codes
const (
	// Base error codes
	CodeOK             CodeType = 0
	CodeInternal       CodeType = 1
	CodeUnknownRequest CodeType = 6
	CodeInvalidAddress CodeType = 7

	// CodespaceRoot is a codespace for error codes in this file only.
	// Notice that 0 is an "unset" codespace, which can be overridden with
	// Error.WithDefaultCodespace().
	CodespaceUndefined CodespaceType = 0
	CodespaceRoot      CodespaceType = 1
)

func unknownCodeMsg(code CodeType) string {
	return fmt.Sprintf("unknown code %d", code)
}

// NOTE: Don't stringer this, we'll put better messages in later.
func CodeToDefaultMsg(code CodeType) string {
	switch code {
	case CodeInternal:
		return "internal error"
	case CodeUnknownRequest:
		return "unknown request"
	case CodeInvalidAddress:
		return "invalid address"
	default:
		return unknownCodeMsg(code)
	}
}

//--------------------------------------------------------------------------------
// All errors are created via constructors so as to enable us to hijack them
// and inject stack traces if we really want to.

// nolint
func ErrInternal(msg string) Error {
	return newErrorWithRootCodespace(CodeInternal, msg)
}
func ErrUnknownRequest(msg string) Error {
	return newErrorWithRootCodespace(CodeUnknownRequest, msg)
}
func ErrInvalidAddress(msg string) Error {
	return newErrorWithRootCodespace(CodeInvalidAddress, msg)
}

//----------------------------------------
// Error & sdkError

// Error is the error returned by every state transition of this repository.
type Error interface {
	error

	Code() CodeType
	Codespace() CodespaceType
	Msg() string
	WithDefaultCodespace(codespace CodespaceType) Error

	Result() Result
}

// NewError - create an error.
func NewError(codespace CodespaceType, code CodeType, format string, args ...interface{}) Error {
	return newError(codespace, code, format, args...)
}

func newErrorWithRootCodespace(code CodeType, format string, args ...interface{}) *sdkError {
	return newError(CodespaceRoot, code, format, args...)
}

func newError(codespace CodespaceType, code CodeType, format string, args ...interface{}) *sdkError {
	if format == "" {
		format = CodeToDefaultMsg(code)
	}
	return &sdkError{
		codespace: codespace,
		code:      code,
		msg:       fmt.Sprintf(format, args...),
	}
}

type sdkError struct {
	codespace CodespaceType
	code      CodeType
	msg       string
}

// Implements Error.
func (err *sdkError) WithDefaultCodespace(cs CodespaceType) Error {
	codespace := err.codespace
	if codespace == CodespaceUndefined {
		codespace = cs
	}
	return &sdkError{
		codespace: codespace,
		code:      err.code,
		msg:       err.msg,
	}
}

// Implements Error.
func (err *sdkError) Code() CodeType           { return err.code }
func (err *sdkError) Codespace() CodespaceType { return err.codespace }
func (err *sdkError) Msg() string              { return err.msg }

// Implements error.
func (err *sdkError) Error() string {
	return fmt.Sprintf("ERROR:\nCodespace: %d\nCode: %d\nMessage: %#v\n", err.codespace, err.code, err.msg)
}

// Implements Error.
func (err *sdkError) Result() Result {
	return Result{
		Code:      err.Code(),
		Codespace: err.Codespace(),
		Log:       err.msg,
	}
}

// IsErrCode reports whether err is an Error carrying the given codespace and code.
func IsErrCode(err error, codespace CodespaceType, code CodeType) bool {
	sdkErr, ok := err.(Error)
	if !ok || sdkErr == nil {
		return false
	}
	return sdkErr.Codespace() == codespace && sdkErr.Code() == code
}
