// nolint
package types

import (
	sdk "github.com/clobchain/clobcore/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 11

	CodeFeeAlreadySet sdk.CodeType = 201
	CodeInvalidFill   sdk.CodeType = 202
)

func ErrFeeAlreadySet(codespace sdk.CodespaceType, which string) sdk.Error {
	return sdk.NewError(codespace, CodeFeeAlreadySet, "%s fee of the fill is already set", which)
}

func ErrInvalidFill(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidFill, "%s", msg)
}
