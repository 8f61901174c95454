// nolint
package types

import (
	sdk "github.com/clobchain/clobcore/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 12

	CodeDuplicateOrderKey sdk.CodeType = 301
	CodeOrderNotFound     sdk.CodeType = 302
	CodeInvalidPrice      sdk.CodeType = 303
)

func ErrDuplicateOrderKey(codespace sdk.CodespaceType, key OrderKey) sdk.Error {
	return sdk.NewError(codespace, CodeDuplicateOrderKey, "order %s already rests in the book", key)
}

func ErrOrderNotFound(codespace sdk.CodespaceType, key OrderKey) sdk.Error {
	return sdk.NewError(codespace, CodeOrderNotFound, "order %s not found", key)
}

func ErrInvalidPrice(codespace sdk.CodespaceType, price uint64) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidPrice, "price %d should be in range [1, %d]", price, MaxPrice)
}
