// nolint
package types

import (
	sdk "github.com/clobchain/clobcore/types"
)

type CodeType = sdk.CodeType

const (
	DefaultCodespace sdk.CodespaceType = 10

	CodeInvalidTakerFee   CodeType = 101
	CodeInvalidMakerFee   CodeType = 102
	CodeDuplicateProposal CodeType = 103
	CodeProposalNotFound  CodeType = 104
	CodePoolNotFound      CodeType = 105
	CodePoolExists        CodeType = 106
	CodeInvalidParams     CodeType = 107
	CodeInvalidState      CodeType = 108
	CodeInsufficientVotes CodeType = 109
)

//----------------------------------------
// Error constructors

func ErrInvalidTakerFee(codespace sdk.CodespaceType, fee uint64, bounds FeeBounds) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidTakerFee,
		"taker fee %d out of range [%d, %d]", fee, bounds.MinTakerFee, bounds.MaxTakerFee)
}

func ErrInvalidMakerFee(codespace sdk.CodespaceType, fee, takerFee uint64, bounds FeeBounds) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidMakerFee,
		"maker fee %d out of range [%d, %d]", fee, bounds.MinMakerFee, bounds.MakerCeiling(takerFee))
}

func ErrDuplicateProposal(codespace sdk.CodespaceType, proposer sdk.AccountID) sdk.Error {
	return sdk.NewError(codespace, CodeDuplicateProposal, "proposer %s already has an active proposal", proposer)
}

func ErrProposalNotFound(codespace sdk.CodespaceType, proposer sdk.AccountID) sdk.Error {
	return sdk.NewError(codespace, CodeProposalNotFound, "no active proposal from %s", proposer)
}

func ErrPoolNotFound(codespace sdk.CodespaceType, pool sdk.PoolID) sdk.Error {
	return sdk.NewError(codespace, CodePoolNotFound, "pool %s has no fee governance", pool)
}

func ErrPoolExists(codespace sdk.CodespaceType, pool sdk.PoolID) sdk.Error {
	return sdk.NewError(codespace, CodePoolExists, "pool %s already has fee governance", pool)
}

func ErrInvalidParams(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidParams, "%s", msg)
}

func ErrInvalidState(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidState, "%s", msg)
}

func ErrInsufficientVotes(codespace sdk.CodespaceType, proposer sdk.AccountID, free, weight uint64) sdk.Error {
	return sdk.NewError(codespace, CodeInsufficientVotes,
		"proposal %s has %d unattributed votes, cannot move %d", proposer, free, weight)
}
