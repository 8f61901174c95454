package types

import (
	"github.com/clobchain/clobcore/codec"
	sdk "github.com/clobchain/clobcore/types"
)

// Register concrete types on codec codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterConcrete(MsgSubmitProposal{}, "feegov/MsgSubmitProposal", nil)
	cdc.RegisterConcrete(MsgVote{}, "feegov/MsgVote", nil)
	cdc.RegisterConcrete(MsgAdjustStake{}, "feegov/MsgAdjustStake", nil)
}

// generic sealed codec to be used throughout sdk
var MsgCdc *codec.Codec

func init() {
	cdc := codec.New()
	sdk.RegisterCodec(cdc)
	RegisterCodec(cdc)
	MsgCdc = cdc.Seal()
}
