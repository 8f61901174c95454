package types

import (
	sdk "github.com/clobchain/clobcore/types"
	fgtypes "github.com/clobchain/clobcore/x/feegov/types"
)

// ApplyFees stamps both fees on fill from the pool's active trade params: each fee
// is quote_quantity * rate / FloatScaling, truncated. An expired fill traded
// nothing and pays no fee.
func ApplyFees(fill *Fill, params fgtypes.TradeParams) sdk.Error {
	if fill.takerFeeSet {
		return ErrFeeAlreadySet(DefaultCodespace, "taker")
	}
	if fill.makerFeeSet {
		return ErrFeeAlreadySet(DefaultCodespace, "maker")
	}

	var takerFee, makerFee uint64
	if !fill.expired {
		takerFee = sdk.MulDivUint64(fill.quoteQuantity, params.TakerFee, sdk.FloatScaling)
		makerFee = sdk.MulDivUint64(fill.quoteQuantity, params.MakerFee, sdk.FloatScaling)
	}
	if err := fill.SetTakerFee(takerFee); err != nil {
		return err
	}
	return fill.SetMakerFee(makerFee)
}
