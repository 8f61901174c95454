package types

import (
	"fmt"

	sdk "github.com/clobchain/clobcore/types"
	obtypes "github.com/clobchain/clobcore/x/orderbook/types"
)

// PriceSnapshot is the maker's conversion price recorded at placement. It is
// carried for audit only.
type PriceSnapshot struct {
	AssetIsBase bool   `json:"asset_is_base"`
	PerAsset    uint64 `json:"per_asset"`
}

// Fill is the settlement record of one match against a maker order. Everything
// but the two fees is fixed at construction; each fee is set once afterwards.
type Fill struct {
	makerOrderKey      obtypes.OrderKey
	makerClientOrderID uint64
	executionPrice     uint64
	owner              sdk.AccountID
	expired            bool
	completed          bool
	baseQuantity       uint64
	quoteQuantity      uint64
	takerIsBid         bool
	makerEpoch         uint64
	makerPriceSnapshot PriceSnapshot

	takerFee    uint64
	makerFee    uint64
	takerFeeSet bool
	makerFeeSet bool
}

func NewFill(makerOrderKey obtypes.OrderKey, makerClientOrderID, executionPrice uint64, owner sdk.AccountID,
	expired, completed bool, baseQuantity, quoteQuantity uint64, takerIsBid bool,
	makerEpoch uint64, makerPriceSnapshot PriceSnapshot) *Fill {
	return &Fill{
		makerOrderKey:      makerOrderKey,
		makerClientOrderID: makerClientOrderID,
		executionPrice:     executionPrice,
		owner:              owner,
		expired:            expired,
		completed:          completed,
		baseQuantity:       baseQuantity,
		quoteQuantity:      quoteQuantity,
		takerIsBid:         takerIsBid,
		makerEpoch:         makerEpoch,
		makerPriceSnapshot: makerPriceSnapshot,
	}
}

// SettlementSplit returns what goes back to the maker. An expired order gets
// back the side it posted: base for an ask (taker bid), quote for a bid. A
// filled order is paid the other side.
func (f *Fill) SettlementSplit() (baseToReturn, quoteToReturn uint64) {
	if f.expired == f.takerIsBid {
		return f.baseQuantity, 0
	}
	return 0, f.quoteQuantity
}

// SetTakerFee records the taker fee. It can be set once.
func (f *Fill) SetTakerFee(fee uint64) sdk.Error {
	if f.takerFeeSet {
		return ErrFeeAlreadySet(DefaultCodespace, "taker")
	}
	f.takerFee = fee
	f.takerFeeSet = true
	return nil
}

// SetMakerFee records the maker fee. It can be set once.
func (f *Fill) SetMakerFee(fee uint64) sdk.Error {
	if f.makerFeeSet {
		return ErrFeeAlreadySet(DefaultCodespace, "maker")
	}
	f.makerFee = fee
	f.makerFeeSet = true
	return nil
}

//nolint
func (f *Fill) MakerOrderKey() obtypes.OrderKey   { return f.makerOrderKey }
func (f *Fill) MakerClientOrderID() uint64        { return f.makerClientOrderID }
func (f *Fill) ExecutionPrice() uint64            { return f.executionPrice }
func (f *Fill) Owner() sdk.AccountID              { return f.owner }
func (f *Fill) Expired() bool                     { return f.expired }
func (f *Fill) Completed() bool                   { return f.completed }
func (f *Fill) BaseQuantity() uint64              { return f.baseQuantity }
func (f *Fill) QuoteQuantity() uint64             { return f.quoteQuantity }
func (f *Fill) TakerIsBid() bool                  { return f.takerIsBid }
func (f *Fill) MakerEpoch() uint64                { return f.makerEpoch }
func (f *Fill) MakerPriceSnapshot() PriceSnapshot { return f.makerPriceSnapshot }
func (f *Fill) TakerFee() uint64                  { return f.takerFee }
func (f *Fill) MakerFee() uint64                  { return f.makerFee }
func (f *Fill) FeesApplied() bool                 { return f.takerFeeSet && f.makerFeeSet }

// Validate rejects fills that cannot be settled.
func (f *Fill) Validate() sdk.Error {
	if f.owner.Empty() {
		return ErrInvalidFill(DefaultCodespace, "fill has no owner")
	}
	if f.baseQuantity == 0 && f.quoteQuantity == 0 {
		return ErrInvalidFill(DefaultCodespace, "fill moves nothing")
	}
	if !f.FeesApplied() {
		return ErrInvalidFill(DefaultCodespace, "fill fees are not applied")
	}
	return nil
}

// FillRecord is the serializable view of a Fill.
type FillRecord struct {
	MakerOrderKey      obtypes.OrderKey `json:"maker_order_key"`
	MakerClientOrderID uint64           `json:"maker_client_order_id"`
	ExecutionPrice     uint64           `json:"execution_price"`
	Owner              sdk.AccountID    `json:"owner"`
	Expired            bool             `json:"expired"`
	Completed          bool             `json:"completed"`
	BaseQuantity       uint64           `json:"base_quantity"`
	QuoteQuantity      uint64           `json:"quote_quantity"`
	TakerIsBid         bool             `json:"taker_is_bid"`
	MakerEpoch         uint64           `json:"maker_epoch"`
	MakerPriceSnapshot PriceSnapshot    `json:"maker_price_snapshot"`
	TakerFee           uint64           `json:"taker_fee"`
	MakerFee           uint64           `json:"maker_fee"`
	BaseToReturn       uint64           `json:"base_to_return"`
	QuoteToReturn      uint64           `json:"quote_to_return"`
}

func (f *Fill) Record() FillRecord {
	base, quote := f.SettlementSplit()
	return FillRecord{
		MakerOrderKey:      f.makerOrderKey,
		MakerClientOrderID: f.makerClientOrderID,
		ExecutionPrice:     f.executionPrice,
		Owner:              f.owner,
		Expired:            f.expired,
		Completed:          f.completed,
		BaseQuantity:       f.baseQuantity,
		QuoteQuantity:      f.quoteQuantity,
		TakerIsBid:         f.takerIsBid,
		MakerEpoch:         f.makerEpoch,
		MakerPriceSnapshot: f.makerPriceSnapshot,
		TakerFee:           f.takerFee,
		MakerFee:           f.makerFee,
		BaseToReturn:       base,
		QuoteToReturn:      quote,
	}
}

func (f *Fill) String() string {
	base, quote := f.SettlementSplit()
	return fmt.Sprintf("Fill{maker %s owner %s base %d quote %d expired %t taker_is_bid %t return (%d, %d) fees (%d, %d)}",
		f.makerOrderKey, f.owner, f.baseQuantity, f.quoteQuantity, f.expired, f.takerIsBid, base, quote, f.takerFee, f.makerFee)
}
