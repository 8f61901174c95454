package types

import (
	"fmt"

	sdk "github.com/clobchain/clobcore/types"
)

// Fee rates are scaled by sdk.FloatScaling, 1000000 == 0.1%.
const (
	defaultVolatileMinTakerFee uint64 = 500000
	defaultVolatileMaxTakerFee uint64 = 1000000
	defaultVolatileMinMakerFee uint64 = 200000
	defaultVolatileMaxMakerFee uint64 = 500000

	defaultStableMinTakerFee uint64 = 50000
	defaultStableMaxTakerFee uint64 = 100000
	defaultStableMinMakerFee uint64 = 20000
	defaultStableMaxMakerFee uint64 = 50000

	defaultTakerFee      uint64 = 1000000
	defaultMakerFee      uint64 = 500000
	defaultStakeRequired uint64 = 100000000000
)

// FeeBounds is the admissible fee range of one regime. A maker fee is further
// capped by the taker fee it is proposed with.
type FeeBounds struct {
	MinTakerFee uint64 `json:"min_taker_fee"`
	MaxTakerFee uint64 `json:"max_taker_fee"`
	MinMakerFee uint64 `json:"min_maker_fee"`
	MaxMakerFee uint64 `json:"max_maker_fee"`
}

func (b FeeBounds) MakerCeiling(takerFee uint64) uint64 {
	return sdk.MinUint64(b.MaxMakerFee, takerFee)
}

// Check validates a (taker, maker) pair, taker first.
func (b FeeBounds) Check(codespace sdk.CodespaceType, takerFee, makerFee uint64) sdk.Error {
	if takerFee < b.MinTakerFee || takerFee > b.MaxTakerFee {
		return ErrInvalidTakerFee(codespace, takerFee, b)
	}
	if makerFee < b.MinMakerFee || makerFee > b.MakerCeiling(takerFee) {
		return ErrInvalidMakerFee(codespace, makerFee, takerFee, b)
	}
	return nil
}

func (b FeeBounds) validate(name string) error {
	if b.MinTakerFee > b.MaxTakerFee {
		return fmt.Errorf("%s: min_taker_fee should be no greater than max_taker_fee", name)
	}
	if b.MinMakerFee > b.MaxMakerFee {
		return fmt.Errorf("%s: min_maker_fee should be no greater than max_maker_fee", name)
	}
	if b.MaxTakerFee > sdk.FloatScaling {
		return fmt.Errorf("%s: max_taker_fee should be no greater than %d", name, sdk.FloatScaling)
	}
	if b.MinMakerFee > b.MaxTakerFee {
		return fmt.Errorf("%s: min_maker_fee should be no greater than max_taker_fee", name)
	}
	return nil
}

// Params are the protocol parameters of fee governance. They are captured by a
// pool's governance record when the pool is initialized.
type Params struct {
	VolatileFees       FeeBounds        `json:"volatile_fees"`
	StableFees         FeeBounds        `json:"stable_fees"`
	Curve              VotingPowerCurve `json:"voting_power_curve"`
	DefaultTradeParams TradeParams      `json:"default_trade_params"`
}

func DefaultParams() Params {
	return Params{
		VolatileFees: FeeBounds{
			MinTakerFee: defaultVolatileMinTakerFee,
			MaxTakerFee: defaultVolatileMaxTakerFee,
			MinMakerFee: defaultVolatileMinMakerFee,
			MaxMakerFee: defaultVolatileMaxMakerFee,
		},
		StableFees: FeeBounds{
			MinTakerFee: defaultStableMinTakerFee,
			MaxTakerFee: defaultStableMaxTakerFee,
			MinMakerFee: defaultStableMinMakerFee,
			MaxMakerFee: defaultStableMaxMakerFee,
		},
		Curve: DefaultVotingPowerCurve(),
		DefaultTradeParams: TradeParams{
			TakerFee:      defaultTakerFee,
			MakerFee:      defaultMakerFee,
			StakeRequired: defaultStakeRequired,
		},
	}
}

// Bounds returns the regime in force for a stable or volatile pool.
func (p Params) Bounds(stable bool) FeeBounds {
	if stable {
		return p.StableFees
	}
	return p.VolatileFees
}

func (p *Params) UpdateCheck() error {
	if err := p.VolatileFees.validate("volatile_fees"); err != nil {
		return err
	}
	if err := p.StableFees.validate("stable_fees"); err != nil {
		return err
	}
	if err := p.Curve.Validate(); err != nil {
		return err
	}
	tp := p.DefaultTradeParams
	if err := p.VolatileFees.Check(DefaultCodespace, tp.TakerFee, tp.MakerFee); err != nil {
		return fmt.Errorf("default_trade_params: %s", err.Msg())
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf(`Params:
  Volatile Fees:        %+v
  Stable Fees:          %+v
  Voting Power Curve:   %s
  Default Trade Params: %s`, p.VolatileFees, p.StableFees, p.Curve, p.DefaultTradeParams)
}
