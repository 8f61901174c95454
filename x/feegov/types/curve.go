package types

import (
	"fmt"

	sdk "github.com/clobchain/clobcore/types"
)

const (
	// DefaultStakeThreshold is the stake up to which every unit counts fully.
	DefaultStakeThreshold uint64 = 100000000000
)

// VotingPowerCurve maps a stake to its contribution to the pool's voting power:
// full weight up to Threshold, ExcessWeight for every unit above it.
type VotingPowerCurve struct {
	Threshold    uint64  `json:"threshold"`
	ExcessWeight sdk.Dec `json:"excess_weight"`
}

func DefaultVotingPowerCurve() VotingPowerCurve {
	return VotingPowerCurve{
		Threshold:    DefaultStakeThreshold,
		ExcessWeight: sdk.NewDecWithPrec(5, 1),
	}
}

// Contribution never exceeds stake while ExcessWeight <= 1, so it cannot overflow.
func (c VotingPowerCurve) Contribution(stake uint64) uint64 {
	if stake <= c.Threshold {
		return stake
	}
	return c.Threshold + c.ExcessWeight.MulTruncateUint64(stake-c.Threshold)
}

// ExcessWeight outside [0, 1] would break monotonicity or let contribution exceed stake.
func (c VotingPowerCurve) Validate() error {
	if !c.ExcessWeight.GTE(sdk.ZeroDec()) {
		return fmt.Errorf("excess_weight should be no less than 0")
	}
	if !c.ExcessWeight.LTE(sdk.OneDec()) {
		return fmt.Errorf("excess_weight should be no greater than 1")
	}
	return nil
}

func (c VotingPowerCurve) String() string {
	return fmt.Sprintf("VotingPowerCurve{Threshold: %d, ExcessWeight: %s}", c.Threshold, c.ExcessWeight)
}
