package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clobchain/clobcore/client"
	"github.com/clobchain/clobcore/codec"
	sdk "github.com/clobchain/clobcore/types"
	fgtypes "github.com/clobchain/clobcore/x/feegov/types"
	"github.com/clobchain/clobcore/x/fill/types"
	obtypes "github.com/clobchain/clobcore/x/orderbook/types"
)

func GetCmdFill(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill settlement helpers",
	}
	cmd.AddCommand(GetCmdSplit(cdc))
	return cmd
}

// GetCmdSplit prints the settlement record of a fill built from flags, fees
// applied at the given rates.
func GetCmdSplit(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Show what a maker gets back from a fill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var owner sdk.AccountID
			if s := viper.GetString(FlagOwner); s != "" {
				var err error
				owner, err = sdk.AccountIDFromHex(s)
				if err != nil {
					return err
				}
			}
			takerIsBid := viper.GetBool(FlagTakerIsBid)
			price := viper.GetUint64(FlagPrice)
			// the maker sits on the other side of the taker
			makerKey := obtypes.EncodeOrderKey(!takerIsBid, sdk.MinUint64(price, obtypes.MaxPrice), 0)

			fill := types.NewFill(makerKey, 0, price, owner,
				viper.GetBool(FlagExpired), true,
				viper.GetUint64(FlagBase), viper.GetUint64(FlagQuote),
				takerIsBid, 0, types.PriceSnapshot{})
			tp := fgtypes.TradeParams{
				TakerFee: viper.GetUint64(FlagTakerFee),
				MakerFee: viper.GetUint64(FlagMakerFee),
			}
			if err := types.ApplyFees(fill, tp); err != nil {
				return err
			}
			return client.PrintOutput(cmd.OutOrStdout(), cdc, fill.Record())
		},
	}
	cmd.Flags().AddFlagSet(fillFlagSet())
	return cmd
}
