package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clobchain/clobcore/client"
	"github.com/clobchain/clobcore/codec"
	"github.com/clobchain/clobcore/x/orderbook/types"
)

// OrderKeyView is an OrderKey together with its decoded fields.
type OrderKeyView struct {
	Key      types.OrderKey `json:"key"`
	Side     string         `json:"side"`
	Price    uint64         `json:"price"`
	Sequence uint64         `json:"sequence"`
}

func NewOrderKeyView(key types.OrderKey) OrderKeyView {
	side := sideAsk
	if key.IsBid() {
		side = sideBid
	}
	return OrderKeyView{
		Key:      key,
		Side:     side,
		Price:    key.Price(),
		Sequence: key.Sequence(),
	}
}

// EncodeOrderKey checks the inputs the key encoding would panic on.
func EncodeOrderKey(side string, price, sequence uint64) (types.OrderKey, error) {
	var isBid bool
	switch side {
	case sideBid:
		isBid = true
	case sideAsk:
	default:
		return types.OrderKey{}, fmt.Errorf("side should be %s or %s, got %q", sideBid, sideAsk, side)
	}
	if price > types.MaxPrice {
		return types.OrderKey{}, fmt.Errorf("price %d exceeds %d", price, types.MaxPrice)
	}
	return types.EncodeOrderKey(isBid, price, sequence), nil
}

func GetCmdOrderKey(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orderkey",
		Short: "Encode and decode order book keys",
	}
	cmd.AddCommand(getCmdEncode(cdc), getCmdDecode(cdc))
	return cmd
}

func getCmdEncode(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build the key of a resting order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := EncodeOrderKey(viper.GetString(FlagSide), viper.GetUint64(FlagPrice), viper.GetUint64(FlagSequence))
			if err != nil {
				return err
			}
			return client.PrintOutput(cmd.OutOrStdout(), cdc, NewOrderKeyView(key))
		},
	}
	cmd.Flags().String(FlagSide, sideBid, "order side, bid or ask")
	cmd.Flags().Uint64(FlagPrice, 0, "limit price")
	cmd.Flags().Uint64(FlagSequence, 0, "placement sequence number")
	return cmd
}

func getCmdDecode(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [key]",
		Short: "Show the side, price and sequence of a hex order key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := types.ParseOrderKey(args[0])
			if err != nil {
				return err
			}
			return client.PrintOutput(cmd.OutOrStdout(), cdc, NewOrderKeyView(key))
		},
	}
}
