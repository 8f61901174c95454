package main

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/cli"

	"github.com/clobchain/clobcore/client"
	"github.com/clobchain/clobcore/codec"
	sdk "github.com/clobchain/clobcore/types"
	feegovcli "github.com/clobchain/clobcore/x/feegov/client/cli"
	fgtypes "github.com/clobchain/clobcore/x/feegov/types"
	fillcli "github.com/clobchain/clobcore/x/fill/client/cli"
	orderbookcli "github.com/clobchain/clobcore/x/orderbook/client/cli"
)

const envPrefix = "CLOB"

// MakeCodec registers every message the tool can decode.
func MakeCodec() *codec.Codec {
	cdc := codec.New()
	sdk.RegisterCodec(cdc)
	fgtypes.RegisterCodec(cdc)
	return cdc
}

func NewRootCmd(cdc *codec.Codec) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clobcli",
		Short: "Operator tool for fee governance, fills and order keys",
	}
	rootCmd.PersistentFlags().Bool(client.FlagIndent, false, "indent JSON output")
	rootCmd.AddCommand(
		client.ConfigCmd(cdc),
		orderbookcli.GetCmdOrderKey(cdc),
		fillcli.GetCmdFill(cdc),
		feegovcli.GetCmdFeeGov(cdc),
	)
	return rootCmd
}

func defaultHome() string {
	home, err := homedir.Dir()
	if err != nil {
		return ".clobcli"
	}
	return home + string(os.PathSeparator) + ".clobcli"
}

func main() {
	cdc := MakeCodec()
	executor := cli.PrepareMainCmd(NewRootCmd(cdc), envPrefix, defaultHome())
	executor.Execute() // nolint: errcheck
}
