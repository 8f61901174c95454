package cli

import (
	"github.com/spf13/cobra"

	"github.com/clobchain/clobcore/client"
	"github.com/clobchain/clobcore/codec"
)

func GetCmdFeeGov(cdc *codec.Codec) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feegov",
		Short: "Fee governance commands",
	}
	cmd.AddCommand(
		GetCmdReplay(cdc),
		GetCmdQueryParams(cdc),
	)
	return cmd
}

func GetCmdQueryParams(cdc *codec.Codec) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the fee governance params new pools start with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := client.LoadParams()
			if err != nil {
				return err
			}
			return client.PrintOutput(cmd.OutOrStdout(), cdc, params)
		},
	}
}
