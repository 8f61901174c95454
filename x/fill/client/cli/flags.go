package cli

import (
	flag "github.com/spf13/pflag"
)

// nolint
const (
	FlagExpired    = "expired"
	FlagTakerIsBid = "taker-is-bid"
	FlagBase       = "base"
	FlagQuote      = "quote"
	FlagPrice      = "price"
	FlagOwner      = "owner"
	FlagTakerFee   = "taker-fee"
	FlagMakerFee   = "maker-fee"
)

func fillFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Bool(FlagExpired, false, "the maker order expired instead of trading")
	fs.Bool(FlagTakerIsBid, false, "the taker bought the base asset")
	fs.Uint64(FlagBase, 0, "base quantity of the fill")
	fs.Uint64(FlagQuote, 0, "quote quantity of the fill")
	fs.Uint64(FlagPrice, 0, "execution price")
	fs.String(FlagOwner, "", "hex account id of the maker")
	fs.Uint64(FlagTakerFee, 0, "taker fee rate, scaled by 1e9")
	fs.Uint64(FlagMakerFee, 0, "maker fee rate, scaled by 1e9")
	return fs
}
