package cli

// nolint
const (
	FlagSide     = "side"
	FlagPrice    = "price"
	FlagSequence = "sequence"
)

const (
	sideBid = "bid"
	sideAsk = "ask"
)
