package types

const (
	ModuleName = "orderbook"
	StoreKey   = ModuleName
)
