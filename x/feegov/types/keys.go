package types

const (
	// ModuleName is the name of the fee governance module
	ModuleName = "feegov"

	// StoreKey is the default store key for fee governance
	StoreKey = ModuleName
)
