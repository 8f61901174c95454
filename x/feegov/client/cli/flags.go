package cli

// nolint
const (
	FlagDBDir    = "db-dir"
	FlagLogLevel = "log-level"
)
