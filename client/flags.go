package client

// nolint
const (
	FlagIndent = "indent"
	FlagForce  = "force"
	FlagDBDir  = "db-dir"
)
