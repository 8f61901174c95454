package types

// Msg is a transaction message routed to a module handler.
type Msg interface {
	// Return the message type.
	// Must be alphanumeric or empty.
	Route() string

	// Returns a human-readable string for the message, intended for utilization
	// within tags
	Type() string

	// ValidateBasic does a simple validation check that
	// doesn't require access to any other information.
	ValidateBasic() Error

	// Get the canonical byte representation of the Msg.
	GetSignBytes() []byte
}

// Handler defines the core of the state transition function of an application.
type Handler func(ctx Context, msg Msg) Result
