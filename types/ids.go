package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// AccountIDLen is the fixed width of an account identifier in bytes.
const AccountIDLen = 32

// AccountID identifies a stake holder, proposer or order owner.
// It is opaque to this module; the only structure relied on is its byte order.
type AccountID [AccountIDLen]byte

// AccountIDFromHex parses a hex string (with or without 0x prefix) into an AccountID.
func AccountIDFromHex(s string) (AccountID, error) {
	var id AccountID
	s = strings.TrimPrefix(s, "0x")
	bz, err := hex.DecodeString(s)
	if err != nil {
		return id, fmt.Errorf("invalid account id %q: %v", s, err)
	}
	if len(bz) != AccountIDLen {
		return id, fmt.Errorf("account id should be %d bytes, got %d", AccountIDLen, len(bz))
	}
	copy(id[:], bz)
	return id, nil
}

// MustAccountIDFromHex is AccountIDFromHex that panics on error. Intended for tests and constants.
func MustAccountIDFromHex(s string) AccountID {
	id, err := AccountIDFromHex(s)
	if err != nil {
		panic(err)
	}
	return id
}

// AccountIDFromBytes right-aligns bz into an AccountID. bz longer than AccountIDLen is an error.
func AccountIDFromBytes(bz []byte) (AccountID, error) {
	var id AccountID
	if len(bz) > AccountIDLen {
		return id, fmt.Errorf("account id should be at most %d bytes, got %d", AccountIDLen, len(bz))
	}
	copy(id[AccountIDLen-len(bz):], bz)
	return id, nil
}

func (id AccountID) Bytes() []byte { return id[:] }
func (id AccountID) Empty() bool   { return id == AccountID{} }

// Compare returns -1, 0 or 1 by lexicographic byte order.
func (id AccountID) Compare(other AccountID) int {
	return bytes.Compare(id[:], other[:])
}

func (id AccountID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalJSON encodes the id as a hex string.
func (id AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *AccountID) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := AccountIDFromHex(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// PoolID identifies a trading pool.
type PoolID uint64

func (p PoolID) String() string {
	return fmt.Sprintf("%d", uint64(p))
}
