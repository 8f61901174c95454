package types

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// OrderKeyLen is the size of the binary form of an OrderKey.
	OrderKeyLen = 16

	// MaxPrice is the largest price an OrderKey can carry.
	MaxPrice uint64 = 1<<63 - 1

	askBit uint64 = 1 << 63
)

// OrderKey totally orders resting orders: side bit (0 bid, 1 ask), then a 63 bit
// price, then a 64 bit sequence number. Every bid sorts before every ask and
// within a side ascending key order is ascending (price, sequence).
type OrderKey struct {
	Hi uint64 `json:"hi"`
	Lo uint64 `json:"lo"`
}

// EncodeOrderKey packs an order's side, price and sequence.
// CONTRACT: price <= MaxPrice, a larger price panics.
func EncodeOrderKey(isBid bool, price, sequence uint64) OrderKey {
	if price > MaxPrice {
		panic(fmt.Sprintf("order price %d exceeds %d", price, MaxPrice))
	}
	hi := price
	if !isBid {
		hi |= askBit
	}
	return OrderKey{Hi: hi, Lo: sequence}
}

// DecodeOrderKey is the inverse of EncodeOrderKey.
func DecodeOrderKey(key OrderKey) (isBid bool, price, sequence uint64) {
	return key.Hi&askBit == 0, key.Hi &^ askBit, key.Lo
}

func (key OrderKey) IsBid() bool      { return key.Hi&askBit == 0 }
func (key OrderKey) Price() uint64    { return key.Hi &^ askBit }
func (key OrderKey) Sequence() uint64 { return key.Lo }

// Compare returns -1, 0 or 1 comparing key and other as 128 bit unsigned integers.
func (key OrderKey) Compare(other OrderKey) int {
	switch {
	case key.Hi < other.Hi:
		return -1
	case key.Hi > other.Hi:
		return 1
	case key.Lo < other.Lo:
		return -1
	case key.Lo > other.Lo:
		return 1
	}
	return 0
}

func (key OrderKey) Less(other OrderKey) bool {
	return key.Compare(other) < 0
}

// Bytes is the big-endian form, its byte order equals the numeric order.
func (key OrderKey) Bytes() []byte {
	bz := make([]byte, OrderKeyLen)
	binary.BigEndian.PutUint64(bz[:8], key.Hi)
	binary.BigEndian.PutUint64(bz[8:], key.Lo)
	return bz
}

func OrderKeyFromBytes(bz []byte) (OrderKey, error) {
	if len(bz) != OrderKeyLen {
		return OrderKey{}, fmt.Errorf("order key should be %d bytes, got %d", OrderKeyLen, len(bz))
	}
	return OrderKey{
		Hi: binary.BigEndian.Uint64(bz[:8]),
		Lo: binary.BigEndian.Uint64(bz[8:]),
	}, nil
}

// String is the key as 32 hex digits.
func (key OrderKey) String() string {
	return hex.EncodeToString(key.Bytes())
}

// ParseOrderKey reads the String form, with or without a 0x prefix.
func ParseOrderKey(s string) (OrderKey, error) {
	bz, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return OrderKey{}, fmt.Errorf("invalid order key %q: %v", s, err)
	}
	return OrderKeyFromBytes(bz)
}

func (key OrderKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(key.String())
}

func (key *OrderKey) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	parsed, err := ParseOrderKey(s)
	if err != nil {
		return err
	}
	*key = parsed
	return nil
}
