package types

import (
	"fmt"

	sdk "github.com/clobchain/clobcore/types"
)

// RestingOrder is an order waiting in the book. Its key carries side, price and
// arrival sequence.
type RestingOrder struct {
	Key           OrderKey      `json:"key"`
	Owner         sdk.AccountID `json:"owner"`
	ClientOrderID uint64        `json:"client_order_id"`
	Quantity      uint64        `json:"quantity"`
	Epoch         uint64        `json:"epoch"`
}

func NewRestingOrder(key OrderKey, owner sdk.AccountID, clientOrderID, quantity, epoch uint64) RestingOrder {
	return RestingOrder{
		Key:           key,
		Owner:         owner,
		ClientOrderID: clientOrderID,
		Quantity:      quantity,
		Epoch:         epoch,
	}
}

func (o RestingOrder) String() string {
	isBid, price, sequence := DecodeOrderKey(o.Key)
	side := "ask"
	if isBid {
		side = "bid"
	}
	return fmt.Sprintf("RestingOrder{%s %d@%d #%d owner %s}", side, o.Quantity, price, sequence, o.Owner)
}
