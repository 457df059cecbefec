package model

import (
	"time"

	"github.com/muhammadheryan/stock-ledger/constant"
)

// StockChange is the immutable fact describing one committed quantity
// transition. It is published after commit as a best-effort notification for
// audit, snapshot and alert consumers; it never participates in the batch
// invariant itself.
type StockChange struct {
	ID         string                        `json:"id"`
	Type       constant.StockChangeType      `json:"type"`
	Direction  constant.StockChangeDirection `json:"direction"`
	BatchID    uint64                        `json:"batch_id"`
	SKU        string                        `json:"sku"`
	Quantity   int64                         `json:"quantity"`
	Operator   string                        `json:"operator"`
	OccurredAt time.Time                     `json:"occurred_at"`
	Metadata   map[string]string             `json:"metadata,omitempty"`
}
