package model

import (
	"time"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/shopspring/decimal"
)

type ReceiveBatchRequest struct {
	SKU            string                `json:"sku" validate:"required"`
	BatchNumber    string                `json:"batch_number" validate:"required"`
	Quantity       int64                 `json:"quantity" validate:"required,gt=0"`
	Grade          constant.QualityGrade `json:"grade" validate:"required,oneof=S A B C"`
	UnitCost       decimal.Decimal       `json:"unit_cost"`
	Location       string                `json:"location" validate:"required"`
	ProductionDate time.Time             `json:"production_date" validate:"required"`
	ExpiryDate     *time.Time            `json:"expiry_date,omitempty"`
}

type AdjustBatchRequest struct {
	Delta  int64  `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"required"`
}

type DeductStockRequest struct {
	SKU      string                      `json:"sku" validate:"required"`
	Quantity int64                       `json:"quantity" validate:"required,gt=0"`
	Strategy constant.AllocationStrategy `json:"strategy,omitempty"`
	Filter   *BatchFilter                `json:"filter,omitempty"`
}

// SKUAvailability is the availability summary served from the redis cache
// when fresh and recomputed from the batch store otherwise.
type SKUAvailability struct {
	SKU        string `db:"sku" json:"sku"`
	Available  int64  `db:"available" json:"available"`
	Reserved   int64  `db:"reserved" json:"reserved"`
	Locked     int64  `db:"locked" json:"locked"`
	BatchCount int64  `db:"batch_count" json:"batch_count"`
}
