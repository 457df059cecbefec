package model

import (
	"math"
	"time"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/shopspring/decimal"
)

// Batch is a dated, cost-bearing unit of stock for one SKU and the single
// source of truth for its quantities. Quantity is the total ever received;
// Available, Reserved and Locked decompose what is still on hand, so
// Available+Reserved+Locked <= Quantity and the difference is what has been
// consumed. All mutation goes through the methods below.
type Batch struct {
	ID             uint64                `db:"id" json:"id"`
	SKU            string                `db:"sku" json:"sku"`
	BatchNumber    string                `db:"batch_number" json:"batch_number"`
	Status         constant.BatchStatus  `db:"status" json:"status"`
	Grade          constant.QualityGrade `db:"grade" json:"grade"`
	Quantity       int64                 `db:"quantity" json:"quantity"`
	Available      int64                 `db:"available" json:"available"`
	Reserved       int64                 `db:"reserved" json:"reserved"`
	Locked         int64                 `db:"locked" json:"locked"`
	UnitCost       decimal.Decimal       `db:"unit_cost" json:"unit_cost"`
	Location       string                `db:"location" json:"location"`
	ProductionDate time.Time             `db:"production_date" json:"production_date"`
	ExpiryDate     *time.Time            `db:"expiry_date" json:"expiry_date,omitempty"`
	CreatedAt      time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time             `db:"updated_at" json:"updated_at"`
}

// OnHand is the quantity still physically present (not yet consumed).
func (b *Batch) OnHand() int64 {
	return b.Available + b.Reserved + b.Locked
}

// Consumed is the cumulative quantity drawn out of this batch.
func (b *Batch) Consumed() int64 {
	return b.Quantity - b.OnHand()
}

// IsExpired reports whether the batch expiry date has passed.
func (b *Batch) IsExpired(now time.Time) bool {
	return b.ExpiryDate != nil && b.ExpiryDate.Before(now)
}

// TotalValue is the on-hand quantity priced at the batch unit cost.
func (b *Batch) TotalValue() decimal.Decimal {
	return decimal.NewFromInt(b.OnHand()).Mul(b.UnitCost)
}

func (b *Batch) checkQty(qty int64) error {
	if qty <= 0 {
		return errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	if qty > math.MaxInt64-b.Quantity {
		return errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	return nil
}

// Receive adds inbound quantity: quantity += qty, available += qty.
// Also used for returns and the positive leg of adjustments.
func (b *Batch) Receive(qty int64) error {
	if err := b.checkQty(qty); err != nil {
		return err
	}
	if b.Status != constant.BatchStatusPending && b.Status != constant.BatchStatusAvailable {
		return errors.SetCustomError(constant.ErrInvalidStatus)
	}
	b.Quantity += qty
	b.Available += qty
	return nil
}

// ReserveQty moves qty from available to reserved.
func (b *Batch) ReserveQty(qty int64) error {
	if err := b.checkQty(qty); err != nil {
		return err
	}
	if !b.Status.Allocatable() {
		return errors.SetCustomError(constant.ErrInvalidStatus)
	}
	if b.Available < qty {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	b.Available -= qty
	b.Reserved += qty
	return nil
}

// UnreserveQty moves qty back from reserved to available.
func (b *Batch) UnreserveQty(qty int64) error {
	if err := b.checkQty(qty); err != nil {
		return err
	}
	if b.Reserved < qty {
		return errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	b.Reserved -= qty
	b.Available += qty
	return nil
}

// LockQty moves qty from available to locked.
func (b *Batch) LockQty(qty int64) error {
	if err := b.checkQty(qty); err != nil {
		return err
	}
	if !b.Status.Allocatable() {
		return errors.SetCustomError(constant.ErrInvalidStatus)
	}
	if b.Available < qty {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	b.Available -= qty
	b.Locked += qty
	return nil
}

// UnlockQty moves qty back from locked to available.
func (b *Batch) UnlockQty(qty int64) error {
	if err := b.checkQty(qty); err != nil {
		return err
	}
	if b.Locked < qty {
		return errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	b.Locked -= qty
	b.Available += qty
	return nil
}

// ConsumeQty draws qty out of the given bucket. Quantity is untouched; the
// draw is visible as a smaller on-hand total. A fully drained batch moves to
// the consumed status.
func (b *Batch) ConsumeQty(qty int64, from constant.ConsumeFrom) error {
	if err := b.checkQty(qty); err != nil {
		return err
	}
	if !from.Valid() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	var bucket *int64
	switch from {
	case constant.ConsumeFromAvailable:
		if !b.Status.Allocatable() {
			return errors.SetCustomError(constant.ErrInvalidStatus)
		}
		bucket = &b.Available
	case constant.ConsumeFromReserved:
		bucket = &b.Reserved
	case constant.ConsumeFromLocked:
		bucket = &b.Locked
	}
	if *bucket < qty {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	*bucket -= qty
	if b.OnHand() == 0 && b.Status == constant.BatchStatusAvailable {
		b.Status = constant.BatchStatusConsumed
	}
	return nil
}

// Adjust applies a signed correction to available stock. A positive delta
// also grows quantity, mirroring an inbound; a negative delta reduces
// available only, so the shortfall counts as a deduction. Delta may not
// drive available below zero.
func (b *Batch) Adjust(delta int64) error {
	if delta == 0 {
		return errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	if delta > 0 {
		return b.Receive(delta)
	}
	if b.Available+delta < 0 {
		return errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	b.Available += delta
	return nil
}
