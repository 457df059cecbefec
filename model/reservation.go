package model

import (
	"time"

	"github.com/muhammadheryan/stock-ledger/constant"
)

// Reservation is a temporary, time-bounded hold against one SKU. It is a
// claim on the reserved bucket of the batches recorded in Batches, never the
// authoritative quantity itself.
type Reservation struct {
	ID            uint64                     `db:"id" json:"id"`
	SKU           string                     `db:"sku" json:"sku"`
	Quantity      int64                      `db:"quantity" json:"quantity"`
	Type          constant.ReservationType   `db:"type" json:"type"`
	BusinessID    string                     `db:"business_id" json:"business_id"`
	Status        constant.ReservationStatus `db:"status" json:"status"`
	Operator      string                     `db:"operator" json:"operator"`
	ExpiresAt     time.Time                  `db:"expires_at" json:"expires_at"`
	ConfirmedAt   *time.Time                 `db:"confirmed_at" json:"confirmed_at,omitempty"`
	ReleasedAt    *time.Time                 `db:"released_at" json:"released_at,omitempty"`
	ReleaseReason string                     `db:"release_reason" json:"release_reason,omitempty"`
	Notes         string                     `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time                  `db:"updated_at" json:"updated_at"`

	Batches []ReservationBatch `json:"batches,omitempty"`
}

// ReservationBatch records how much of the hold one batch carries.
type ReservationBatch struct {
	ID            uint64 `db:"id" json:"-"`
	ReservationID uint64 `db:"reservation_id" json:"-"`
	BatchID       uint64 `db:"batch_id" json:"batch_id"`
	Quantity      int64  `db:"quantity" json:"quantity"`
}

type CreateReservationRequest struct {
	SKU        string                      `json:"sku" validate:"required"`
	Quantity   int64                       `json:"quantity" validate:"required,gt=0"`
	Type       constant.ReservationType    `json:"type" validate:"required"`
	BusinessID string                      `json:"business_id" validate:"required"`
	TTLSeconds int64                       `json:"ttl_seconds" validate:"omitempty,gt=0"`
	Strategy   constant.AllocationStrategy `json:"strategy,omitempty"`
	Filter     *BatchFilter                `json:"filter,omitempty"`
	Notes      string                      `json:"notes,omitempty"`
}

type CreateReservationResponse struct {
	ReservationID uint64           `json:"reservation_id"`
	ExpiresAt     time.Time        `json:"expires_at"`
	Draws         []AllocationDraw `json:"draws"`
}

type ReleaseReservationRequest struct {
	Reason string `json:"reason" validate:"required"`
}
