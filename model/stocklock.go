package model

import (
	"time"

	"github.com/muhammadheryan/stock-ledger/constant"
)

// StockLock is a longer-lived hold over an explicit list of batch/quantity
// pairs. Business locks end with a release, operational locks with a
// completion; both share the reversal logic through the recorded pairs.
type StockLock struct {
	ID            uint64               `db:"id" json:"id"`
	Scope         constant.LockScope   `db:"scope" json:"scope"`
	Type          constant.LockType    `db:"type" json:"type"`
	Status        constant.LockStatus  `db:"status" json:"status"`
	Reason        string               `db:"reason" json:"reason"`
	CreatedBy     string               `db:"created_by" json:"created_by"`
	ReleasedBy    string               `db:"released_by" json:"released_by,omitempty"`
	TotalQuantity int64                `db:"total_quantity" json:"total_quantity"`
	ExpiresAt     *time.Time           `db:"expires_at" json:"expires_at,omitempty"`
	ReleasedAt    *time.Time           `db:"released_at" json:"released_at,omitempty"`
	Notes         string               `db:"notes" json:"notes,omitempty"`
	Metadata      string               `db:"metadata" json:"metadata,omitempty"`
	CreatedAt     time.Time            `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time            `db:"updated_at" json:"updated_at"`

	Batches []StockLockBatch `json:"batches,omitempty"`
}

// StockLockBatch records one locked batch share; the shares sum to
// TotalQuantity on the parent lock.
type StockLockBatch struct {
	ID       uint64 `db:"id" json:"-"`
	LockID   uint64 `db:"lock_id" json:"-"`
	BatchID  uint64 `db:"batch_id" json:"batch_id"`
	Quantity int64  `db:"quantity" json:"quantity"`
}

type LockBatchPair struct {
	BatchID  uint64 `json:"batch_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

type CreateLockRequest struct {
	Scope      constant.LockScope `json:"scope" validate:"required"`
	Type       constant.LockType  `json:"type" validate:"required"`
	Reason     string             `json:"reason" validate:"required"`
	Pairs      []LockBatchPair    `json:"pairs" validate:"required,min=1,dive,required"`
	TTLSeconds int64              `json:"ttl_seconds" validate:"omitempty,gt=0"`
	Metadata   string             `json:"metadata,omitempty"`
}

type CreateLockResponse struct {
	LockID        uint64     `json:"lock_id"`
	TotalQuantity int64      `json:"total_quantity"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

type ReleaseLockRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type CompleteLockRequest struct {
	Notes  string `json:"notes,omitempty"`
	Result string `json:"result,omitempty"`
}
