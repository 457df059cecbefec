package model

import (
	"github.com/muhammadheryan/stock-ledger/constant"
)

// BatchFilter narrows the eligible batch set for an allocation.
type BatchFilter struct {
	Location       string                `json:"location,omitempty"`
	Grade          constant.QualityGrade `json:"grade,omitempty" validate:"omitempty,oneof=S A B C"`
	ExcludeExpired bool                  `json:"exclude_expired,omitempty"`
}

type AllocationRequest struct {
	SKU      string                      `json:"sku" validate:"required"`
	Quantity int64                       `json:"quantity" validate:"required,gt=0"`
	Intent   constant.AllocationIntent   `json:"intent" validate:"required"`
	Strategy constant.AllocationStrategy `json:"strategy,omitempty"`
	Filter   *BatchFilter                `json:"filter,omitempty"`
}

// AllocationDraw is one batch's share of a satisfied allocation.
type AllocationDraw struct {
	BatchID  uint64 `json:"batch_id"`
	Quantity int64  `json:"quantity"`
}

// AllocationResult is the ordered per-batch breakdown; draws sum exactly to
// the requested quantity.
type AllocationResult struct {
	SKU    string                    `json:"sku"`
	Intent constant.AllocationIntent `json:"intent"`
	Draws  []AllocationDraw          `json:"draws"`
	Total  int64                     `json:"total"`
}

// InsufficientStockDetail accompanies ErrInsufficientStock responses so the
// caller can retry with a smaller quantity or another strategy.
type InsufficientStockDetail struct {
	Requested int64 `json:"requested"`
	Available int64 `json:"available"`
}
