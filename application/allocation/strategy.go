package allocation

import (
	"sort"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
)

// Strategy orders candidate batches before the allocator draws from them.
// Implementations are pure: the input slice is never mutated and equal keys
// keep their relative order.
type Strategy interface {
	SortBatches(batches []model.Batch) []model.Batch
}

// StrategyFor resolves a strategy by name, defaulting to FIFO when empty.
func StrategyFor(name constant.AllocationStrategy) (Strategy, error) {
	switch name {
	case constant.StrategyFIFO, "":
		return fifoStrategy{}, nil
	case constant.StrategyLIFO:
		return lifoStrategy{}, nil
	case constant.StrategyFEFO:
		return fefoStrategy{}, nil
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
}

type fifoStrategy struct{}

// SortBatches orders oldest batch first.
func (fifoStrategy) SortBatches(batches []model.Batch) []model.Batch {
	out := append([]model.Batch(nil), batches...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

type lifoStrategy struct{}

// SortBatches orders newest batch first.
func (lifoStrategy) SortBatches(batches []model.Batch) []model.Batch {
	out := append([]model.Batch(nil), batches...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

type fefoStrategy struct{}

// SortBatches orders soonest expiry first; batches without an expiry date
// sort last and keep their original relative order.
func (fefoStrategy) SortBatches(batches []model.Batch) []model.Batch {
	out := append([]model.Batch(nil), batches...)
	sort.SliceStable(out, func(i, j int) bool {
		ei, ej := out[i].ExpiryDate, out[j].ExpiryDate
		if ei == nil {
			return false
		}
		if ej == nil {
			return true
		}
		return ei.Before(*ej)
	})
	return out
}
