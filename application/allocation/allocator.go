package allocation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	batchrepo "github.com/muhammadheryan/stock-ledger/repository/batch"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
)

// Allocator selects batches for a requested quantity and commits the draw
// across them inside the caller's transaction. The caller owns commit and
// rollback as well as post-commit fact publication.
type Allocator interface {
	AllocateTx(ctx context.Context, tx *sqlx.Tx, req *model.AllocationRequest, operator string) (*model.AllocationResult, []model.StockChange, error)
}

type allocatorImpl struct {
	batchRepo batchrepo.BatchRepository
}

func NewAllocator(batchRepo batchrepo.BatchRepository) Allocator {
	return &allocatorImpl{batchRepo: batchRepo}
}

var intentChangeType = map[constant.AllocationIntent]constant.StockChangeType{
	constant.IntentReserve: constant.StockChangeReserve,
	constant.IntentLock:    constant.StockChangeLock,
	constant.IntentConsume: constant.StockChangeConsume,
}

// AllocateTx fetches eligible batches under row locks, fails fast when total
// availability cannot cover the request, then draws greedily in strategy
// order. No batch is mutated on any error path.
func (a *allocatorImpl) AllocateTx(ctx context.Context, tx *sqlx.Tx, req *model.AllocationRequest, operator string) (*model.AllocationResult, []model.StockChange, error) {
	if req.Quantity <= 0 {
		return nil, nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	if !req.Intent.Valid() {
		return nil, nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	strategy, err := StrategyFor(req.Strategy)
	if err != nil {
		return nil, nil, err
	}

	batches, err := a.batchRepo.FindEligibleBatchesTx(ctx, tx, req.SKU, req.Filter)
	if err != nil {
		return nil, nil, err
	}

	// Fail fast before touching anything: partial draws are not reversible
	// once a batch row has been written.
	var totalAvailable int64
	for i := range batches {
		totalAvailable += batches[i].Available
	}
	if totalAvailable < req.Quantity {
		return nil, nil, errors.SetCustomErrorWithDetails(constant.ErrInsufficientStock, model.InsufficientStockDetail{
			Requested: req.Quantity,
			Available: totalAvailable,
		})
	}

	ordered := strategy.SortBatches(batches)

	now := time.Now()
	remaining := req.Quantity
	draws := make([]model.AllocationDraw, 0)
	facts := make([]model.StockChange, 0)
	for i := range ordered {
		if remaining == 0 {
			break
		}
		b := &ordered[i]
		draw := b.Available
		if draw > remaining {
			draw = remaining
		}
		if draw == 0 {
			continue
		}

		switch req.Intent {
		case constant.IntentReserve:
			err = b.ReserveQty(draw)
		case constant.IntentLock:
			err = b.LockQty(draw)
		case constant.IntentConsume:
			err = b.ConsumeQty(draw, constant.ConsumeFromAvailable)
		}
		if err != nil {
			return nil, nil, err
		}
		if err := a.batchRepo.UpdateQuantitiesTx(ctx, tx, b); err != nil {
			return nil, nil, err
		}

		remaining -= draw
		draws = append(draws, model.AllocationDraw{BatchID: b.ID, Quantity: draw})
		facts = append(facts, model.StockChange{
			ID:         uuid.NewString(),
			Type:       intentChangeType[req.Intent],
			Direction:  constant.StockChangeTypeDirection[intentChangeType[req.Intent]],
			BatchID:    b.ID,
			SKU:        b.SKU,
			Quantity:   draw,
			Operator:   operator,
			OccurredAt: now,
		})
	}

	// The fail-fast sum guarantees this; a leftover here means the eligible
	// set changed mid-iteration and the tx must not commit.
	if remaining != 0 {
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AllocationResult{
		SKU:    req.SKU,
		Intent: req.Intent,
		Draws:  draws,
		Total:  req.Quantity,
	}, facts, nil
}
