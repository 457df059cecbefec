package stocklock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	batchrepo "github.com/muhammadheryan/stock-ledger/repository/batch"
	redisrepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	stocklockrepo "github.com/muhammadheryan/stock-ledger/repository/stocklock"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/stock-ledger/utils/context"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"go.uber.org/zap"
)

const sweepBatchSize = 100

// StockLockApp manages explicit batch/quantity holds. Business locks end via
// Release, operational locks via Complete or Cancel; the reversal walks the
// recorded pairs in all cases.
type StockLockApp interface {
	Create(ctx context.Context, req *model.CreateLockRequest) (*model.CreateLockResponse, error)
	Release(ctx context.Context, lockID uint64, req *model.ReleaseLockRequest) error
	Complete(ctx context.Context, lockID uint64, req *model.CompleteLockRequest) error
	Cancel(ctx context.Context, lockID uint64, reason string) error
	Get(ctx context.Context, lockID uint64) (*model.StockLock, error)
	SweepExpired(ctx context.Context) (int, error)
}

type stockLockAppImpl struct {
	txRepo    txrepo.TxRepository
	lockRepo  stocklockrepo.StockLockRepository
	batchRepo batchrepo.BatchRepository
	redisRepo redisrepo.Repository
	publisher *rabbitmq.Publisher
}

func NewStockLockApp(txRepo txrepo.TxRepository, lockRepo stocklockrepo.StockLockRepository, batchRepo batchrepo.BatchRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) StockLockApp {
	return &stockLockAppImpl{
		txRepo:    txRepo,
		lockRepo:  lockRepo,
		batchRepo: batchRepo,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

// Create locks the requested quantity on every listed batch. The pairs are
// applied inside one transaction, so a failing pair rolls back all earlier
// ones and the call leaves no trace.
func (s *stockLockAppImpl) Create(ctx context.Context, req *model.CreateLockRequest) (*model.CreateLockResponse, error) {
	if !req.Scope.Valid() || !req.Type.ValidFor(req.Scope) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if len(req.Pairs) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Create] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	ids := make([]uint64, 0, len(req.Pairs))
	for _, pair := range req.Pairs {
		ids = append(ids, pair.BatchID)
	}
	batches, err := s.batchRepo.GetBatchesForUpdateTx(ctx, tx, ids)
	if err != nil {
		logger.Error("[Create] lock batches", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	byID := make(map[uint64]*model.Batch, len(batches))
	for i := range batches {
		byID[batches[i].ID] = &batches[i]
	}

	now := time.Now()
	operator := utilsContext.OperatorOrSystem(ctx)
	var total int64
	facts := make([]model.StockChange, 0, len(req.Pairs))
	skus := make(map[string]struct{})
	lock := &model.StockLock{
		Scope:     req.Scope,
		Type:      req.Type,
		Status:    constant.LockStatusActive,
		Reason:    req.Reason,
		CreatedBy: operator,
		Metadata:  req.Metadata,
	}
	for _, pair := range req.Pairs {
		b, ok := byID[pair.BatchID]
		if !ok {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if err := b.LockQty(pair.Quantity); err != nil {
			return nil, err
		}
		if err := s.batchRepo.UpdateQuantitiesTx(ctx, tx, b); err != nil {
			logger.Error("[Create] update batch", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		total += pair.Quantity
		lock.Batches = append(lock.Batches, model.StockLockBatch{BatchID: pair.BatchID, Quantity: pair.Quantity})
		skus[b.SKU] = struct{}{}
		facts = append(facts, model.StockChange{
			ID:         uuid.NewString(),
			Type:       constant.StockChangeLock,
			Direction:  constant.StockChangeTypeDirection[constant.StockChangeLock],
			BatchID:    b.ID,
			SKU:        b.SKU,
			Quantity:   pair.Quantity,
			Operator:   operator,
			OccurredAt: now,
			Metadata:   map[string]string{"reason": req.Reason},
		})
	}
	lock.TotalQuantity = total
	if req.TTLSeconds > 0 {
		expiresAt := now.Add(time.Duration(req.TTLSeconds) * time.Second)
		lock.ExpiresAt = &expiresAt
	}

	lockID, err := s.lockRepo.InsertLockTx(ctx, tx, lock)
	if err != nil {
		logger.Error("[Create] insert lock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Create] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishFacts(facts)
	for sku := range skus {
		s.invalidateAvailability(ctx, sku)
	}

	return &model.CreateLockResponse{
		LockID:        lockID,
		TotalQuantity: total,
		ExpiresAt:     lock.ExpiresAt,
	}, nil
}

// Release ends a business lock.
func (s *stockLockAppImpl) Release(ctx context.Context, lockID uint64, req *model.ReleaseLockRequest) error {
	_, err := s.terminate(ctx, lockID, constant.LockScopeBusiness, constant.LockStatusReleased, req.Reason, "", false)
	return err
}

// Complete ends an operational lock, typically when the physical task it
// guarded is finished.
func (s *stockLockAppImpl) Complete(ctx context.Context, lockID uint64, req *model.CompleteLockRequest) error {
	notes := req.Notes
	if req.Result != "" {
		if notes != "" {
			notes += "; "
		}
		notes += "result: " + req.Result
	}
	_, err := s.terminate(ctx, lockID, constant.LockScopeOperational, constant.LockStatusCompleted, "", notes, false)
	return err
}

// Cancel aborts an operational lock without completing its task.
func (s *stockLockAppImpl) Cancel(ctx context.Context, lockID uint64, reason string) error {
	_, err := s.terminate(ctx, lockID, constant.LockScopeOperational, constant.LockStatusCancelled, reason, "", false)
	return err
}

func (s *stockLockAppImpl) Get(ctx context.Context, lockID uint64) (*model.StockLock, error) {
	lock, err := s.lockRepo.GetLock(ctx, lockID)
	if err != nil {
		logger.Error("[Get] get lock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if lock == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return lock, nil
}

// SweepExpired mirrors the reservation sweep: one transaction per lock, a
// terminal-state re-check under the row lock, skips instead of failures.
func (s *stockLockAppImpl) SweepExpired(ctx context.Context) (int, error) {
	ids, err := s.lockRepo.FindExpiredActiveIDs(ctx, time.Now(), sweepBatchSize)
	if err != nil {
		logger.Error("[SweepExpired] find expired", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	swept := 0
	for _, id := range ids {
		if _, err := s.terminate(ctx, id, "", constant.LockStatusExpired, constant.SweepReleaseReason, "", true); err != nil {
			logger.Warn("[SweepExpired] skip lock", zap.Uint64("lock_id", id), zap.String("error", err.Error()))
			continue
		}
		swept++
	}
	return swept, nil
}

// terminate reverses every recorded pair and writes the terminal status.
// scope narrows which variant the caller may end; sweeping accepts any.
func (s *stockLockAppImpl) terminate(ctx context.Context, lockID uint64, scope constant.LockScope, target constant.LockStatus, reason, notes string, sweeping bool) (*model.StockLock, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[terminate] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	lock, err := s.lockRepo.GetLockForUpdateTx(ctx, tx, lockID)
	if err != nil {
		logger.Error("[terminate] get lock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if lock == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !sweeping && lock.Scope != scope {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if lock.Status == constant.LockStatusExpired {
		return nil, errors.SetCustomError(constant.ErrLockExpired)
	}
	if lock.Status.Terminal() {
		return nil, errors.SetCustomError(constant.ErrInvalidStatus)
	}

	pairs, err := s.lockRepo.GetLockBatchesTx(ctx, tx, lockID)
	if err != nil {
		logger.Error("[terminate] get lock batches", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ids := make([]uint64, 0, len(pairs))
	for _, p := range pairs {
		ids = append(ids, p.BatchID)
	}
	batches, err := s.batchRepo.GetBatchesForUpdateTx(ctx, tx, ids)
	if err != nil {
		logger.Error("[terminate] lock batches", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	byID := make(map[uint64]*model.Batch, len(batches))
	for i := range batches {
		byID[batches[i].ID] = &batches[i]
	}

	now := time.Now()
	operator := utilsContext.OperatorOrSystem(ctx)
	facts := make([]model.StockChange, 0, len(pairs))
	skus := make(map[string]struct{})
	for _, p := range pairs {
		b, ok := byID[p.BatchID]
		if !ok {
			logger.Error("[terminate] locked batch missing", zap.Uint64("batch_id", p.BatchID))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := b.UnlockQty(p.Quantity); err != nil {
			return nil, err
		}
		if err := s.batchRepo.UpdateQuantitiesTx(ctx, tx, b); err != nil {
			logger.Error("[terminate] update batch", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		skus[b.SKU] = struct{}{}
		facts = append(facts, model.StockChange{
			ID:         uuid.NewString(),
			Type:       constant.StockChangeUnlock,
			Direction:  constant.StockChangeTypeDirection[constant.StockChangeUnlock],
			BatchID:    b.ID,
			SKU:        b.SKU,
			Quantity:   p.Quantity,
			Operator:   operator,
			OccurredAt: now,
			Metadata:   map[string]string{"reason": reason},
		})
	}

	lock.Status = target
	lock.ReleasedBy = operator
	lock.ReleasedAt = &now
	if notes != "" {
		lock.Notes = notes
	}
	if err := s.lockRepo.UpdateStatusTx(ctx, tx, lock); err != nil {
		logger.Error("[terminate] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[terminate] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishFacts(facts)
	for sku := range skus {
		s.invalidateAvailability(ctx, sku)
	}
	return lock, nil
}

func (s *stockLockAppImpl) publishFacts(facts []model.StockChange) {
	if s.publisher == nil {
		return
	}
	for _, fact := range facts {
		if err := s.publisher.PublishStockChange(fact); err != nil {
			logger.Error("[publishFacts] publish stock change", zap.String("error", err.Error()), zap.String("fact_id", fact.ID))
		}
	}
}

func (s *stockLockAppImpl) invalidateAvailability(ctx context.Context, sku string) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.InvalidateAvailability(ctx, sku); err != nil {
		logger.Warn("[invalidateAvailability] drop cache", zap.String("error", err.Error()), zap.String("sku", sku))
	}
}
