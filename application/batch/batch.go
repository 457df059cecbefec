package batch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/stock-ledger/application/allocation"
	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	batchrepo "github.com/muhammadheryan/stock-ledger/repository/batch"
	redisrepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/stock-ledger/utils/context"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"go.uber.org/zap"
)

// availabilityCacheTTL keeps summaries short-lived; mutations also
// invalidate eagerly, the TTL just caps staleness when invalidation is lost.
const availabilityCacheTTL = 30 * time.Second

type BatchApp interface {
	ReceiveInbound(ctx context.Context, req *model.ReceiveBatchRequest) (*model.Batch, error)
	AdjustStock(ctx context.Context, batchID uint64, req *model.AdjustBatchRequest) (*model.Batch, error)
	DeductStock(ctx context.Context, req *model.DeductStockRequest) (*model.AllocationResult, error)
	GetBatch(ctx context.Context, batchID uint64) (*model.Batch, error)
	GetAvailability(ctx context.Context, sku string) (*model.SKUAvailability, error)
}

type batchAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	batchRepo batchrepo.BatchRepository
	allocator allocation.Allocator
	redisRepo redisrepo.Repository
	publisher *rabbitmq.Publisher
}

func NewBatchApp(config *config.Config, txRepo txrepo.TxRepository, batchRepo batchrepo.BatchRepository, allocator allocation.Allocator, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) BatchApp {
	return &batchAppImpl{
		config:    config,
		txRepo:    txRepo,
		batchRepo: batchRepo,
		allocator: allocator,
		redisRepo: redisRepo,
		publisher: publisher,
	}
}

// ReceiveInbound creates a new batch from an inbound event. Batch numbers
// are globally unique; a duplicate fails the whole call.
func (s *batchAppImpl) ReceiveInbound(ctx context.Context, req *model.ReceiveBatchRequest) (*model.Batch, error) {
	if !req.Grade.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReceiveInbound] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.batchRepo.GetBatchByNumberTx(ctx, tx, req.BatchNumber)
	if err != nil {
		logger.Error("[ReceiveInbound] check batch number", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrDuplicateBatchNumber)
	}

	b := &model.Batch{
		SKU:            req.SKU,
		BatchNumber:    req.BatchNumber,
		Status:         constant.BatchStatusAvailable,
		Grade:          req.Grade,
		Quantity:       req.Quantity,
		Available:      req.Quantity,
		UnitCost:       req.UnitCost,
		Location:       req.Location,
		ProductionDate: req.ProductionDate,
		ExpiryDate:     req.ExpiryDate,
	}
	id, err := s.batchRepo.InsertBatchTx(ctx, tx, b)
	if err != nil {
		logger.Error("[ReceiveInbound] insert batch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	b.ID = id

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReceiveInbound] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishFacts([]model.StockChange{{
		ID:         uuid.NewString(),
		Type:       constant.StockChangeInbound,
		Direction:  constant.StockChangeTypeDirection[constant.StockChangeInbound],
		BatchID:    b.ID,
		SKU:        b.SKU,
		Quantity:   req.Quantity,
		Operator:   utilsContext.OperatorOrSystem(ctx),
		OccurredAt: time.Now(),
		Metadata:   map[string]string{"batch_number": req.BatchNumber},
	}})
	s.invalidateAvailability(ctx, req.SKU)

	return b, nil
}

// AdjustStock applies a signed correction to one batch's available stock.
func (s *batchAppImpl) AdjustStock(ctx context.Context, batchID uint64, req *model.AdjustBatchRequest) (*model.Batch, error) {
	if req.Delta == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AdjustStock] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	b, err := s.batchRepo.GetBatchForUpdateTx(ctx, tx, batchID)
	if err != nil {
		logger.Error("[AdjustStock] get batch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if b == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := b.Adjust(req.Delta); err != nil {
		return nil, err
	}
	if err := s.batchRepo.UpdateQuantitiesTx(ctx, tx, b); err != nil {
		logger.Error("[AdjustStock] update batch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AdjustStock] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	changeType := constant.StockChangeAdjustIncrease
	qty := req.Delta
	if req.Delta < 0 {
		changeType = constant.StockChangeAdjustDecrease
		qty = -req.Delta
	}
	s.publishFacts([]model.StockChange{{
		ID:         uuid.NewString(),
		Type:       changeType,
		Direction:  constant.StockChangeTypeDirection[changeType],
		BatchID:    b.ID,
		SKU:        b.SKU,
		Quantity:   qty,
		Operator:   utilsContext.OperatorOrSystem(ctx),
		OccurredAt: time.Now(),
		Metadata:   map[string]string{"reason": req.Reason},
	}})
	s.invalidateAvailability(ctx, b.SKU)
	if req.Delta < 0 {
		s.alertIfLowStock(ctx, b.SKU)
	}

	return b, nil
}

// DeductStock is the outbound path: it consumes available quantity across
// batches selected by the strategy.
func (s *batchAppImpl) DeductStock(ctx context.Context, req *model.DeductStockRequest) (*model.AllocationResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeductStock] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	result, facts, err := s.allocator.AllocateTx(ctx, tx, &model.AllocationRequest{
		SKU:      req.SKU,
		Quantity: req.Quantity,
		Intent:   constant.IntentConsume,
		Strategy: req.Strategy,
		Filter:   req.Filter,
	}, utilsContext.OperatorOrSystem(ctx))
	if err != nil {
		if ce, ok := err.(errors.CustomError); ok && ce.Type() != constant.ErrInternal {
			return nil, err
		}
		logger.Error("[DeductStock] allocate", zap.String("error", err.Error()), zap.String("sku", req.SKU))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeductStock] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishFacts(facts)
	s.invalidateAvailability(ctx, req.SKU)
	s.alertIfLowStock(ctx, req.SKU)

	return result, nil
}

func (s *batchAppImpl) GetBatch(ctx context.Context, batchID uint64) (*model.Batch, error) {
	b, err := s.batchRepo.GetBatch(ctx, batchID)
	if err != nil {
		logger.Error("[GetBatch] get batch", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if b == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return b, nil
}

// GetAvailability serves the per-SKU summary, preferring the redis cache.
func (s *batchAppImpl) GetAvailability(ctx context.Context, sku string) (*model.SKUAvailability, error) {
	if s.redisRepo != nil {
		cached, err := s.redisRepo.GetAvailability(ctx, sku)
		if err != nil {
			logger.Warn("[GetAvailability] cache read", zap.String("error", err.Error()), zap.String("sku", sku))
		} else if cached != nil {
			return cached, nil
		}
	}

	a, err := s.batchRepo.GetSKUAvailability(ctx, sku)
	if err != nil {
		logger.Error("[GetAvailability] sum batches", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.redisRepo != nil {
		if err := s.redisRepo.SetAvailability(ctx, a, availabilityCacheTTL); err != nil {
			logger.Warn("[GetAvailability] cache write", zap.String("error", err.Error()), zap.String("sku", sku))
		}
	}
	return a, nil
}

// alertIfLowStock publishes a throttled low-stock alert when availability
// for the SKU has dropped under the configured threshold.
func (s *batchAppImpl) alertIfLowStock(ctx context.Context, sku string) {
	threshold := s.config.Ledger.LowStockThreshold
	if threshold <= 0 || s.publisher == nil {
		return
	}

	a, err := s.batchRepo.GetSKUAvailability(ctx, sku)
	if err != nil {
		logger.Warn("[alertIfLowStock] sum batches", zap.String("error", err.Error()), zap.String("sku", sku))
		return
	}
	if a.Available >= threshold {
		return
	}

	if s.redisRepo != nil {
		ok, err := s.redisRepo.AcquireAlertSlot(ctx, sku, s.config.Ledger.AlertThrottle)
		if err != nil {
			logger.Warn("[alertIfLowStock] alert slot", zap.String("error", err.Error()), zap.String("sku", sku))
			return
		}
		if !ok {
			return
		}
	}

	if err := s.publisher.PublishLowStockAlert(rabbitmq.LowStockAlertMessage{
		SKU:       sku,
		Available: a.Available,
		Threshold: threshold,
		AlertedAt: time.Now(),
	}); err != nil {
		logger.Error("[alertIfLowStock] publish alert", zap.String("error", err.Error()), zap.String("sku", sku))
	}
}

func (s *batchAppImpl) publishFacts(facts []model.StockChange) {
	if s.publisher == nil {
		return
	}
	for _, fact := range facts {
		if err := s.publisher.PublishStockChange(fact); err != nil {
			logger.Error("[publishFacts] publish stock change", zap.String("error", err.Error()), zap.String("fact_id", fact.ID))
		}
	}
}

func (s *batchAppImpl) invalidateAvailability(ctx context.Context, sku string) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.InvalidateAvailability(ctx, sku); err != nil {
		logger.Warn("[invalidateAvailability] drop cache", zap.String("error", err.Error()), zap.String("sku", sku))
	}
}
