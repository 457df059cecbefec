package allocation

import (
	"context"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	redisrepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/stock-ledger/utils/context"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"go.uber.org/zap"
)

// AllocationApp is the synchronous allocation surface a fulfillment caller
// integrates against: one call, one transaction, a per-batch breakdown or a
// structured insufficient-stock error.
type AllocationApp interface {
	Allocate(ctx context.Context, req *model.AllocationRequest) (*model.AllocationResult, error)
}

type allocationAppImpl struct {
	txRepo    txrepo.TxRepository
	allocator Allocator
	redisRepo redisrepo.Repository
	publisher *rabbitmq.Publisher
}

func NewAllocationApp(txRepo txrepo.TxRepository, allocator Allocator, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) AllocationApp {
	return &allocationAppImpl{txRepo: txRepo, allocator: allocator, redisRepo: redisRepo, publisher: publisher}
}

func (s *allocationAppImpl) Allocate(ctx context.Context, req *model.AllocationRequest) (*model.AllocationResult, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Allocate] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	result, facts, err := s.allocator.AllocateTx(ctx, tx, req, utilsContext.OperatorOrSystem(ctx))
	if err != nil {
		if ce, ok := err.(errors.CustomError); ok && ce.Type() != constant.ErrInternal {
			return nil, err
		}
		logger.Error("[Allocate] allocate", zap.String("error", err.Error()), zap.String("sku", req.SKU))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Allocate] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// Facts are best-effort once the mutation is durable.
	if s.publisher != nil {
		for _, fact := range facts {
			if err := s.publisher.PublishStockChange(fact); err != nil {
				logger.Error("[Allocate] publish stock change", zap.String("error", err.Error()), zap.String("fact_id", fact.ID))
			}
		}
	}

	if s.redisRepo != nil {
		if err := s.redisRepo.InvalidateAvailability(ctx, req.SKU); err != nil {
			logger.Warn("[Allocate] invalidate availability cache", zap.String("error", err.Error()), zap.String("sku", req.SKU))
		}
	}

	return result, nil
}
