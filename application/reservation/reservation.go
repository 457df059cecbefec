package reservation

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
	reservationrepo "github.com/muhammadheryan/stock-ledger/repository/reservation"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/stock-ledger/utils/context"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"go.uber.org/zap"
)

// sweepBatchSize bounds how many expired reservations one sweep pass loads.
const sweepBatchSize = 100

type ReservationApp interface {
	Create(ctx context.Context, req *model.CreateReservationRequest) (*model.CreateReservationResponse, error)
	Confirm(ctx context.Context, reservationID uint64) error
	Release(ctx context.Context, reservationID uint64, req *model.ReleaseReservationRequest) error
	Get(ctx context.Context, reservationID uint64) (*model.Reservation, error)
	SweepExpired(ctx context.Context) (int, error)
}

type reservationAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	reservationRepo reservationrepo.ReservationRepository
	batchRepo       batchrepo.BatchRepository
	allocator       allocation.Allocator
	redisRepo       redisrepo.Repository
	publisher       *rabbitmq.Publisher
}

func NewReservationApp(config *config.Config, txRepo txrepo.TxRepository, reservationRepo reservationrepo.ReservationRepository, batchRepo batchrepo.BatchRepository, allocator allocation.Allocator, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) ReservationApp {
	return &reservationAppImpl{
		config:          config,
		txRepo:          txRepo,
		reservationRepo: reservationRepo,
		batchRepo:       batchRepo,
		allocator:       allocator,
		redisRepo:       redisRepo,
		publisher:       publisher,
	}
}

// Create carves reserved quantity out of eligible batches and persists the
// pending reservation in the same transaction, so a failed insert rolls the
// reserve back and no partial hold ever survives.
func (s *reservationAppImpl) Create(ctx context.Context, req *model.CreateReservationRequest) (*model.CreateReservationResponse, error) {
	if !req.Type.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	ttl := s.config.Ledger.ReservationTTL
	if req.TTLSeconds > 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}
	operator := utilsContext.OperatorOrSystem(ctx)

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

	result, facts, err := s.allocator.AllocateTx(ctx, tx, &model.AllocationRequest{
		SKU:      req.SKU,
		Quantity: req.Quantity,
		Intent:   constant.IntentReserve,
		Strategy: req.Strategy,
		Filter:   req.Filter,
	}, operator)
	if err != nil {
		if ce, ok := err.(errors.CustomError); ok && ce.Type() != constant.ErrInternal {
			return nil, err
		}
		logger.Error("[Create] allocate", zap.String("error", err.Error()), zap.String("sku", req.SKU))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	expiresAt := time.Now().Add(ttl)
	reservation := &model.Reservation{
		SKU:        req.SKU,
		Quantity:   req.Quantity,
		Type:       req.Type,
		BusinessID: req.BusinessID,
		Status:     constant.ReservationStatusPending,
		Operator:   operator,
		ExpiresAt:  expiresAt,
		Notes:      req.Notes,
	}
	for _, draw := range result.Draws {
		reservation.Batches = append(reservation.Batches, model.ReservationBatch{BatchID: draw.BatchID, Quantity: draw.Quantity})
	}

	reservationID, err := s.reservationRepo.InsertReservationTx(ctx, tx, reservation)
	if err != nil {
		logger.Error("[Create] insert reservation", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Create] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishFacts(facts)
	s.invalidateAvailability(ctx, req.SKU)

	return &model.CreateReservationResponse{
		ReservationID: reservationID,
		ExpiresAt:     expiresAt,
		Draws:         result.Draws,
	}, nil
}

// Confirm marks a pending reservation as converted to a committed outbound.
// Reserved quantity stays reserved; the consuming workflow draws it down
// separately.
func (s *reservationAppImpl) Confirm(ctx context.Context, reservationID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Confirm] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	reservation, err := s.reservationRepo.GetReservationForUpdateTx(ctx, tx, reservationID)
	if err != nil {
		logger.Error("[Confirm] get reservation", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if reservation == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if reservation.Status == constant.ReservationStatusExpired {
		return errors.SetCustomError(constant.ErrReservationExpired)
	}
	if reservation.Status != constant.ReservationStatusPending {
		return errors.SetCustomError(constant.ErrInvalidStatus)
	}

	now := time.Now()
	reservation.Status = constant.ReservationStatusConfirmed
	reservation.ConfirmedAt = &now
	if err := s.reservationRepo.UpdateStatusTx(ctx, tx, reservation); err != nil {
		logger.Error("[Confirm] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Confirm] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// Release reverses the hold: every drawn batch gets its reserved share moved
// back to available.
func (s *reservationAppImpl) Release(ctx context.Context, reservationID uint64, req *model.ReleaseReservationRequest) error {
	return s.release(ctx, reservationID, req.Reason, constant.ReservationStatusReleased, false)
}

func (s *reservationAppImpl) Get(ctx context.Context, reservationID uint64) (*model.Reservation, error) {
	reservation, err := s.reservationRepo.GetReservation(ctx, reservationID)
	if err != nil {
		logger.Error("[Get] get reservation", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if reservation == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return reservation, nil
}

// SweepExpired transitions pending reservations past their expiry. Each
// record is handled in its own transaction with a terminal-state re-check
// under the row lock, so overlapping sweeps and concurrent manual releases
// degrade to skips instead of double reversals.
func (s *reservationAppImpl) SweepExpired(ctx context.Context) (int, error) {
	ids, err := s.reservationRepo.FindExpiredPendingIDs(ctx, time.Now(), sweepBatchSize)
	if err != nil {
		logger.Error("[SweepExpired] find expired", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	swept := 0
	for _, id := range ids {
		if err := s.release(ctx, id, constant.SweepReleaseReason, constant.ReservationStatusExpired, true); err != nil {
			// One bad record must not block the rest of the pass.
			logger.Warn("[SweepExpired] skip reservation", zap.Uint64("reservation_id", id), zap.String("error", err.Error()))
			continue
		}
		swept++
	}
	return swept, nil
}

// release is the shared reversal for manual release and sweep expiry.
// When sweeping, a record already transitioned by a concurrent caller is a
// silent no-op reported as an error so the sweep does not count it.
func (s *reservationAppImpl) release(ctx context.Context, reservationID uint64, reason string, target constant.ReservationStatus, sweeping bool) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[release] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	reservation, err := s.reservationRepo.GetReservationForUpdateTx(ctx, tx, reservationID)
	if err != nil {
		logger.Error("[release] get reservation", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if reservation == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	switch reservation.Status {
	case constant.ReservationStatusPending:
		// releasable
	case constant.ReservationStatusConfirmed:
		if sweeping {
			// Confirmed between the id scan and the row lock: not ours.
			return errors.SetCustomError(constant.ErrInvalidStatus)
		}
	case constant.ReservationStatusExpired:
		return errors.SetCustomError(constant.ErrReservationExpired)
	default:
		return errors.SetCustomError(constant.ErrInvalidStatus)
	}

	draws, err := s.reservationRepo.GetReservationBatchesTx(ctx, tx, reservationID)
	if err != nil {
		logger.Error("[release] get reservation batches", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	ids := make([]uint64, 0, len(draws))
	for _, d := range draws {
		ids = append(ids, d.BatchID)
	}
	batches, err := s.batchRepo.GetBatchesForUpdateTx(ctx, tx, ids)
	if err != nil {
		logger.Error("[release] lock batches", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	byID := make(map[uint64]*model.Batch, len(batches))
	for i := range batches {
		byID[batches[i].ID] = &batches[i]
	}

	now := time.Now()
	operator := utilsContext.OperatorOrSystem(ctx)
	facts := make([]model.StockChange, 0, len(draws))
	for _, d := range draws {
		b, ok := byID[d.BatchID]
		if !ok {
			logger.Error("[release] drawn batch missing", zap.Uint64("batch_id", d.BatchID))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if err := b.UnreserveQty(d.Quantity); err != nil {
			return err
		}
		if err := s.batchRepo.UpdateQuantitiesTx(ctx, tx, b); err != nil {
			logger.Error("[release] update batch", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		facts = append(facts, model.StockChange{
			ID:         uuid.NewString(),
			Type:       constant.StockChangeUnreserve,
			Direction:  constant.StockChangeTypeDirection[constant.StockChangeUnreserve],
			BatchID:    b.ID,
			SKU:        b.SKU,
			Quantity:   d.Quantity,
			Operator:   operator,
			OccurredAt: now,
			Metadata:   map[string]string{"reason": reason},
		})
	}

	reservation.Status = target
	reservation.ReleasedAt = &now
	reservation.ReleaseReason = reason
	if err := s.reservationRepo.UpdateStatusTx(ctx, tx, reservation); err != nil {
		logger.Error("[release] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[release] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishFacts(facts)
	s.invalidateAvailability(ctx, reservation.SKU)
	return nil
}

func (s *reservationAppImpl) publishFacts(facts []model.StockChange) {
	if s.publisher == nil {
		return
	}
	for _, fact := range facts {
		if err := s.publisher.PublishStockChange(fact); err != nil {
			logger.Error("[publishFacts] publish stock change", zap.String("error", err.Error()), zap.String("fact_id", fact.ID))
		}
	}
}

func (s *reservationAppImpl) invalidateAvailability(ctx context.Context, sku string) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.InvalidateAvailability(ctx, sku); err != nil {
		logger.Warn("[invalidateAvailability] drop cache", zap.String("error", err.Error()), zap.String("sku", sku))
	}
}
