package stocklock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appstocklock "github.com/muhammadheryan/stock-ledger/application/stocklock"
	"github.com/muhammadheryan/stock-ledger/constant"
	batchmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/batch"
	stocklockmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/stocklock"
	txmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/tx"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestStockLockApp_Create(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		lockRepo  *stocklockmocks.StockLockRepository
		batchRepo *batchmocks.BatchRepository
	}
	tests := []struct {
		name     string
		req      *model.CreateLockRequest
		mockCall func(f fields)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: operational lock over two batches",
			req: &model.CreateLockRequest{
				Scope:  constant.LockScopeOperational,
				Type:   constant.LockTypeInventory,
				Reason: "cycle count",
				Pairs: []model.LockBatchPair{
					{BatchID: 1, Quantity: 3},
					{BatchID: 2, Quantity: 2},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.batchRepo.On("GetBatchesForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.Batch{
					{ID: 1, SKU: "SKU-001", Status: constant.BatchStatusAvailable, Quantity: 10, Available: 10},
					{ID: 2, SKU: "SKU-001", Status: constant.BatchStatusAvailable, Quantity: 10, Available: 10},
				}, nil).Once()
				f.batchRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.MatchedBy(func(b *model.Batch) bool {
					return b.ID == 1 && b.Available == 7 && b.Locked == 3
				})).Return(nil).Once()
				f.batchRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.MatchedBy(func(b *model.Batch) bool {
					return b.ID == 2 && b.Available == 8 && b.Locked == 2
				})).Return(nil).Once()

				f.lockRepo.On("InsertLockTx", mock.Anything, tx, mock.MatchedBy(func(lock *model.StockLock) bool {
					return lock.Scope == constant.LockScopeOperational &&
						lock.Status == constant.LockStatusActive &&
						lock.TotalQuantity == 5 &&
						len(lock.Batches) == 2
				})).Return(uint64(7), nil).Once()
			},
			wantID: 7,
		},
		{
			name: "error: type does not belong to scope",
			req: &model.CreateLockRequest{
				Scope: constant.LockScopeBusiness,
				Type:  constant.LockTypeInventory,
				Pairs: []model.LockBatchPair{{BatchID: 1, Quantity: 1}},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: no pairs",
			req: &model.CreateLockRequest{
				Scope: constant.LockScopeBusiness,
				Type:  constant.LockTypeOrder,
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: one short batch fails the whole lock",
			req: &model.CreateLockRequest{
				Scope: constant.LockScopeBusiness,
				Type:  constant.LockTypeOrder,
				Pairs: []model.LockBatchPair{
					{BatchID: 1, Quantity: 3},
					{BatchID: 2, Quantity: 8},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.batchRepo.On("GetBatchesForUpdateTx", mock.Anything, tx, []uint64{1, 2}).Return([]model.Batch{
					{ID: 1, SKU: "SKU-001", Status: constant.BatchStatusAvailable, Quantity: 10, Available: 10},
					{ID: 2, SKU: "SKU-001", Status: constant.BatchStatusAvailable, Quantity: 10, Available: 5},
				}, nil).Once()
				f.batchRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.MatchedBy(func(b *model.Batch) bool {
					return b.ID == 1
				})).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: missing batch",
			req: &model.CreateLockRequest{
				Scope: constant.LockScopeBusiness,
				Type:  constant.LockTypeOrder,
				Pairs: []model.LockBatchPair{{BatchID: 9, Quantity: 1}},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.batchRepo.On("GetBatchesForUpdateTx", mock.Anything, tx, []uint64{9}).Return([]model.Batch{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:    txmocks.NewTxRepository(t),
				lockRepo:  stocklockmocks.NewStockLockRepository(t),
				batchRepo: batchmocks.NewBatchRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appstocklock.NewStockLockApp(f.txRepo, f.lockRepo, f.batchRepo, nil, nil)

			got, err := app.Create(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.LockID != tt.wantID {
				t.Fatalf("Create() LockID = %d, want %d", got.LockID, tt.wantID)
			}
		})
	}
}

func TestStockLockApp_Create_TTLSetsExpiry(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	lockRepo := stocklockmocks.NewStockLockRepository(t)
	batchRepo := batchmocks.NewBatchRepository(t)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()
	batchRepo.On("GetBatchesForUpdateTx", mock.Anything, tx, []uint64{1}).Return([]model.Batch{
		{ID: 1, SKU: "SKU-001", Status: constant.BatchStatusAvailable, Quantity: 10, Available: 10},
	}, nil).Once()
	batchRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
	lockRepo.On("InsertLockTx", mock.Anything, tx, mock.MatchedBy(func(lock *model.StockLock) bool {
		return lock.ExpiresAt != nil && time.Until(*lock.ExpiresAt) <= 10*time.Minute
	})).Return(uint64(1), nil).Once()

	app := appstocklock.NewStockLockApp(txRepo, lockRepo, batchRepo, nil, nil)
	got, err := app.Create(context.Background(), &model.CreateLockRequest{
		Scope:      constant.LockScopeBusiness,
		Type:       constant.LockTypeOrder,
		Pairs:      []model.LockBatchPair{{BatchID: 1, Quantity: 2}},
		TTLSeconds: 600,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ExpiresAt == nil {
		t.Fatal("Create() ExpiresAt should be set when TTL given")
	}
}

func expectTerminate(tx *sqlx.Tx, lockRepo *stocklockmocks.StockLockRepository, batchRepo *batchmocks.BatchRepository, lock *model.StockLock, target constant.LockStatus) {
	lockRepo.On("GetLockForUpdateTx", mock.Anything, tx, lock.ID).Return(lock, nil).Once()
	lockRepo.On("GetLockBatchesTx", mock.Anything, tx, lock.ID).Return([]model.StockLockBatch{
		{LockID: lock.ID, BatchID: 1, Quantity: 4},
	}, nil).Once()
	batchRepo.On("GetBatchesForUpdateTx", mock.Anything, tx, []uint64{1}).Return([]model.Batch{
		{ID: 1, SKU: "SKU-001", Status: constant.BatchStatusAvailable, Quantity: 10, Available: 6, Locked: 4},
	}, nil).Once()
	batchRepo.On("UpdateQuantitiesTx", mock.Anything, tx, mock.MatchedBy(func(b *model.Batch) bool {
		return b.ID == 1 && b.Available == 10 && b.Locked == 0
	})).Return(nil).Once()
	lockRepo.On("UpdateStatusTx", mock.Anything, tx, mock.MatchedBy(func(l *model.StockLock) bool {
		return l.Status == target && l.ReleasedAt != nil
	})).Return(nil).Once()
}

func TestStockLockApp_Release(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	lockRepo := stocklockmocks.NewStockLockRepository(t)
	batchRepo := batchmocks.NewBatchRepository(t)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()
	expectTerminate(tx, lockRepo, batchRepo, &model.StockLock{
		ID:     3,
		Scope:  constant.LockScopeBusiness,
		Status: constant.LockStatusActive,
	}, constant.LockStatusReleased)

	app := appstocklock.NewStockLockApp(txRepo, lockRepo, batchRepo, nil, nil)
	if err := app.Release(context.Background(), 3, &model.ReleaseLockRequest{Reason: "order cancelled"}); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
}

func TestStockLockApp_Release_WrongScope(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	lockRepo := stocklockmocks.NewStockLockRepository(t)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("RollbackTx", tx).Return(nil).Once()
	lockRepo.On("GetLockForUpdateTx", mock.Anything, tx, uint64(3)).Return(&model.StockLock{
		ID:     3,
		Scope:  constant.LockScopeOperational,
		Status: constant.LockStatusActive,
	}, nil).Once()

	app := appstocklock.NewStockLockApp(txRepo, lockRepo, batchmocks.NewBatchRepository(t), nil, nil)
	err := app.Release(context.Background(), 3, &model.ReleaseLockRequest{Reason: "nope"})
	if !cerr.IsType(err, constant.ErrInvalidRequest) {
		t.Fatalf("Release() error = %v, want invalid request", err)
	}
}

func TestStockLockApp_Complete(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	lockRepo := stocklockmocks.NewStockLockRepository(t)
	batchRepo := batchmocks.NewBatchRepository(t)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()
	expectTerminate(tx, lockRepo, batchRepo, &model.StockLock{
		ID:     4,
		Scope:  constant.LockScopeOperational,
		Status: constant.LockStatusActive,
	}, constant.LockStatusCompleted)

	app := appstocklock.NewStockLockApp(txRepo, lockRepo, batchRepo, nil, nil)
	if err := app.Complete(context.Background(), 4, &model.CompleteLockRequest{Notes: "counted", Result: "match"}); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
}

func TestStockLockApp_Terminate_TerminalStates(t *testing.T) {
	tests := []struct {
		name    string
		status  constant.LockStatus
		errCode constant.ErrorType
	}{
		{name: "expired lock", status: constant.LockStatusExpired, errCode: constant.ErrLockExpired},
		{name: "released lock", status: constant.LockStatusReleased, errCode: constant.ErrInvalidStatus},
		{name: "completed lock", status: constant.LockStatusCompleted, errCode: constant.ErrInvalidStatus},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			txRepo := txmocks.NewTxRepository(t)
			lockRepo := stocklockmocks.NewStockLockRepository(t)

			tx := &sqlx.Tx{}
			txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
			txRepo.On("RollbackTx", tx).Return(nil).Once()
			lockRepo.On("GetLockForUpdateTx", mock.Anything, tx, uint64(5)).Return(&model.StockLock{
				ID:     5,
				Scope:  constant.LockScopeBusiness,
				Status: tt.status,
			}, nil).Once()

			app := appstocklock.NewStockLockApp(txRepo, lockRepo, batchmocks.NewBatchRepository(t), nil, nil)
			err := app.Release(context.Background(), 5, &model.ReleaseLockRequest{Reason: "late"})
			if !cerr.IsType(err, tt.errCode) {
				t.Fatalf("Release() error = %v, want type %d", err, tt.errCode)
			}
		})
	}
}

func TestStockLockApp_SweepExpired(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	lockRepo := stocklockmocks.NewStockLockRepository(t)
	batchRepo := batchmocks.NewBatchRepository(t)

	lockRepo.On("FindExpiredActiveIDs", mock.Anything, mock.Anything, 100).Return([]uint64{1, 2}, nil).Once()

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Twice()

	// Lock 1 is still active and gets expired; sweeping ignores scope.
	expectTerminate(tx, lockRepo, batchRepo, &model.StockLock{
		ID:     1,
		Scope:  constant.LockScopeOperational,
		Status: constant.LockStatusActive,
	}, constant.LockStatusExpired)
	txRepo.On("CommitTx", tx).Return(nil).Once()

	// Lock 2 was released concurrently, so the sweep skips it.
	lockRepo.On("GetLockForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.StockLock{
		ID:     2,
		Scope:  constant.LockScopeBusiness,
		Status: constant.LockStatusReleased,
	}, nil).Once()
	txRepo.On("RollbackTx", tx).Return(nil).Once()

	app := appstocklock.NewStockLockApp(txRepo, lockRepo, batchRepo, nil, nil)
	swept, err := app.SweepExpired(context.Background())
	if err != nil {
		t.Fatalf("SweepExpired() error = %v", err)
	}
	if swept != 1 {
		t.Fatalf("SweepExpired() swept = %d, want 1", swept)
	}
}
