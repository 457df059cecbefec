package allocation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/application/allocation"
	"github.com/muhammadheryan/stock-ledger/constant"
	allocatormocks "github.com/muhammadheryan/stock-ledger/mocks/application/allocation"
	txmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/tx"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestAllocationApp_Allocate(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		allocator *allocatormocks.Allocator
	}
	req := &model.AllocationRequest{
		SKU:      "SKU-001",
		Quantity: 4,
		Intent:   constant.IntentReserve,
	}
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: allocate and commit",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.allocator.On("AllocateTx", mock.Anything, tx, req, mock.Anything).Return(&model.AllocationResult{
					SKU:   "SKU-001",
					Draws: []model.AllocationDraw{{BatchID: 1, Quantity: 4}},
					Total: 4,
				}, []model.StockChange{}, nil).Once()
			},
		},
		{
			name: "error: insufficient stock rolls back and propagates",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.allocator.On("AllocateTx", mock.Anything, tx, req, mock.Anything).Return(nil, nil,
					cerr.SetCustomErrorWithDetails(constant.ErrInsufficientStock, model.InsufficientStockDetail{Requested: 4, Available: 1})).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: BeginTx returns error",
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: commit failure maps to internal",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(errors.New("commit error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.allocator.On("AllocateTx", mock.Anything, tx, req, mock.Anything).Return(&model.AllocationResult{
					SKU:   "SKU-001",
					Draws: []model.AllocationDraw{{BatchID: 1, Quantity: 4}},
					Total: 4,
				}, []model.StockChange{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:    txmocks.NewTxRepository(t),
				allocator: allocatormocks.NewAllocator(t),
			}
			tt.mockCall(f)
			app := allocation.NewAllocationApp(f.txRepo, f.allocator, nil, nil)

			got, err := app.Allocate(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Allocate() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.Total != 4 {
				t.Fatalf("Allocate() Total = %d, want 4", got.Total)
			}
		})
	}
}
