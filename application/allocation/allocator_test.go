package allocation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/application/allocation"
	"github.com/muhammadheryan/stock-ledger/constant"
	batchmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/batch"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/stretchr/testify/mock"
)

func eligible(id uint64, available int64, createdAt time.Time) model.Batch {
	return model.Batch{
		ID:        id,
		SKU:       "SKU-001",
		Status:    constant.BatchStatusAvailable,
		Quantity:  available,
		Available: available,
		CreatedAt: createdAt,
	}
}

func TestAllocator_AllocateTx(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	type args struct {
		req *model.AllocationRequest
	}
	tests := []struct {
		name      string
		args      args
		mockCall  func(f *batchmocks.BatchRepository)
		wantDraws []model.AllocationDraw
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: fifo draw spans two batches",
			args: args{
				req: &model.AllocationRequest{
					SKU:      "SKU-001",
					Quantity: 7,
					Intent:   constant.IntentReserve,
					Strategy: constant.StrategyFIFO,
				},
			},
			mockCall: func(f *batchmocks.BatchRepository) {
				f.On("FindEligibleBatchesTx", mock.Anything, mock.Anything, "SKU-001", (*model.BatchFilter)(nil)).Return([]model.Batch{
					eligible(2, 5, base.Add(time.Hour)),
					eligible(1, 5, base),
				}, nil).Once()

				f.On("UpdateQuantitiesTx", mock.Anything, mock.Anything, mock.MatchedBy(func(b *model.Batch) bool {
					return b.ID == 1 && b.Available == 0 && b.Reserved == 5
				})).Return(nil).Once()
				f.On("UpdateQuantitiesTx", mock.Anything, mock.Anything, mock.MatchedBy(func(b *model.Batch) bool {
					return b.ID == 2 && b.Available == 3 && b.Reserved == 2
				})).Return(nil).Once()
			},
			wantDraws: []model.AllocationDraw{
				{BatchID: 1, Quantity: 5},
				{BatchID: 2, Quantity: 2},
			},
		},
		{
			name: "success: exact fit consumes the whole pool",
			args: args{
				req: &model.AllocationRequest{
					SKU:      "SKU-001",
					Quantity: 10,
					Intent:   constant.IntentConsume,
					Strategy: constant.StrategyFIFO,
				},
			},
			mockCall: func(f *batchmocks.BatchRepository) {
				f.On("FindEligibleBatchesTx", mock.Anything, mock.Anything, "SKU-001", (*model.BatchFilter)(nil)).Return([]model.Batch{
					eligible(1, 6, base),
					eligible(2, 4, base.Add(time.Hour)),
				}, nil).Once()

				f.On("UpdateQuantitiesTx", mock.Anything, mock.Anything, mock.MatchedBy(func(b *model.Batch) bool {
					return b.ID == 1 && b.Available == 0 && b.Status == constant.BatchStatusConsumed
				})).Return(nil).Once()
				f.On("UpdateQuantitiesTx", mock.Anything, mock.Anything, mock.MatchedBy(func(b *model.Batch) bool {
					return b.ID == 2 && b.Available == 0 && b.Status == constant.BatchStatusConsumed
				})).Return(nil).Once()
			},
			wantDraws: []model.AllocationDraw{
				{BatchID: 1, Quantity: 6},
				{BatchID: 2, Quantity: 4},
			},
		},
		{
			name: "error: insufficient stock fails fast without writes",
			args: args{
				req: &model.AllocationRequest{
					SKU:      "SKU-001",
					Quantity: 7,
					Intent:   constant.IntentReserve,
				},
			},
			mockCall: func(f *batchmocks.BatchRepository) {
				f.On("FindEligibleBatchesTx", mock.Anything, mock.Anything, "SKU-001", (*model.BatchFilter)(nil)).Return([]model.Batch{
					eligible(1, 3, base),
					eligible(2, 2, base.Add(time.Hour)),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: zero quantity",
			args: args{
				req: &model.AllocationRequest{
					SKU:      "SKU-001",
					Quantity: 0,
					Intent:   constant.IntentReserve,
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name: "error: unknown intent",
			args: args{
				req: &model.AllocationRequest{
					SKU:      "SKU-001",
					Quantity: 1,
					Intent:   constant.AllocationIntent("peek"),
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown strategy",
			args: args{
				req: &model.AllocationRequest{
					SKU:      "SKU-001",
					Quantity: 1,
					Intent:   constant.IntentReserve,
					Strategy: constant.AllocationStrategy("cheapest"),
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: repository failure propagates",
			args: args{
				req: &model.AllocationRequest{
					SKU:      "SKU-001",
					Quantity: 1,
					Intent:   constant.IntentReserve,
				},
			},
			mockCall: func(f *batchmocks.BatchRepository) {
				f.On("FindEligibleBatchesTx", mock.Anything, mock.Anything, "SKU-001", (*model.BatchFilter)(nil)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			batchRepo := batchmocks.NewBatchRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(batchRepo)
			}
			allocator := allocation.NewAllocator(batchRepo)
			tx := &sqlx.Tx{}

			got, facts, err := allocator.AllocateTx(context.Background(), tx, tt.args.req, "tester")
			if (err != nil) != tt.wantErr {
				t.Fatalf("AllocateTx() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.errCode != 0 && !cerr.IsType(err, tt.errCode) {
					t.Fatalf("error = %v, want type %d", err, tt.errCode)
				}
				return
			}

			if got.Total != tt.args.req.Quantity {
				t.Fatalf("total = %d, want %d", got.Total, tt.args.req.Quantity)
			}
			if len(got.Draws) != len(tt.wantDraws) {
				t.Fatalf("draws = %v, want %v", got.Draws, tt.wantDraws)
			}
			var sum int64
			for i, d := range got.Draws {
				if d != tt.wantDraws[i] {
					t.Fatalf("draw[%d] = %v, want %v", i, d, tt.wantDraws[i])
				}
				sum += d.Quantity
			}
			if sum != tt.args.req.Quantity {
				t.Fatalf("draw sum = %d, want %d", sum, tt.args.req.Quantity)
			}
			if len(facts) != len(tt.wantDraws) {
				t.Fatalf("facts = %d, want %d", len(facts), len(tt.wantDraws))
			}
			for i, fact := range facts {
				if fact.BatchID != tt.wantDraws[i].BatchID || fact.Quantity != tt.wantDraws[i].Quantity {
					t.Fatalf("fact[%d] = %+v, want draw %v", i, fact, tt.wantDraws[i])
				}
				if fact.ID == "" || fact.Operator != "tester" {
					t.Fatalf("fact[%d] missing id or operator: %+v", i, fact)
				}
			}
		})
	}
}

func TestAllocator_AllocateTx_InsufficientStockDetail(t *testing.T) {
	batchRepo := batchmocks.NewBatchRepository(t)
	batchRepo.On("FindEligibleBatchesTx", mock.Anything, mock.Anything, "SKU-001", (*model.BatchFilter)(nil)).Return([]model.Batch{
		eligible(1, 3, time.Now()),
	}, nil).Once()

	allocator := allocation.NewAllocator(batchRepo)
	_, _, err := allocator.AllocateTx(context.Background(), &sqlx.Tx{}, &model.AllocationRequest{
		SKU:      "SKU-001",
		Quantity: 9,
		Intent:   constant.IntentReserve,
	}, "tester")

	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	detail, ok := ce.Details().(model.InsufficientStockDetail)
	if !ok {
		t.Fatalf("details type = %T, want InsufficientStockDetail", ce.Details())
	}
	if detail.Requested != 9 || detail.Available != 3 {
		t.Fatalf("detail = %+v, want requested 9 available 3", detail)
	}
}

func TestAllocator_AllocateTx_FEFODrawsSoonestExpiryFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	soon := base.Add(24 * time.Hour)
	later := base.Add(72 * time.Hour)

	dated := func(id uint64, available int64, expiry *time.Time) model.Batch {
		b := eligible(id, available, base)
		b.ExpiryDate = expiry
		return b
	}

	batchRepo := batchmocks.NewBatchRepository(t)
	batchRepo.On("FindEligibleBatchesTx", mock.Anything, mock.Anything, "SKU-001", (*model.BatchFilter)(nil)).Return([]model.Batch{
		dated(1, 5, nil),
		dated(2, 5, &later),
		dated(3, 5, &soon),
	}, nil).Once()
	batchRepo.On("UpdateQuantitiesTx", mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	allocator := allocation.NewAllocator(batchRepo)
	got, _, err := allocator.AllocateTx(context.Background(), &sqlx.Tx{}, &model.AllocationRequest{
		SKU:      "SKU-001",
		Quantity: 8,
		Intent:   constant.IntentReserve,
		Strategy: constant.StrategyFEFO,
	}, "tester")
	if err != nil {
		t.Fatalf("AllocateTx() error = %v", err)
	}

	want := []model.AllocationDraw{
		{BatchID: 3, Quantity: 5},
		{BatchID: 2, Quantity: 3},
	}
	if len(got.Draws) != len(want) {
		t.Fatalf("draws = %v, want %v", got.Draws, want)
	}
	for i := range want {
		if got.Draws[i] != want[i] {
			t.Fatalf("draws = %v, want %v", got.Draws, want)
		}
	}
}
