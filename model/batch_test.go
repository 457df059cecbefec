package model_test

import (
	"math"
	"testing"
	"time"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
)

func checkInvariant(t *testing.T, b *model.Batch) {
	t.Helper()
	if b.Available < 0 || b.Reserved < 0 || b.Locked < 0 {
		t.Fatalf("negative bucket: available=%d reserved=%d locked=%d", b.Available, b.Reserved, b.Locked)
	}
	if b.OnHand() > b.Quantity {
		t.Fatalf("on hand %d exceeds quantity %d", b.OnHand(), b.Quantity)
	}
}

func availableBatch(quantity, available, reserved, locked int64) *model.Batch {
	return &model.Batch{
		ID:        1,
		SKU:       "SKU-001",
		Status:    constant.BatchStatusAvailable,
		Quantity:  quantity,
		Available: available,
		Reserved:  reserved,
		Locked:    locked,
	}
}

func TestBatch_Receive(t *testing.T) {
	tests := []struct {
		name    string
		batch   *model.Batch
		qty     int64
		wantErr constant.ErrorType
	}{
		{
			name:  "success: adds to quantity and available",
			batch: availableBatch(10, 4, 3, 3),
			qty:   5,
		},
		{
			name:    "error: zero quantity",
			batch:   availableBatch(10, 10, 0, 0),
			qty:     0,
			wantErr: constant.ErrInvalidQuantity,
		},
		{
			name:    "error: negative quantity",
			batch:   availableBatch(10, 10, 0, 0),
			qty:     -1,
			wantErr: constant.ErrInvalidQuantity,
		},
		{
			name:    "error: overflow guard",
			batch:   availableBatch(math.MaxInt64-2, 1, 0, 0),
			qty:     5,
			wantErr: constant.ErrInvalidQuantity,
		},
		{
			name: "error: expired batch",
			batch: &model.Batch{
				Status:    constant.BatchStatusExpired,
				Quantity:  10,
				Available: 10,
			},
			qty:     5,
			wantErr: constant.ErrInvalidStatus,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			before := *tt.batch
			err := tt.batch.Receive(tt.qty)
			if tt.wantErr != 0 {
				if !cerr.IsType(err, tt.wantErr) {
					t.Fatalf("Receive() error = %v, want type %d", err, tt.wantErr)
				}
				if *tt.batch != before {
					t.Fatal("batch mutated on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Receive() error = %v", err)
			}
			if tt.batch.Quantity != before.Quantity+tt.qty {
				t.Fatalf("quantity = %d, want %d", tt.batch.Quantity, before.Quantity+tt.qty)
			}
			if tt.batch.Available != before.Available+tt.qty {
				t.Fatalf("available = %d, want %d", tt.batch.Available, before.Available+tt.qty)
			}
			checkInvariant(t, tt.batch)
		})
	}
}

func TestBatch_ReserveUnreserveRoundTrip(t *testing.T) {
	b := availableBatch(10, 10, 0, 0)

	if err := b.ReserveQty(6); err != nil {
		t.Fatalf("ReserveQty() error = %v", err)
	}
	if b.Available != 4 || b.Reserved != 6 {
		t.Fatalf("after reserve: available=%d reserved=%d", b.Available, b.Reserved)
	}
	checkInvariant(t, b)

	if err := b.UnreserveQty(6); err != nil {
		t.Fatalf("UnreserveQty() error = %v", err)
	}
	if b.Available != 10 || b.Reserved != 0 {
		t.Fatalf("after unreserve: available=%d reserved=%d", b.Available, b.Reserved)
	}
	checkInvariant(t, b)
}

func TestBatch_ReserveQty_Insufficient(t *testing.T) {
	b := availableBatch(10, 3, 7, 0)
	if err := b.ReserveQty(4); !cerr.IsType(err, constant.ErrInsufficientStock) {
		t.Fatalf("ReserveQty() error = %v, want insufficient stock", err)
	}
	if b.Available != 3 || b.Reserved != 7 {
		t.Fatal("batch mutated on error")
	}
}

func TestBatch_LockUnlockRoundTrip(t *testing.T) {
	b := availableBatch(10, 10, 0, 0)

	if err := b.LockQty(4); err != nil {
		t.Fatalf("LockQty() error = %v", err)
	}
	if b.Available != 6 || b.Locked != 4 {
		t.Fatalf("after lock: available=%d locked=%d", b.Available, b.Locked)
	}
	checkInvariant(t, b)

	if err := b.UnlockQty(4); err != nil {
		t.Fatalf("UnlockQty() error = %v", err)
	}
	if b.Available != 10 || b.Locked != 0 {
		t.Fatalf("after unlock: available=%d locked=%d", b.Available, b.Locked)
	}
	checkInvariant(t, b)
}

func TestBatch_UnlockQty_MoreThanLocked(t *testing.T) {
	b := availableBatch(10, 6, 0, 4)
	if err := b.UnlockQty(5); !cerr.IsType(err, constant.ErrInvalidQuantity) {
		t.Fatalf("UnlockQty() error = %v, want invalid quantity", err)
	}
}

func TestBatch_ConsumeQty(t *testing.T) {
	tests := []struct {
		name       string
		batch      *model.Batch
		qty        int64
		from       constant.ConsumeFrom
		wantErr    constant.ErrorType
		wantStatus constant.BatchStatus
	}{
		{
			name:       "success: consume from available",
			batch:      availableBatch(10, 10, 0, 0),
			qty:        3,
			from:       constant.ConsumeFromAvailable,
			wantStatus: constant.BatchStatusAvailable,
		},
		{
			name:       "success: consume from reserved leaves quantity untouched",
			batch:      availableBatch(10, 4, 6, 0),
			qty:        6,
			from:       constant.ConsumeFromReserved,
			wantStatus: constant.BatchStatusAvailable,
		},
		{
			name:       "success: draining the batch marks it consumed",
			batch:      availableBatch(10, 2, 0, 0),
			qty:        2,
			from:       constant.ConsumeFromAvailable,
			wantStatus: constant.BatchStatusConsumed,
		},
		{
			name:    "error: bucket too small",
			batch:   availableBatch(10, 2, 8, 0),
			qty:     3,
			from:    constant.ConsumeFromAvailable,
			wantErr: constant.ErrInsufficientStock,
		},
		{
			name:    "error: unknown bucket",
			batch:   availableBatch(10, 10, 0, 0),
			qty:     1,
			from:    constant.ConsumeFrom("nope"),
			wantErr: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			before := *tt.batch
			err := tt.batch.ConsumeQty(tt.qty, tt.from)
			if tt.wantErr != 0 {
				if !cerr.IsType(err, tt.wantErr) {
					t.Fatalf("ConsumeQty() error = %v, want type %d", err, tt.wantErr)
				}
				if *tt.batch != before {
					t.Fatal("batch mutated on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ConsumeQty() error = %v", err)
			}
			if tt.batch.Quantity != before.Quantity {
				t.Fatalf("quantity changed: %d -> %d", before.Quantity, tt.batch.Quantity)
			}
			if got := tt.batch.Consumed(); got != before.Quantity-before.OnHand()+tt.qty {
				t.Fatalf("consumed = %d, want %d", got, before.Quantity-before.OnHand()+tt.qty)
			}
			if tt.batch.Status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", tt.batch.Status, tt.wantStatus)
			}
			checkInvariant(t, tt.batch)
		})
	}
}

func TestBatch_Adjust(t *testing.T) {
	tests := []struct {
		name          string
		batch         *model.Batch
		delta         int64
		wantErr       constant.ErrorType
		wantQuantity  int64
		wantAvailable int64
	}{
		{
			name:          "positive delta grows quantity and available",
			batch:         availableBatch(10, 8, 2, 0),
			delta:         5,
			wantQuantity:  15,
			wantAvailable: 13,
		},
		{
			name:          "negative delta reduces available only",
			batch:         availableBatch(10, 8, 2, 0),
			delta:         -3,
			wantQuantity:  10,
			wantAvailable: 5,
		},
		{
			name:    "error: zero delta",
			batch:   availableBatch(10, 8, 2, 0),
			delta:   0,
			wantErr: constant.ErrInvalidQuantity,
		},
		{
			name:    "error: negative delta below available",
			batch:   availableBatch(10, 2, 8, 0),
			delta:   -3,
			wantErr: constant.ErrInvalidQuantity,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.batch.Adjust(tt.delta)
			if tt.wantErr != 0 {
				if !cerr.IsType(err, tt.wantErr) {
					t.Fatalf("Adjust() error = %v, want type %d", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Adjust() error = %v", err)
			}
			if tt.batch.Quantity != tt.wantQuantity {
				t.Fatalf("quantity = %d, want %d", tt.batch.Quantity, tt.wantQuantity)
			}
			if tt.batch.Available != tt.wantAvailable {
				t.Fatalf("available = %d, want %d", tt.batch.Available, tt.wantAvailable)
			}
			checkInvariant(t, tt.batch)
		})
	}
}

func TestBatch_IsExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	if b := (&model.Batch{ExpiryDate: &past}); !b.IsExpired(now) {
		t.Fatal("past expiry should report expired")
	}
	if b := (&model.Batch{ExpiryDate: &future}); b.IsExpired(now) {
		t.Fatal("future expiry should not report expired")
	}
	if b := (&model.Batch{}); b.IsExpired(now) {
		t.Fatal("nil expiry should never report expired")
	}
}
