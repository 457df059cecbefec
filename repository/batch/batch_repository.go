package batch

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
)

type BatchRepository interface {
	InsertBatchTx(ctx context.Context, tx *sqlx.Tx, b *model.Batch) (uint64, error)
	GetBatchByNumberTx(ctx context.Context, tx *sqlx.Tx, batchNumber string) (*model.Batch, error)
	GetBatchForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Batch, error)
	GetBatchesForUpdateTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]model.Batch, error)
	FindEligibleBatchesTx(ctx context.Context, tx *sqlx.Tx, sku string, filter *model.BatchFilter) ([]model.Batch, error)
	UpdateQuantitiesTx(ctx context.Context, tx *sqlx.Tx, b *model.Batch) error
	GetBatch(ctx context.Context, id uint64) (*model.Batch, error)
	GetSKUAvailability(ctx context.Context, sku string) (*model.SKUAvailability, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewBatchRepository(conn *sqlx.DB) BatchRepository {
	return &SQL{conn: conn}
}

const batchColumns = "id, sku, batch_number, status, grade, quantity, available, reserved, locked, unit_cost, location, production_date, expiry_date, created_at, updated_at"

func (r *SQL) InsertBatchTx(ctx context.Context, tx *sqlx.Tx, b *model.Batch) (uint64, error) {
	q := "INSERT INTO batch (sku, batch_number, status, grade, quantity, available, reserved, locked, unit_cost, location, production_date, expiry_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	res, err := tx.ExecContext(ctx, q, b.SKU, b.BatchNumber, b.Status, b.Grade, b.Quantity, b.Available, b.Reserved, b.Locked, b.UnitCost, b.Location, b.ProductionDate, b.ExpiryDate)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetBatchByNumberTx(ctx context.Context, tx *sqlx.Tx, batchNumber string) (*model.Batch, error) {
	var b model.Batch
	row := tx.QueryRowxContext(ctx, "SELECT "+batchColumns+" FROM batch WHERE batch_number = ?", batchNumber)
	if err := row.StructScan(&b); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *SQL) GetBatchForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Batch, error) {
	var b model.Batch
	row := tx.QueryRowxContext(ctx, "SELECT "+batchColumns+" FROM batch WHERE id = ? FOR UPDATE", id)
	if err := row.StructScan(&b); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// GetBatchesForUpdateTx locks the given batch rows in ascending id order so
// concurrent multi-batch callers acquire row locks in the same sequence.
func (r *SQL) GetBatchesForUpdateTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) ([]model.Batch, error) {
	if len(ids) == 0 {
		return []model.Batch{}, nil
	}
	query, args, err := sqlx.In("SELECT "+batchColumns+" FROM batch WHERE id IN (?) ORDER BY id FOR UPDATE", ids)
	if err != nil {
		return nil, err
	}
	rows, err := tx.QueryxContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := make([]model.Batch, 0, len(ids))
	for rows.Next() {
		var b model.Batch
		if err := rows.StructScan(&b); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// FindEligibleBatchesTx locks and returns allocatable batches for the SKU.
// Rows come back in insertion order; the allocation strategy reorders them.
func (r *SQL) FindEligibleBatchesTx(ctx context.Context, tx *sqlx.Tx, sku string, filter *model.BatchFilter) ([]model.Batch, error) {
	var sb strings.Builder
	sb.WriteString("SELECT " + batchColumns + " FROM batch WHERE sku = ? AND status = ? AND available > 0")
	args := []interface{}{sku, constant.BatchStatusAvailable}

	if filter != nil {
		if filter.Location != "" {
			sb.WriteString(" AND location = ?")
			args = append(args, filter.Location)
		}
		if filter.Grade != "" {
			sb.WriteString(" AND grade = ?")
			args = append(args, filter.Grade)
		}
		if filter.ExcludeExpired {
			sb.WriteString(" AND (expiry_date IS NULL OR expiry_date > ?)")
			args = append(args, time.Now())
		}
	}
	sb.WriteString(" ORDER BY id FOR UPDATE")

	rows, err := tx.QueryxContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := make([]model.Batch, 0)
	for rows.Next() {
		var b model.Batch
		if err := rows.StructScan(&b); err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

func (r *SQL) UpdateQuantitiesTx(ctx context.Context, tx *sqlx.Tx, b *model.Batch) error {
	q := "UPDATE batch SET status = ?, quantity = ?, available = ?, reserved = ?, locked = ?, updated_at = NOW() WHERE id = ?"
	_, err := tx.ExecContext(ctx, q, b.Status, b.Quantity, b.Available, b.Reserved, b.Locked, b.ID)
	return err
}

func (r *SQL) GetBatch(ctx context.Context, id uint64) (*model.Batch, error) {
	var b model.Batch
	row := r.conn.QueryRowxContext(ctx, "SELECT "+batchColumns+" FROM batch WHERE id = ?", id)
	if err := row.StructScan(&b); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *SQL) GetSKUAvailability(ctx context.Context, sku string) (*model.SKUAvailability, error) {
	var a model.SKUAvailability
	q := "SELECT ? as sku, COALESCE(SUM(available),0) as available, COALESCE(SUM(reserved),0) as reserved, COALESCE(SUM(locked),0) as locked, COUNT(*) as batch_count FROM batch WHERE sku = ? AND status = ?"
	row := r.conn.QueryRowxContext(ctx, q, sku, sku, constant.BatchStatusAvailable)
	if err := row.StructScan(&a); err != nil {
		return nil, err
	}
	return &a, nil
}
