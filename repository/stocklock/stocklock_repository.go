package stocklock

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
)

type StockLockRepository interface {
	InsertLockTx(ctx context.Context, tx *sqlx.Tx, lock *model.StockLock) (uint64, error)
	GetLockForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.StockLock, error)
	GetLockBatchesTx(ctx context.Context, tx *sqlx.Tx, lockID uint64) ([]model.StockLockBatch, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, lock *model.StockLock) error
	FindExpiredActiveIDs(ctx context.Context, now time.Time, limit int) ([]uint64, error)
	GetLock(ctx context.Context, id uint64) (*model.StockLock, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockLockRepository(conn *sqlx.DB) StockLockRepository {
	return &SQL{conn: conn}
}

const lockColumns = "id, scope, type, status, reason, created_by, released_by, total_quantity, expires_at, released_at, notes, metadata, created_at, updated_at"

func (r *SQL) InsertLockTx(ctx context.Context, tx *sqlx.Tx, lock *model.StockLock) (uint64, error) {
	q := "INSERT INTO stock_lock (scope, type, status, reason, created_by, total_quantity, expires_at, metadata) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	result, err := tx.ExecContext(ctx, q, lock.Scope, lock.Type, lock.Status, lock.Reason, lock.CreatedBy, lock.TotalQuantity, lock.ExpiresAt, lock.Metadata)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	for _, lb := range lock.Batches {
		if _, err := tx.ExecContext(ctx, "INSERT INTO stock_lock_batch (lock_id, batch_id, quantity) VALUES (?, ?, ?)", id, lb.BatchID, lb.Quantity); err != nil {
			return 0, err
		}
	}
	return uint64(id), nil
}

func (r *SQL) GetLockForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.StockLock, error) {
	var lock model.StockLock
	row := tx.QueryRowxContext(ctx, "SELECT "+lockColumns+" FROM stock_lock WHERE id = ? FOR UPDATE", id)
	if err := row.StructScan(&lock); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &lock, nil
}

func (r *SQL) GetLockBatchesTx(ctx context.Context, tx *sqlx.Tx, lockID uint64) ([]model.StockLockBatch, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT id, lock_id, batch_id, quantity FROM stock_lock_batch WHERE lock_id = ? ORDER BY batch_id", lockID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := make([]model.StockLockBatch, 0)
	for rows.Next() {
		var lb model.StockLockBatch
		if err := rows.StructScan(&lb); err != nil {
			return nil, err
		}
		batches = append(batches, lb)
	}
	return batches, rows.Err()
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, lock *model.StockLock) error {
	q := "UPDATE stock_lock SET status = ?, released_by = ?, released_at = ?, notes = ?, metadata = ?, updated_at = NOW() WHERE id = ?"
	_, err := tx.ExecContext(ctx, q, lock.Status, lock.ReleasedBy, lock.ReleasedAt, lock.Notes, lock.Metadata, lock.ID)
	return err
}

// FindExpiredActiveIDs lists active locks past their expiry; locks with no
// expiry never show up here.
func (r *SQL) FindExpiredActiveIDs(ctx context.Context, now time.Time, limit int) ([]uint64, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT id FROM stock_lock WHERE status = ? AND expires_at IS NOT NULL AND expires_at <= ? ORDER BY expires_at LIMIT ?", constant.LockStatusActive, now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SQL) GetLock(ctx context.Context, id uint64) (*model.StockLock, error) {
	var lock model.StockLock
	row := r.conn.QueryRowxContext(ctx, "SELECT "+lockColumns+" FROM stock_lock WHERE id = ?", id)
	if err := row.StructScan(&lock); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.conn.QueryxContext(ctx, "SELECT id, lock_id, batch_id, quantity FROM stock_lock_batch WHERE lock_id = ? ORDER BY batch_id", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var lb model.StockLockBatch
		if err := rows.StructScan(&lb); err != nil {
			return nil, err
		}
		lock.Batches = append(lock.Batches, lb)
	}
	return &lock, rows.Err()
}
