package reservation

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
)

type ReservationRepository interface {
	InsertReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) (uint64, error)
	GetReservationForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Reservation, error)
	GetReservationBatchesTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) ([]model.ReservationBatch, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error
	FindExpiredPendingIDs(ctx context.Context, now time.Time, limit int) ([]uint64, error)
	GetReservation(ctx context.Context, id uint64) (*model.Reservation, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewReservationRepository(conn *sqlx.DB) ReservationRepository {
	return &SQL{conn: conn}
}

const reservationColumns = "id, sku, quantity, type, business_id, status, operator, expires_at, confirmed_at, released_at, release_reason, notes, created_at, updated_at"

func (r *SQL) InsertReservationTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) (uint64, error) {
	q := "INSERT INTO reservation (sku, quantity, type, business_id, status, operator, expires_at, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"
	result, err := tx.ExecContext(ctx, q, res.SKU, res.Quantity, res.Type, res.BusinessID, res.Status, res.Operator, res.ExpiresAt, res.Notes)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	for _, rb := range res.Batches {
		if _, err := tx.ExecContext(ctx, "INSERT INTO reservation_batch (reservation_id, batch_id, quantity) VALUES (?, ?, ?)", id, rb.BatchID, rb.Quantity); err != nil {
			return 0, err
		}
	}
	return uint64(id), nil
}

func (r *SQL) GetReservationForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Reservation, error) {
	var res model.Reservation
	row := tx.QueryRowxContext(ctx, "SELECT "+reservationColumns+" FROM reservation WHERE id = ? FOR UPDATE", id)
	if err := row.StructScan(&res); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *SQL) GetReservationBatchesTx(ctx context.Context, tx *sqlx.Tx, reservationID uint64) ([]model.ReservationBatch, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT id, reservation_id, batch_id, quantity FROM reservation_batch WHERE reservation_id = ? ORDER BY batch_id", reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := make([]model.ReservationBatch, 0)
	for rows.Next() {
		var rb model.ReservationBatch
		if err := rows.StructScan(&rb); err != nil {
			return nil, err
		}
		batches = append(batches, rb)
	}
	return batches, rows.Err()
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	q := "UPDATE reservation SET status = ?, confirmed_at = ?, released_at = ?, release_reason = ?, updated_at = NOW() WHERE id = ?"
	_, err := tx.ExecContext(ctx, q, res.Status, res.ConfirmedAt, res.ReleasedAt, res.ReleaseReason, res.ID)
	return err
}

// FindExpiredPendingIDs returns ids of pending reservations past their expiry.
// Each id is re-checked under FOR UPDATE inside its own sweep transaction, so
// a stale entry here is just a no-op skip.
func (r *SQL) FindExpiredPendingIDs(ctx context.Context, now time.Time, limit int) ([]uint64, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT id FROM reservation WHERE status = ? AND expires_at <= ? ORDER BY expires_at LIMIT ?", constant.ReservationStatusPending, now, limit)
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

func (r *SQL) GetReservation(ctx context.Context, id uint64) (*model.Reservation, error) {
	var res model.Reservation
	row := r.conn.QueryRowxContext(ctx, "SELECT "+reservationColumns+" FROM reservation WHERE id = ?", id)
	if err := row.StructScan(&res); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.conn.QueryxContext(ctx, "SELECT id, reservation_id, batch_id, quantity FROM reservation_batch WHERE reservation_id = ? ORDER BY batch_id", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var rb model.ReservationBatch
		if err := rows.StructScan(&rb); err != nil {
			return nil, err
		}
		res.Batches = append(res.Batches, rb)
	}
	return &res, rows.Err()
}
