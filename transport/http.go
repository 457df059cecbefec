package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/stock-ledger/application/allocation"
	appbatch "github.com/muhammadheryan/stock-ledger/application/batch"
	appreservation "github.com/muhammadheryan/stock-ledger/application/reservation"
	appstocklock "github.com/muhammadheryan/stock-ledger/application/stocklock"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	validatorx "github.com/muhammadheryan/stock-ledger/utils/validator"
	"github.com/muhammadheryan/stock-ledger/worker"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	AllocationApp  allocation.AllocationApp
	BatchApp       appbatch.BatchApp
	ReservationApp appreservation.ReservationApp
	StockLockApp   appstocklock.StockLockApp
	Sweeper        *worker.Sweeper
}

func NewTransport(jwtSecret, internalAPIKey string, allocationApp allocation.AllocationApp, batchApp appbatch.BatchApp, reservationApp appreservation.ReservationApp, stockLockApp appstocklock.StockLockApp, sweeper *worker.Sweeper) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		AllocationApp:  allocationApp,
		BatchApp:       batchApp,
		ReservationApp: reservationApp,
		StockLockApp:   stockLockApp,
		Sweeper:        sweeper,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Allocation surface
	router.HandleFunc("/v1/allocations", rh.Allocate).Methods(http.MethodPost)

	// Batches
	router.HandleFunc("/v1/batches", rh.ReceiveBatch).Methods(http.MethodPost)
	router.HandleFunc("/v1/batches/deduct", rh.DeductStock).Methods(http.MethodPost)
	router.HandleFunc("/v1/batches/{id}", rh.GetBatch).Methods(http.MethodGet)
	router.HandleFunc("/v1/batches/{id}/adjust", rh.AdjustBatch).Methods(http.MethodPost)
	router.HandleFunc("/v1/skus/{sku}/availability", rh.GetAvailability).Methods(http.MethodGet)

	// Reservations
	router.HandleFunc("/v1/reservations", rh.CreateReservation).Methods(http.MethodPost)
	router.HandleFunc("/v1/reservations/{id}", rh.GetReservation).Methods(http.MethodGet)
	router.HandleFunc("/v1/reservations/{id}/confirm", rh.ConfirmReservation).Methods(http.MethodPost)
	router.HandleFunc("/v1/reservations/{id}/release", rh.ReleaseReservation).Methods(http.MethodPost)

	// Locks
	router.HandleFunc("/v1/locks", rh.CreateLock).Methods(http.MethodPost)
	router.HandleFunc("/v1/locks/{id}", rh.GetLock).Methods(http.MethodGet)
	router.HandleFunc("/v1/locks/{id}/release", rh.ReleaseLock).Methods(http.MethodPost)
	router.HandleFunc("/v1/locks/{id}/complete", rh.CompleteLock).Methods(http.MethodPost)
	router.HandleFunc("/v1/locks/{id}/cancel", rh.CancelLock).Methods(http.MethodPost)

	// Scheduler entry point for sweeping expired holds
	internal := router.PathPrefix("/internal").Subrouter()
	internal.HandleFunc("/v1/sweep", rh.Sweep).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(internalAPIKey))

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(jwtSecret))

	return router
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

// Allocate handler
// @Summary Allocate stock
// @Description Draw a requested quantity from eligible batches by strategy, all-or-nothing
// @Tags Allocation
// @Accept json
// @Produce json
// @Param request body model.AllocationRequest true "Allocation Request"
// @Success 200 {object} model.AllocationResult
// @Failure 409 {object} transport.apiResponse
// @Router /v1/allocations [post]
func (s *RestHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	var req model.AllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AllocationApp.Allocate(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReceiveBatch handler
// @Summary Receive an inbound batch
// @Tags Batch
// @Accept json
// @Produce json
// @Param request body model.ReceiveBatchRequest true "Receive Batch Request"
// @Success 200 {object} model.Batch
// @Router /v1/batches [post]
func (s *RestHandler) ReceiveBatch(w http.ResponseWriter, r *http.Request) {
	var req model.ReceiveBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BatchApp.ReceiveInbound(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetBatch handler
// @Summary Get batch detail
// @Tags Batch
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} model.Batch
// @Router /v1/batches/{id} [get]
func (s *RestHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BatchApp.GetBatch(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AdjustBatch handler
// @Summary Adjust batch stock after a physical count
// @Tags Batch
// @Accept json
// @Produce json
// @Param id path int true "Batch ID"
// @Param request body model.AdjustBatchRequest true "Adjust Request"
// @Success 200 {object} model.Batch
// @Router /v1/batches/{id}/adjust [post]
func (s *RestHandler) AdjustBatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AdjustBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BatchApp.AdjustStock(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeductStock handler
// @Summary Consume stock for outbound shipment
// @Tags Batch
// @Accept json
// @Produce json
// @Param request body model.DeductStockRequest true "Deduct Request"
// @Success 200 {object} model.AllocationResult
// @Failure 409 {object} transport.apiResponse
// @Router /v1/batches/deduct [post]
func (s *RestHandler) DeductStock(w http.ResponseWriter, r *http.Request) {
	var req model.DeductStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BatchApp.DeductStock(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetAvailability handler
// @Summary Per-SKU availability summary
// @Tags Batch
// @Produce json
// @Param sku path string true "SKU"
// @Success 200 {object} model.SKUAvailability
// @Router /v1/skus/{sku}/availability [get]
func (s *RestHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	sku := mux.Vars(r)["sku"]
	if sku == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.BatchApp.GetAvailability(r.Context(), sku)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateReservation handler
// @Summary Create a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body model.CreateReservationRequest true "Create Reservation Request"
// @Success 200 {object} model.CreateReservationResponse
// @Failure 409 {object} transport.apiResponse
// @Router /v1/reservations [post]
func (s *RestHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReservationApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetReservation handler
// @Summary Get reservation detail
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} model.Reservation
// @Router /v1/reservations/{id} [get]
func (s *RestHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReservationApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ConfirmReservation handler
// @Summary Confirm a pending reservation
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} transport.apiResponse
// @Router /v1/reservations/{id}/confirm [post]
func (s *RestHandler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ReservationApp.Confirm(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ReleaseReservation handler
// @Summary Release a reservation and return its stock
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body model.ReleaseReservationRequest true "Release Request"
// @Success 200 {object} transport.apiResponse
// @Router /v1/reservations/{id}/release [post]
func (s *RestHandler) ReleaseReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ReleaseReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ReservationApp.Release(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CreateLock handler
// @Summary Create a stock lock
// @Tags Lock
// @Accept json
// @Produce json
// @Param request body model.CreateLockRequest true "Create Lock Request"
// @Success 200 {object} model.CreateLockResponse
// @Failure 409 {object} transport.apiResponse
// @Router /v1/locks [post]
func (s *RestHandler) CreateLock(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockLockApp.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetLock handler
// @Summary Get lock detail
// @Tags Lock
// @Produce json
// @Param id path int true "Lock ID"
// @Success 200 {object} model.StockLock
// @Router /v1/locks/{id} [get]
func (s *RestHandler) GetLock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockLockApp.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReleaseLock handler
// @Summary Release a business lock
// @Tags Lock
// @Accept json
// @Produce json
// @Param id path int true "Lock ID"
// @Param request body model.ReleaseLockRequest true "Release Request"
// @Success 200 {object} transport.apiResponse
// @Router /v1/locks/{id}/release [post]
func (s *RestHandler) ReleaseLock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ReleaseLockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.StockLockApp.Release(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CompleteLock handler
// @Summary Complete an operational lock after processing
// @Tags Lock
// @Accept json
// @Produce json
// @Param id path int true "Lock ID"
// @Param request body model.CompleteLockRequest true "Complete Request"
// @Success 200 {object} transport.apiResponse
// @Router /v1/locks/{id}/complete [post]
func (s *RestHandler) CompleteLock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CompleteLockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.StockLockApp.Complete(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// CancelLock handler
// @Summary Cancel an operational lock
// @Tags Lock
// @Accept json
// @Produce json
// @Param id path int true "Lock ID"
// @Param request body model.ReleaseLockRequest true "Cancel Request"
// @Success 200 {object} transport.apiResponse
// @Router /v1/locks/{id}/cancel [post]
func (s *RestHandler) CancelLock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ReleaseLockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.StockLockApp.Cancel(r.Context(), id, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// Sweep handler
// @Summary Sweep expired reservations and locks
// @Description Idempotent, safe to call from multiple schedulers concurrently
// @Tags Internal
// @Produce json
// @Success 200 {object} transport.apiResponse
// @Router /internal/v1/sweep [post]
func (s *RestHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	reservations, locks := s.Sweeper.SweepOnce(r.Context())

	writeSuccess(w, map[string]int{
		"reservations_expired": reservations,
		"locks_expired":        locks,
	})
}
