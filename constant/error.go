package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInsufficientStock
	ErrInvalidQuantity
	ErrInvalidStatus
	ErrReservationExpired
	ErrLockExpired
	ErrDuplicateBatchNumber
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrInsufficientStock:    "insufficient stock",
	ErrInvalidQuantity:      "invalid quantity",
	ErrInvalidStatus:        "invalid status transition",
	ErrReservationExpired:   "reservation already expired",
	ErrLockExpired:          "lock already expired",
	ErrDuplicateBatchNumber: "batch number already exists",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrInsufficientStock:    http.StatusConflict,
	ErrInvalidQuantity:      http.StatusBadRequest,
	ErrInvalidStatus:        http.StatusConflict,
	ErrReservationExpired:   http.StatusConflict,
	ErrLockExpired:          http.StatusConflict,
	ErrDuplicateBatchNumber: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrInsufficientStock:    "0005",
	ErrInvalidQuantity:      "0006",
	ErrInvalidStatus:        "0007",
	ErrReservationExpired:   "0008",
	ErrLockExpired:          "0009",
	ErrDuplicateBatchNumber: "0010",
}
