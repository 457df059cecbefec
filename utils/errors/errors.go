package errors

import "github.com/muhammadheryan/stock-ledger/constant"

type CustomError struct {
	errType constant.ErrorType
	details interface{}
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

// Details returns the structured payload attached to the error, if any
// (e.g. requested/available figures on insufficient stock).
func (c CustomError) Details() interface{} {
	return c.details
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorWithDetails(errorType constant.ErrorType, details interface{}) CustomError {
	return CustomError{
		errType: errorType,
		details: details,
	}
}

// IsType reports whether err is a CustomError of the given type.
func IsType(err error, errorType constant.ErrorType) bool {
	ce, ok := err.(CustomError)
	return ok && ce.errType == errorType
}
