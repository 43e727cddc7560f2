package v1

import (
	"errors"
	"net/http"

	"github.com/familybiz/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"amounts must be larger than zero"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errTransactionTypeInvalid = errors.New("the specified transaction type is invalid")
	errMonthInvalid           = errors.New("the month query parameter must be a month in YYYY-MM format")
)

// Withdrawal errors
var errWithdrawalExceedsReserve = errors.New("the withdrawal amount exceeds the current reserve balance")

// Cleanup errors
var errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
