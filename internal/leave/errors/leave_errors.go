package leaveerrors

import (
	"net/http"

	"hr-assistant/internal/shared/apperror"
)

var (
	ErrSubmissionFailed = apperror.New(
		apperror.CodeServiceUnavailable,
		"failed to submit leave request",
		http.StatusServiceUnavailable,
	)
	ErrInvalidDayCount = apperror.New(
		apperror.CodeInvalidInput,
		"number_of_days must be a positive integer",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
)

// WrapSubmissionFailed keeps the sink cause attached for logs while
// callers match on the submission-failed code.
func WrapSubmissionFailed(err error) error {
	return apperror.Wrap(
		err,
		apperror.CodeServiceUnavailable,
		"failed to submit leave request",
		http.StatusServiceUnavailable,
	)
}
