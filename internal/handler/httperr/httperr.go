package httperr

import (
	"errors"
	"net/http"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithUseCaseError maps use-case and domain errors onto HTTP statuses.
// Persistence failures never leak their cause to the client.
func AbortWithUseCaseError(c *gin.Context, err error) {
	var (
		verr *reservation.ValidationError
		uerr *reservation.ResourceUnavailableError
		terr *reservation.InvalidTransitionError
	)
	switch {
	case errors.As(err, &verr):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", verr.Messages())
	case errors.As(err, &uerr):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", []string{uerr.Error()})
	case errors.As(err, &terr):
		AbortWithError(c, http.StatusConflict, err, terr.Error(), nil)
	case errs.Is(err, errs.ErrDraftNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Draft not found or expired", nil)
	case errs.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
