package api

import (
	"net/http"

	"barangay-reservation/internal/domain/reservation"
	reqdto "barangay-reservation/internal/handler/dto/request"
	resdto "barangay-reservation/internal/handler/dto/response"
	"barangay-reservation/internal/handler/httperr"
	"barangay-reservation/internal/usecase/commands"
	"barangay-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	lifecycle commands.LifecycleCommands
	q         queries.ReservationQueries
}

func NewAdminHandler(lifecycle commands.LifecycleCommands, q queries.ReservationQueries) *AdminHandler {
	return &AdminHandler{lifecycle: lifecycle, q: q}
}

// @Summary List all reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.ReservationListItemResponse]
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.AdminListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var status *reservation.Status
	if query.Status != "" {
		s := reservation.Status(query.Status)
		status = &s
	}

	items, next, err := h.q.ListAll(c.Request.Context(), actor, status, &queries.Cursor{After: query.Cursor}, query.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromReservationList(items), next))
}

// @Summary Change reservation status
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.TransitionRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/transitions [post]
func (h *AdminHandler) Transition(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.lifecycle.Transition(c.Request.Context(), id, reservation.Status(req.Status), actor, req.Notes); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Record payment decision
// @Description Mark a pending payment as paid, or reject it (which cancels the reservation)
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.PaymentDecisionRequest true "Decision"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/reservations/{id}/payment [post]
func (h *AdminHandler) DecidePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PaymentDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	err := h.lifecycle.RecordPaymentDecision(c.Request.Context(), id, reservation.PaymentDecision(req.Decision), actor, req.Notes)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
