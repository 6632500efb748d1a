package api

import (
	"errors"
	"io"
	"net/http"

	"barangay-reservation/internal/domain/reservation"
	reqdto "barangay-reservation/internal/handler/dto/request"
	resdto "barangay-reservation/internal/handler/dto/response"
	"barangay-reservation/internal/handler/httperr"
	"barangay-reservation/internal/usecase/commands"
	"barangay-reservation/internal/usecase/queries"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxPaymentProofSize = 5 << 20

var paymentProofTypes = []string{"image/jpeg", "image/png", "image/webp", "application/pdf"}

type ReservationHandler struct {
	cmds      commands.ReservationCommands
	lifecycle commands.LifecycleCommands
	q         queries.ReservationQueries
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	lifecycle commands.LifecycleCommands,
	q queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, lifecycle: lifecycle, q: q}
}

// @Summary Create reservation draft
// @Description Validate a booking and keep it as a draft for review before submission
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDraftRequest true "Draft request"
// @Success 201 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/drafts [post]
func (h *ReservationHandler) CreateDraft(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	draft, err := h.cmds.BuildDraft(c.Request.Context(), actor.ID, req.ToCommand())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDraft(draft))
}

// @Summary Get reservation draft
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/drafts/{id} [get]
func (h *ReservationHandler) GetDraft(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	draft, err := h.cmds.GetDraft(c.Request.Context(), actor.ID, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(draft))
}

// @Summary Submit reservation
// @Description Commit a draft, optionally attaching the payment proof
// @Tags reservations
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param draft_id formData string true "Draft ID"
// @Param payment_proof formData file false "Payment proof (jpeg, png, webp or pdf, max 5 MB)"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Commit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var form reqdto.CommitReservationForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	draftID := uuid.MustParse(form.DraftID)

	var proof *commands.FileUpload
	header, err := c.FormFile("payment_proof")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	default:
		if verr := checkPaymentProofSize(header.Size); verr != nil {
			httperr.AbortWithUseCaseError(c, verr)
			return
		}
		file, openErr := header.Open()
		if openErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, openErr, "Invalid request", nil)
			return
		}
		defer file.Close()
		contentType, sniffErr := sniffPaymentProof(file)
		if sniffErr != nil {
			httperr.AbortWithUseCaseError(c, sniffErr)
			return
		}
		proof = &commands.FileUpload{
			Filename:    header.Filename,
			ContentType: contentType,
			Size:        header.Size,
			Body:        file,
		}
	}

	id, err := h.cmds.CommitReservation(c.Request.Context(), actor.ID, draftID, proof)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/reservations/"+id.String())
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

func checkPaymentProofSize(size int64) error {
	if size > maxPaymentProofSize {
		return reservation.NewValidationError(
			reservation.NewFieldError("payment_proof", "payment proof must be at most 5 MB"))
	}
	return nil
}

// sniffPaymentProof detects the type from the file content, ignoring the
// client's Content-Type, and rewinds the file for upload.
func sniffPaymentProof(file io.ReadSeeker) (string, error) {
	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	for _, t := range paymentProofTypes {
		if detected.Is(t) {
			return t, nil
		}
	}
	return "", reservation.NewValidationError(
		reservation.NewFieldError("payment_proof", "payment proof must be a JPEG, PNG, WebP or PDF file"))
}

// @Summary List my reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} resdto.PageResponse[resdto.ReservationListItemResponse]
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	items, next, err := h.q.ListMine(c.Request.Context(), actor.ID, &queries.Cursor{After: query.Cursor}, query.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPage(resdto.FromReservationList(items), next))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Reservation status history
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {array} resdto.HistoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id}/history [get]
func (h *ReservationHandler) History(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	entries, err := h.q.History(c.Request.Context(), actor, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistory(entries))
}

// @Summary Cancel reservation
// @Description Residents may cancel their own reservation while it is still pending
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelRequest false "Optional notes"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	if err := h.lifecycle.Transition(c.Request.Context(), id, reservation.StatusCancelled, actor, req.Notes); err != nil {
		httperr.AbortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
