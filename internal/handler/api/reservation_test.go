//go:build unit

package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/user"
	"barangay-reservation/internal/handler/api"
	resdto "barangay-reservation/internal/handler/dto/response"
	"barangay-reservation/internal/handler/validation"
	"barangay-reservation/internal/pkg/clock"
	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/usecase/commands"
	"barangay-reservation/internal/usecase/queries"
	"barangay-reservation/tests/common/builder"
	"barangay-reservation/tests/common/httptest"
	"barangay-reservation/tests/common/testutil"
	commandsmock "barangay-reservation/tests/mock/commands"
	queriesmock "barangay-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for AuthMiddleware: any bearer token authenticates as
// the given user.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockReservationCommands
	mockLifecycle *commandsmock.MockLifecycleCommands
	mockQueries   *queriesmock.MockReservationQueries
	userID        uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.MustRegister()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockLifecycle = commandsmock.NewMockLifecycleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewReservationHandler(s.mockCommands, s.mockLifecycle, s.mockQueries)

	s.userID = uuid.New()
	auth := fakeAuth(s.userID, user.RoleResident)

	s.router.POST("/reservations/drafts", auth, h.CreateDraft)
	s.router.GET("/reservations/drafts/:id", auth, h.GetDraft)
	s.router.POST("/reservations", auth, h.Commit)
	s.router.GET("/reservations", auth, h.ListMine)
	s.router.GET("/reservations/:id", auth, h.Get)
	s.router.GET("/reservations/:id/history", auth, h.History)
	s.router.POST("/reservations/:id/cancel", auth, h.Cancel)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateDraft
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateDraft() {
	url := "/reservations/drafts"
	b := builder.NewReservationBuilder().WithUserID(s.userID)
	reqBody := testutil.DtoMap(s.T(), b.BuildDraftRequestDTO())
	draft := b.BuildDraft()

	s.Run("success: returns 201 with the draft", func() {
		s.mockCommands.EXPECT().
			BuildDraft(gomock.Any(), s.userID, gomock.AssignableToTypeOf(commands.BuildDraftRequest{})).
			DoAndReturn(func(_ any, _ uuid.UUID, req commands.BuildDraftRequest) (*reservation.Draft, error) {
				s.Equal("Purok 3", req.Purok)
				s.Len(req.Items, 1)
				return draft, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var got resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(draft.ID, got.ID)
		s.Equal("Covered Court", got.Items[0].Name)
	})

	s.Run("validation failure: 422 lists every problem", func() {
		verr := reservation.NewValidationError(
			reservation.NewFieldError("address", "address is required"),
			reservation.NewFieldError("purok", "purok is required"),
		)
		s.mockCommands.EXPECT().BuildDraft(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, verr)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Contains(rec.Body.String(), "purok is required")
	})

	s.Run("missing fields reach the builder and are reported together", func() {
		now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().
			BuildDraft(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, userID uuid.UUID, req commands.BuildDraftRequest) (*reservation.Draft, error) {
				services := &reservation.Services{Clock: clock.NewMockClock(now)}
				return reservation.NewDraftBuilder(services, reservation.Policy{LeadTime: 72 * time.Hour}).
					Build(ctx, reservation.DraftInput{
						UserID:  userID,
						Address: req.Address,
						Purok:   req.Purok,
						Start:   req.Start,
						End:     req.End,
						Items:   req.Items,
					})
			})
		body := testutil.DtoMap(s.T(), b.BuildDraftRequestDTO(),
			testutil.Field("address", ""),
			testutil.Field("start", nil),
			testutil.Field("items", nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		var got struct {
			Detail []string `json:"detail"`
		}
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &got))
		s.Equal([]string{
			"address is required",
			"start date and time are required",
			"select at least one resource",
		}, got.Detail)
	})

	bad := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "malformed end", mutate: testutil.Field("end", "tomorrow")},
		{name: "items not a list", mutate: testutil.Field("items", "court")},
		{name: "purok too long", mutate: testutil.Field("purok", strings.Repeat("x", 51))},
	}
	for _, tc := range bad {
		s.Run("bad request: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), b.BuildDraftRequestDTO(), tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("unauthenticated: 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestGetDraft
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetDraft() {
	s.Run("expired draft: 404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().GetDraft(gomock.Any(), s.userID, id).Return(nil, errs.ErrDraftNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/drafts/"+id.String(), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Draft not found")
	})

	s.Run("invalid id: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/drafts/nope", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestCommit
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCommit() {
	url := "/reservations"
	draftID := uuid.New()
	createdID := uuid.New()

	s.Run("success without proof", func() {
		s.mockCommands.EXPECT().
			CommitReservation(gomock.Any(), s.userID, draftID, gomock.Nil()).
			Return(createdID, nil)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"draft_id": draftID.String()}, nil, "token")

		var got resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(createdID, got.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + createdID.String()})
	})

	s.Run("success with proof passes the upload through", func() {
		content := []byte("%PDF-1.4 receipt")
		s.mockCommands.EXPECT().
			CommitReservation(gomock.Any(), s.userID, draftID, gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ any, _, _ uuid.UUID, proof *commands.FileUpload) (uuid.UUID, error) {
				s.Equal("gcash.pdf", proof.Filename)
				s.Equal("application/pdf", proof.ContentType)
				s.Equal(int64(len(content)), proof.Size)
				var buf bytes.Buffer
				_, err := buf.ReadFrom(proof.Body)
				s.Require().NoError(err)
				s.Equal(content, buf.Bytes())
				return createdID, nil
			})

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"draft_id": draftID.String()},
			[]httptest.FormFile{{Field: "payment_proof", Filename: "gcash.pdf", ContentType: "application/pdf", Content: content}},
			"token")

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("unsupported proof type: 422 before committing", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"draft_id": draftID.String()},
			[]httptest.FormFile{{Field: "payment_proof", Filename: "notes.txt", ContentType: "text/plain", Content: []byte("hi")}},
			"token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Contains(rec.Body.String(), "payment proof must be")
	})

	s.Run("proof type comes from the content, not the declared header", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"draft_id": draftID.String()},
			[]httptest.FormFile{{Field: "payment_proof", Filename: "receipt.png", ContentType: "image/png", Content: []byte("#!/bin/sh\necho hi\n")}},
			"token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Contains(rec.Body.String(), "payment proof must be a JPEG, PNG, WebP or PDF file")
	})

	s.Run("png sent as octet-stream is accepted as image/png", func() {
		content := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
		s.mockCommands.EXPECT().
			CommitReservation(gomock.Any(), s.userID, draftID, gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ any, _, _ uuid.UUID, proof *commands.FileUpload) (uuid.UUID, error) {
				s.Equal("image/png", proof.ContentType)
				var buf bytes.Buffer
				_, err := buf.ReadFrom(proof.Body)
				s.Require().NoError(err)
				s.Equal(content, buf.Bytes(), "body is rewound after detection")
				return createdID, nil
			})

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"draft_id": draftID.String()},
			[]httptest.FormFile{{Field: "payment_proof", Filename: "gcash", ContentType: "application/octet-stream", Content: content}},
			"token")

		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("missing draft id: 400", func() {
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, map[string]string{}, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("conflict at commit: 422 with the unavailable resource", func() {
		conflict := reservation.NewValidationError(&reservation.ResourceUnavailableError{
			ResourceID: uuid.New(), Name: "Covered Court", Reason: reservation.ReasonTimeConflict,
		})
		s.mockCommands.EXPECT().CommitReservation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, conflict)

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"draft_id": draftID.String()}, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
		s.Contains(rec.Body.String(), "Covered Court is already reserved for the selected schedule")
	})

	s.Run("storage failure: 500 without details", func() {
		s.mockCommands.EXPECT().CommitReservation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.Mark(errors.New("tx aborted"), errs.ErrPersistence))

		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"draft_id": draftID.String()}, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.NotContains(rec.Body.String(), "tx aborted")
	})
}

// ================================================================================
// TestListMine / TestGet / TestHistory
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("passes cursor and limit, returns next cursor", func() {
		item := builder.NewReservationBuilder().WithUserID(s.userID).BuildListItem()
		next := &queries.Cursor{After: queries.EncodeAfterCursor(item.CreatedAt, item.ID)}
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 5).
			Return([]*queries.ReservationListItem{item}, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?cursor=abc&limit=5", nil, "token")

		var got resdto.PageResponse[resdto.ReservationListItemResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got.Items, 1)
		s.Equal("Pending", got.Items[0].StatusLabel)
		s.Require().NotNil(got.NextCursor)
		s.Equal(next.After, *got.NextCursor)
	})

	s.Run("invalid cursor: 400", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?cursor=zzz", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("limit over 100: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=101", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().WithUserID(s.userID).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reservation.NewActor(s.userID, user.RoleResident), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "token")

		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.ID, got.ID)
		s.Equal("Purok 3", got.Purok)
		s.Require().Len(got.Items, 1)
	})

	s.Run("someone else's reservation: 404", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), view.ID).Return(nil, errs.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

func (s *ReservationHandlerTestSuite) TestHistory() {
	id := uuid.New()
	adminID := uuid.New()
	paid := "paid"
	name := "Kapitan"
	entries := []*queries.HistoryView{
		{ID: uuid.New(), Status: "pending", Notes: reservation.SubmittedNote, CreatedByUserID: &s.userID, CreatedAt: time.Now()},
		{ID: uuid.New(), Status: "pending", PaymentStatus: &paid, CreatedByAdminID: &adminID, ActorName: &name, CreatedAt: time.Now()},
	}
	s.mockQueries.EXPECT().History(gomock.Any(), gomock.Any(), id).Return(entries, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String()+"/history", nil, "token")

	var got []resdto.HistoryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Require().Len(got, 2)
	s.False(got[0].ByAdmin)
	s.Equal(s.userID, *got[0].ActorID)
	s.True(got[1].ByAdmin)
	s.Equal(adminID, *got[1].ActorID)
	s.Equal("paid", *got[1].PaymentStatus)
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	actor := reservation.NewActor(s.userID, user.RoleResident)

	s.Run("success: 204", func() {
		s.mockLifecycle.EXPECT().Transition(gomock.Any(), id, reservation.StatusCancelled, actor, "change of plans").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel",
			map[string]string{"notes": "change of plans"}, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("without body", func() {
		s.mockLifecycle.EXPECT().Transition(gomock.Any(), id, reservation.StatusCancelled, actor, "").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("already approved: 409", func() {
		s.mockLifecycle.EXPECT().Transition(gomock.Any(), id, reservation.StatusCancelled, actor, "").
			Return(&reservation.InvalidTransitionError{Field: "status", From: "approved", To: "cancelled"})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot change status from approved to cancelled")
	})
}
