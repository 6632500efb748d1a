//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"barangay-reservation/internal/domain/resource"
	"barangay-reservation/internal/domain/user"
	"barangay-reservation/internal/handler/api"
	resdto "barangay-reservation/internal/handler/dto/response"
	"barangay-reservation/internal/handler/validation"
	"barangay-reservation/internal/pkg/errs"
	"barangay-reservation/internal/usecase/queries"
	"barangay-reservation/tests/common/builder"
	"barangay-reservation/tests/common/httptest"
	queriesmock "barangay-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockResourceQueries
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	validation.MustRegister()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockResourceQueries(s.mockCtrl)
	h := api.NewResourceHandler(s.mockQueries)

	auth := fakeAuth(uuid.New(), user.RoleResident)
	s.router.GET("/resources", auth, h.List)
	s.router.GET("/resources/:id", auth, h.Get)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

func (s *ResourceHandlerTestSuite) TestList() {
	chairs := builder.NewEquipmentBuilder().With(func(b *builder.ResourceBuilder) { b.HeldQuantity = 20 }).BuildView()

	s.Run("category filter", func() {
		equipment := resource.CategoryEquipment
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), &equipment).Return([]*queries.ResourceView{chairs}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources?category=equipment", nil, "token")

		var got []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		want := []resdto.ResourceResponse{{
			ID:                chairs.ID,
			Name:              "Monobloc Chair",
			Category:          "equipment",
			Quantity:          50,
			AvailableQuantity: 30,
			Status:            "active",
			Availability:      "available",
			CreatedAt:         chairs.CreatedAt,
			UpdatedAt:         chairs.UpdatedAt,
		}}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("resources mismatch (-want +got):\n%s", diff)
		}
		s.NotContains(rec.Body.String(), "held_quantity")
	})

	s.Run("no filter", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), gomock.Nil()).Return([]*queries.ResourceView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources", nil, "token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("unknown category: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources?category=vehicle", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("storage failure: 500", func() {
		s.mockQueries.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("connection reset"), errs.ErrPersistence))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources", nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ResourceHandlerTestSuite) TestGet() {
	court := builder.NewFacilityBuilder().WithPayment(50000).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), court.ID).Return(court, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+court.ID.String(), nil, "token")

		var got resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.RequiresPayment)
		s.Equal(int64(50000), got.PaymentAmount)
	})

	s.Run("missing: 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+id.String(), nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
