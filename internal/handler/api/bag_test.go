//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bagtrack/internal/domain/user"
	"bagtrack/internal/handler/api"
	"bagtrack/internal/pkg/errs"
	"bagtrack/internal/usecase/queries"
	"bagtrack/tests/common/builder"
	"bagtrack/tests/common/httptest"
	"bagtrack/tests/common/testutil"
	commandsmock "bagtrack/tests/mock/commands"
	queriesmock "bagtrack/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BagHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBagCommands
	mockQueries  *queriesmock.MockBagQueries
	handler      *api.BagHandler
	userID       uuid.UUID
}

func (s *BagHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBagCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBagQueries(s.mockCtrl)
	s.handler = api.NewBagHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: an auth header means a logged-in customer
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleCustomer)
		}
		c.Next()
	})

	s.router.POST("/bags", s.handler.CreateBag)
	s.router.GET("/bags", s.handler.ListBags)
	s.router.GET("/bags/tag/:tag", s.handler.GetBagByTag)
	s.router.GET("/bags/:id", s.handler.GetBag)
	s.router.PATCH("/bags/:id/locations", s.handler.UpdateLocations)
}

func (s *BagHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBagHandlerSuite(t *testing.T) {
	suite.Run(t, new(BagHandlerTestSuite))
}

func (s *BagHandlerTestSuite) validCreateBody() map[string]any {
	return map[string]any{
		"pickup_location_id":   uuid.New().String(),
		"delivery_location_id": uuid.New().String(),
		"items": []map[string]any{
			{"service_item_id": uuid.New().String(), "quantity": 2},
		},
	}
}

func (s *BagHandlerTestSuite) TestCreateBag() {
	url := "/bags"
	returnView := builder.NewBagBuilder().BuildView()

	s.Run("success: returns 201 Created with the priced bag", func() {
		s.mockCommands.EXPECT().CreateBag(gomock.Any(), s.userID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validCreateBody(), "bearer-token")

		var response queries.BagView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.BagTag, response.BagTag)
		s.Equal("bag:"+returnView.BagTag, response.QRCode)
		s.InDelta(returnView.Total, response.Total, 0.001)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		body := s.validCreateBody()
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing pickup_location_id", mutate: testutil.Field("pickup_location_id", nil)},
			{name: "missing delivery_location_id", mutate: testutil.Field("delivery_location_id", nil)},
			{name: "missing items", mutate: testutil.Field("items", nil)},
			{name: "empty items", mutate: testutil.Field("items", []map[string]any{})},
			{name: "zero quantity item", mutate: testutil.Field("items", []map[string]any{
				{"service_item_id": uuid.New().String(), "quantity": 0},
			})},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				mutated := testutil.DtoMap(s.T(), body, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, mutated, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "location not found",
				commandsError:  errs.ErrLocationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Location not found",
			},
			{
				name:           "empty order",
				commandsError:  errs.ErrEmptyOrder,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "at least one item",
			},
			{
				name:           "unknown service item",
				commandsError:  errs.ErrUnknownServiceItem,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Unknown service item",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBag(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validCreateBody(), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BagHandlerTestSuite) TestGetBag() {
	returnView := builder.NewBagBuilder().BuildView()
	url := "/bags/" + returnView.ID.String()

	s.Run("success: returns the bag", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.BagView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bags/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid bag ID")
	})

	s.Run("error: maps read errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "bag not found",
				queriesError:   errs.ErrBagNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Bag not found",
			},
			{
				name:           "access denied",
				queriesError:   errs.ErrBagAccessDenied,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), returnView.ID).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BagHandlerTestSuite) TestGetBagByTag() {
	returnView := builder.NewBagBuilder().BuildView()

	s.Run("success: resolves a bare tag", func() {
		s.mockQueries.EXPECT().GetByTag(gomock.Any(), gomock.Any(), returnView.BagTag).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bags/tag/"+returnView.BagTag, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: strips the qr payload prefix and normalizes case", func() {
		s.mockQueries.EXPECT().GetByTag(gomock.Any(), gomock.Any(), returnView.BagTag).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bags/tag/bag:b-abc234", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 when the tag is unknown", func() {
		s.mockQueries.EXPECT().GetByTag(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrBagNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bags/tag/B-ZZZZZZ", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Bag not found")
	})
}

func (s *BagHandlerTestSuite) TestListBags() {
	s.Run("success: returns the customer's page", func() {
		page := &queries.BagPage{Items: []*queries.BagListItem{}, Page: 1, PageSize: 20}
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.userID, gomock.Nil(), 2, 50).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bags?page=2&page_size=50", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: passes the status filter through", func() {
		page := &queries.BagPage{Items: []*queries.BagListItem{}, Page: 1, PageSize: 20}
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.userID, gomock.Not(gomock.Nil()), 0, 0).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bags?status=washing", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *BagHandlerTestSuite) TestUpdateLocations() {
	returnView := builder.NewBagBuilder().BuildView()
	url := "/bags/" + returnView.ID.String() + "/locations"
	body := map[string]any{"pickup_location_id": uuid.New().String()}

	s.Run("success: returns the updated bag", func() {
		s.mockCommands.EXPECT().UpdateLocations(gomock.Any(), gomock.Any(), returnView.ID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "bag not found",
				commandsError:  errs.ErrBagNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Bag not found",
			},
			{
				name:           "access denied",
				commandsError:  errs.ErrBagAccessDenied,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
			{
				name:           "locked after pickup",
				commandsError:  errs.ErrLocationLockedAfterPickup,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "after pickup",
			},
			{
				name:           "concurrent modification",
				commandsError:  errs.ErrTransitionConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "concurrently",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateLocations(gomock.Any(), gomock.Any(), returnView.ID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
