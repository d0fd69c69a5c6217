package getSpace

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventspace/internal/http-server/handlers/coworking/getSpace/mocks"
	"eventspace/internal/lib/logger/handlers/slogdiscard"
	"eventspace/internal/models"
	"eventspace/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSpaceHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	coworkingID := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	detail := &models.CoworkingDetail{
		CoworkingSpace: models.CoworkingSpace{
			ID:          coworkingID,
			Name:        "Downtown Hub",
			Description: "Open space with meeting rooms",
			Location:    "Tverskaya 1",
		},
		OccupancyData: []models.OccupancyPoint{
			{Date: models.NewDate(2024, 3, 15), OccupancyPercentage: 30},
			{Date: models.NewDate(2024, 3, 16), OccupancyPercentage: 100},
		},
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.SpaceGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			url:  "/coworking/" + coworkingID.String(),
			mockSetup: func(m *mocks.SpaceGetter) {
				m.On("GetSpace", coworkingID).Return(detail, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"name":"Downtown Hub"`)
				assert.Contains(t, body, `"date":"2024-03-15"`)
				assert.Contains(t, body, `"occupancy_percentage":30`)
				assert.Contains(t, body, `"occupancy_percentage":100`)
			},
		},
		{
			name: "No occupancy data",
			url:  "/coworking/" + coworkingID.String(),
			mockSetup: func(m *mocks.SpaceGetter) {
				m.On("GetSpace", coworkingID).Return(&models.CoworkingDetail{
					CoworkingSpace: detail.CoworkingSpace,
					OccupancyData:  []models.OccupancyPoint{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"occupancy_data":[]`)
			},
		},
		{
			name: "Not found",
			url:  "/coworking/" + coworkingID.String(),
			mockSetup: func(m *mocks.SpaceGetter) {
				m.On("GetSpace", coworkingID).Return(nil, storage.ErrSpaceNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"coworking space not found"}`, body)
			},
		},
		{
			name:           "Invalid id",
			url:            "/coworking/not-a-uuid",
			mockSetup:      func(m *mocks.SpaceGetter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"invalid coworking id format"}`, body)
			},
		},
		{
			name: "Internal server error",
			url:  "/coworking/" + coworkingID.String(),
			mockSetup: func(m *mocks.SpaceGetter) {
				m.On("GetSpace", coworkingID).Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get coworking space"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewSpaceGetter(t)
			tc.mockSetup(mockGetter)

			router := chi.NewRouter()
			router.Get("/coworking/{id}", New(logger, mockGetter))

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())

			mockGetter.AssertExpectations(t)
		})
	}
}
