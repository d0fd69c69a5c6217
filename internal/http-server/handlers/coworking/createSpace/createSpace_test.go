package createSpace

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventspace/internal/http-server/handlers/coworking/createSpace/mocks"
	"eventspace/internal/lib/logger/handlers/slogdiscard"
	"eventspace/internal/service/coworking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSpaceHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	spaceID := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	validBody := `{
		"name": "Downtown Hub",
		"description": "Open space with meeting rooms",
		"location": "Tverskaya 1"
	}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.SpaceCreator)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.SpaceCreator) {
				m.On("CreateSpace", coworking.CreateSpaceParams{
					Name:        "Downtown Hub",
					Description: "Open space with meeting rooms",
					Location:    "Tverskaya 1",
				}).Return(spaceID, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"id":"7c9e6679-7425-40de-944b-e07fc1f90ae7"`)
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "Missing required fields",
			requestBody:    `{"name":"Downtown Hub"}`,
			mockSetup:      func(m *mocks.SpaceCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Description")
				assert.Contains(t, body, "Location")
			},
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{"name": "Downtown Hub"`,
			mockSetup:      func(m *mocks.SpaceCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to decode request"}`, body)
			},
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(m *mocks.SpaceCreator) {
				m.On("CreateSpace", coworking.CreateSpaceParams{
					Name:        "Downtown Hub",
					Description: "Open space with meeting rooms",
					Location:    "Tverskaya 1",
				}).Return(uuid.Nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"status":"Error","error":"failed to create coworking space"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewSpaceCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/coworking", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())

			mockCreator.AssertExpectations(t)
		})
	}
}
