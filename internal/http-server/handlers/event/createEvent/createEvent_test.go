package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventspace/internal/http-server/handlers/event/createEvent/mocks"
	"eventspace/internal/lib/logger/handlers/slogdiscard"
	"eventspace/internal/service/event"
	"eventspace/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testTime := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	testID := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	validBody := `{
		"title": "Demo",
		"description": "Full description",
		"short_description": "Short",
		"start_date": "2024-01-01T10:00:00Z",
		"location": "Main hall"
	}`

	validParams := event.CreateEventParams{
		Title:            "Demo",
		Description:      "Full description",
		ShortDescription: "Short",
		StartDate:        testTime,
		Location:         "Main hall",
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(mock *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", validParams).Return(testID, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","id":"7c9e6679-7425-40de-944b-e07fc1f90ae7"}`,
		},
		{
			name: "Success with organizer",
			requestBody: `{
				"title": "Demo",
				"description": "Full description",
				"short_description": "Short",
				"start_date": "2024-01-01T10:00:00Z",
				"location": "Main hall",
				"organizer_name": "Acme"
			}`,
			mockSetup: func(mock *mocks.EventCreator) {
				params := validParams
				params.OrganizerName = "Acme"
				mock.On("CreateEvent", params).Return(testID, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"OK","id":"7c9e6679-7425-40de-944b-e07fc1f90ae7"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: `{
				"description": "Full description",
				"short_description": "Short",
				"start_date": "2024-01-01T10:00:00Z",
				"location": "Main hall"
			}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name:           "Missing all required fields",
			requestBody:    `{}`,
			mockSetup:      func(mock *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Title")
				assert.Contains(t, body, "Description")
				assert.Contains(t, body, "ShortDescription")
				assert.Contains(t, body, "StartDate")
				assert.Contains(t, body, "Location")
			},
		},
		{
			name:        "Duplicate event",
			requestBody: validBody,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", validParams).Return(uuid.Nil, storage.ErrEventExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"an event with title 'Demo' at the same date and time already exists"}`,
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(mock *mocks.EventCreator) {
				mock.On("CreateEvent", validParams).Return(uuid.Nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockCreator.AssertExpectations(t)
		})
	}
}

func TestCreateEventResponseFormat(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("POST", "/events", nil)
	rr := httptest.NewRecorder()

	testID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	responseCreated(rr, req, testID)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var actual EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actual)
	require.NoError(t, err)

	assert.Equal(t, "OK", actual.Status)
	assert.Equal(t, "", actual.Error)
	assert.Equal(t, testID, actual.ID)
}
