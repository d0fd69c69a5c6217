package deleteSpace

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventspace/internal/http-server/handlers/coworking/deleteSpace/mocks"
	"eventspace/internal/lib/logger/handlers/slogdiscard"
	"eventspace/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteSpaceHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	coworkingID := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.SpaceDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			url:  "/coworking/" + coworkingID.String(),
			mockSetup: func(m *mocks.SpaceDeleter) {
				m.On("DeleteSpace", coworkingID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
			expectedBody:   "",
		},
		{
			name: "Space not found",
			url:  "/coworking/" + coworkingID.String(),
			mockSetup: func(m *mocks.SpaceDeleter) {
				m.On("DeleteSpace", coworkingID).Return(storage.ErrSpaceNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"coworking space not found"}`,
		},
		{
			name:           "Invalid id",
			url:            "/coworking/not-a-uuid",
			mockSetup:      func(m *mocks.SpaceDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid coworking id format"}`,
		},
		{
			name: "Internal server error",
			url:  "/coworking/" + coworkingID.String(),
			mockSetup: func(m *mocks.SpaceDeleter) {
				m.On("DeleteSpace", coworkingID).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete coworking space"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewSpaceDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/coworking/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest("DELETE", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody == "" {
				assert.Empty(t, rr.Body.String())
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}

			mockDeleter.AssertExpectations(t)
		})
	}
}
