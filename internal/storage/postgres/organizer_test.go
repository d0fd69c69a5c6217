package postgres

import (
	"testing"
	"time"

	"eventspace/internal/models"
	"eventspace/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllOrganizers(t *testing.T) {
	s, mock := newMockStorage(t)

	id1 := uuid.New()
	id2 := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "image_path", "created_at", "updated_at"}).
		AddRow(id1, "GoLang Moscow", nil, nil, now.Add(-time.Hour), now).
		AddRow(id2, "Rust SPb", "Community", nil, now, now)

	mock.ExpectQuery("FROM organizer").WillReturnRows(rows)

	organizers, err := s.GetAllOrganizers()

	require.NoError(t, err)
	require.Len(t, organizers, 2)
	assert.Equal(t, "GoLang Moscow", organizers[0].Name)
	require.NotNil(t, organizers[1].Description)
	assert.Equal(t, "Community", *organizers[1].Description)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrganizerByID_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	orgID := uuid.New()

	mock.ExpectQuery("FROM organizer").
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "image_path", "created_at", "updated_at"}))

	_, err := s.GetOrganizerByID(orgID)

	require.ErrorIs(t, err, storage.ErrOrganizerNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrganizer(t *testing.T) {
	s, mock := newMockStorage(t)

	orgID := uuid.New()

	mock.ExpectExec("DELETE FROM organizer").
		WithArgs(orgID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.DeleteOrganizer(orgID))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrganizerByName(t *testing.T) {
	s, mock := newMockStorage(t)

	orgID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "image_path", "created_at", "updated_at"}).
		AddRow(orgID, "GoLang Moscow", nil, nil, now, now)

	mock.ExpectQuery("FROM organizer").
		WithArgs("GoLang Moscow").
		WillReturnRows(rows)

	org, err := s.GetOrganizerByName("GoLang Moscow")

	require.NoError(t, err)
	assert.Equal(t, orgID, org.ID)
	assert.Equal(t, "GoLang Moscow", org.Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrganizerByName_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery("FROM organizer").
		WithArgs("Unknown").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "image_path", "created_at", "updated_at"}))

	_, err := s.GetOrganizerByName("Unknown")

	require.ErrorIs(t, err, storage.ErrOrganizerNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrganizer_PartialFields(t *testing.T) {
	s, mock := newMockStorage(t)

	orgID := uuid.New()
	desc := "Community of Go developers"

	mock.ExpectExec(`UPDATE organizer SET updated_at = \$1, description = \$2 WHERE id = \$3`).
		WithArgs(sqlmock.AnyArg(), desc, orgID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.UpdateOrganizer(orgID, models.OrganizerUpdate{Description: &desc})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrganizer_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	orgID := uuid.New()
	name := "Renamed"

	mock.ExpectExec("UPDATE organizer SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdateOrganizer(orgID, models.OrganizerUpdate{Name: &name})

	require.ErrorIs(t, err, storage.ErrOrganizerNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
