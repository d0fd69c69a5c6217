package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"eventspace/internal/models"
	"eventspace/internal/storage"

	"github.com/google/uuid"
)

func (s *Storage) GetAllEvents() ([]models.EventSummary, error) {
	query := `
		SELECT id, title, short_description, start_date, location, image_path
		FROM event
		ORDER BY start_date ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.EventSummary
	for rows.Next() {
		var event models.EventSummary
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.ShortDescription,
			&event.StartDate,
			&event.Location,
			&event.ImagePath,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) GetEventByID(eventID uuid.UUID) (*models.EventDetail, error) {
	query := `
		SELECT id, title, description, short_description, start_date, location, image_path, created_at, updated_at
		FROM event
		WHERE id = $1`

	var detail models.EventDetail
	err := s.DB.QueryRow(query, eventID).Scan(
		&detail.ID,
		&detail.Title,
		&detail.Description,
		&detail.ShortDescription,
		&detail.StartDate,
		&detail.Location,
		&detail.ImagePath,
		&detail.CreatedAt,
		&detail.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	// At most one organizer is linked per event in current usage.
	organizerQuery := `
		SELECT o.id, o.name, o.description, o.image_path
		FROM event_organizer eo
		JOIN organizer o ON eo.organizer_id = o.id
		WHERE eo.event_id = $1`

	var org models.OrganizerInfo
	err = s.DB.QueryRow(organizerQuery, eventID).Scan(
		&org.ID,
		&org.Name,
		&org.Description,
		&org.ImagePath,
	)
	if err != nil {
		if err != sql.ErrNoRows {
			return nil, fmt.Errorf("failed to get event organizer: %w", err)
		}
	} else {
		detail.Organizer = &org
	}

	return &detail, nil
}

// CreateEvent inserts the event and, if organizerID is set, the organizer
// link in the same transaction. A unique violation on (title, start_date)
// is reported as storage.ErrEventExists; any other integrity failure
// propagates unchanged.
func (s *Storage) CreateEvent(event models.Event, organizerID *uuid.UUID) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO event (id, title, description, short_description, start_date, location, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = tx.Exec(insertQuery,
		event.ID,
		event.Title,
		event.Description,
		event.ShortDescription,
		event.StartDate,
		event.Location,
		event.ImagePath,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		if isConstraintViolation(err, pgUniqueViolation, constraintEventTitleStartDate) {
			return storage.ErrEventExists
		}
		return fmt.Errorf("failed to create event: %w", err)
	}

	if organizerID != nil {
		linkQuery := `
			INSERT INTO event_organizer (event_id, organizer_id)
			VALUES ($1, $2)`

		if _, err = tx.Exec(linkQuery, event.ID, *organizerID); err != nil {
			return fmt.Errorf("failed to link organizer: %w", err)
		}
	}

	return tx.Commit()
}

// UpdateEvent applies only the fields set in upd and always bumps
// updated_at. A new organizer id replaces any existing link.
func (s *Storage) UpdateEvent(eventID uuid.UUID, upd models.EventUpdate) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	set := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		addSet("title", *upd.Title)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}
	if upd.ShortDescription != nil {
		addSet("short_description", *upd.ShortDescription)
	}
	if upd.StartDate != nil {
		addSet("start_date", *upd.StartDate)
	}
	if upd.Location != nil {
		addSet("location", *upd.Location)
	}
	if upd.ImagePath != nil {
		addSet("image_path", *upd.ImagePath)
	}

	args = append(args, eventID)
	query := fmt.Sprintf("UPDATE event SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	result, err := tx.Exec(query, args...)
	if err != nil {
		if isConstraintViolation(err, pgUniqueViolation, constraintEventTitleStartDate) {
			return storage.ErrEventExists
		}
		return fmt.Errorf("failed to update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	if upd.OrganizerID != nil {
		// Replace, not merge: drop the existing link before inserting the new one.
		if _, err = tx.Exec(`DELETE FROM event_organizer WHERE event_id = $1`, eventID); err != nil {
			return fmt.Errorf("failed to unlink organizer: %w", err)
		}

		linkQuery := `
			INSERT INTO event_organizer (event_id, organizer_id)
			VALUES ($1, $2)`

		if _, err = tx.Exec(linkQuery, eventID, *upd.OrganizerID); err != nil {
			return fmt.Errorf("failed to link organizer: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Storage) DeleteEvent(eventID uuid.UUID) error {
	result, err := s.DB.Exec(`DELETE FROM event WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// CreateRegistration inserts a participant registration. A foreign-key
// violation means the event disappeared between the caller's existence
// check and the insert, so it is reported as storage.ErrEventNotFound.
func (s *Storage) CreateRegistration(reg models.Registration) error {
	query := `
		INSERT INTO event_registration (id, event_id, participant_name, participant_email, participant_phone, registration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.DB.Exec(query,
		reg.ID,
		reg.EventID,
		reg.ParticipantName,
		reg.ParticipantEmail,
		reg.ParticipantPhone,
		reg.RegistrationDate,
		reg.CreatedAt,
		reg.UpdatedAt,
	)
	if err != nil {
		if isErrorCode(err, pgForeignKeyViolation) {
			return storage.ErrEventNotFound
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}

	return nil
}
