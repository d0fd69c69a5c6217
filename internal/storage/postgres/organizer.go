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

func (s *Storage) GetAllOrganizers() ([]models.Organizer, error) {
	query := `
		SELECT id, name, description, image_path, created_at, updated_at
		FROM organizer
		ORDER BY created_at ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizers: %w", err)
	}
	defer rows.Close()

	var organizers []models.Organizer
	for rows.Next() {
		var org models.Organizer
		err := rows.Scan(
			&org.ID,
			&org.Name,
			&org.Description,
			&org.ImagePath,
			&org.CreatedAt,
			&org.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organizer: %w", err)
		}

		organizers = append(organizers, org)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organizers: %w", err)
	}

	return organizers, nil
}

func (s *Storage) GetOrganizerByID(organizerID uuid.UUID) (*models.Organizer, error) {
	query := `
		SELECT id, name, description, image_path, created_at, updated_at
		FROM organizer
		WHERE id = $1`

	var org models.Organizer
	err := s.DB.QueryRow(query, organizerID).Scan(
		&org.ID,
		&org.Name,
		&org.Description,
		&org.ImagePath,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrOrganizerNotFound
		}
		return nil, fmt.Errorf("failed to get organizer: %w", err)
	}

	return &org, nil
}

// GetOrganizerByName returns the oldest organizer with an exact name match,
// so repeated lookups keep resolving to the same shared row.
func (s *Storage) GetOrganizerByName(name string) (*models.Organizer, error) {
	query := `
		SELECT id, name, description, image_path, created_at, updated_at
		FROM organizer
		WHERE name = $1
		ORDER BY created_at ASC
		LIMIT 1`

	var org models.Organizer
	err := s.DB.QueryRow(query, name).Scan(
		&org.ID,
		&org.Name,
		&org.Description,
		&org.ImagePath,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrOrganizerNotFound
		}
		return nil, fmt.Errorf("failed to get organizer by name: %w", err)
	}

	return &org, nil
}

func (s *Storage) CreateOrganizer(org models.Organizer) error {
	query := `
		INSERT INTO organizer (id, name, description, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.DB.Exec(query,
		org.ID,
		org.Name,
		org.Description,
		org.ImagePath,
		org.CreatedAt,
		org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create organizer: %w", err)
	}

	return nil
}

// UpdateOrganizer applies only the fields set in upd and always bumps
// updated_at.
func (s *Storage) UpdateOrganizer(organizerID uuid.UUID, upd models.OrganizerUpdate) error {
	set := []string{"updated_at = $1"}
	args := []interface{}{time.Now()}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		addSet("name", *upd.Name)
	}
	if upd.Description != nil {
		addSet("description", *upd.Description)
	}
	if upd.ImagePath != nil {
		addSet("image_path", *upd.ImagePath)
	}

	args = append(args, organizerID)
	query := fmt.Sprintf("UPDATE organizer SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	result, err := s.DB.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update organizer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrOrganizerNotFound
	}

	return nil
}

func (s *Storage) DeleteOrganizer(organizerID uuid.UUID) error {
	result, err := s.DB.Exec(`DELETE FROM organizer WHERE id = $1`, organizerID)
	if err != nil {
		return fmt.Errorf("failed to delete organizer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrOrganizerNotFound
	}

	return nil
}
