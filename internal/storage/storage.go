// Package storage defines the domain-level error taxonomy shared by the
// postgres implementation, the services, and the HTTP handlers.
package storage

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventExists       = errors.New("event with the same title and start date already exists")
	ErrOrganizerNotFound = errors.New("organizer not found")
	ErrSpaceNotFound     = errors.New("coworking space not found")
)
