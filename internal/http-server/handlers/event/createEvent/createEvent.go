package createEvent

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"eventspace/internal/lib/api/response"
	"eventspace/internal/lib/logger/sl"
	"eventspace/internal/service/event"
	"eventspace/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type EventRequest struct {
	Title                string    `json:"title" validate:"required"`
	Description          string    `json:"description" validate:"required"`
	ShortDescription     string    `json:"short_description" validate:"required"`
	StartDate            time.Time `json:"start_date" validate:"required"`
	Location             string    `json:"location" validate:"required"`
	ImagePath            *string   `json:"image_path,omitempty"`
	OrganizerName        string    `json:"organizer_name,omitempty"`
	OrganizerDescription *string   `json:"organizer_description,omitempty"`
	OrganizerImagePath   *string   `json:"organizer_image_path,omitempty"`
}

type EventResponse struct {
	response.Response
	ID uuid.UUID `json:"id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(params event.CreateEventParams) (uuid.UUID, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("title", req.Title))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		eventID, err := creator.CreateEvent(event.CreateEventParams{
			Title:                req.Title,
			Description:          req.Description,
			ShortDescription:     req.ShortDescription,
			StartDate:            req.StartDate,
			Location:             req.Location,
			ImagePath:            req.ImagePath,
			OrganizerName:        req.OrganizerName,
			OrganizerDescription: req.OrganizerDescription,
			OrganizerImagePath:   req.OrganizerImagePath,
		})
		if err != nil {
			if errors.Is(err, storage.ErrEventExists) {
				log.Warn("duplicate event attempt", slog.String("title", req.Title))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(
					fmt.Sprintf("an event with title '%s' at the same date and time already exists", req.Title),
				))

				return
			}

			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.String("id", eventID.String()))

		responseCreated(w, r, eventID)
	}
}

func responseCreated(w http.ResponseWriter, r *http.Request, eventID uuid.UUID) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		ID:       eventID,
	})
}
