package getEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"eventspace/internal/lib/api/response"
	"eventspace/internal/lib/logger/sl"
	"eventspace/internal/models"
	"eventspace/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type EventResponse struct {
	response.Response
	*models.EventDetail
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	GetEvent(eventID uuid.UUID) (*models.EventDetail, error)
}

func New(log *slog.Logger, getter EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log = log.With(slog.String("op", op))

		eventID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.String("event_id", eventID.String()))

		event, err := getter.GetEvent(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Error("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))
			return
		}

		log.Info("event retrieved successfully")

		render.JSON(w, r, EventResponse{
			Response:    response.OK(),
			EventDetail: event,
		})
	}
}
