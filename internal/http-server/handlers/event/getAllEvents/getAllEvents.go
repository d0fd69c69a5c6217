package getAllEvents

import (
	"log/slog"
	"net/http"

	"eventspace/internal/lib/api/response"
	"eventspace/internal/lib/logger/sl"
	"eventspace/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.EventSummary `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents() ([]models.EventSummary, error)
}

func New(log *slog.Logger, lister EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		events, err := lister.ListEvents()
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.EventSummary) {
	if events == nil {
		events = []models.EventSummary{}
	}

	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
