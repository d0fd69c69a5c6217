package getAllSpaces

import (
	"log/slog"
	"net/http"

	"eventspace/internal/lib/api/response"
	"eventspace/internal/lib/logger/sl"
	"eventspace/internal/models"

	"github.com/go-chi/render"
)

type SpacesResponse struct {
	response.Response
	Spaces []models.CoworkingSpace `json:"spaces"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpaceLister
type SpaceLister interface {
	ListSpaces() ([]models.CoworkingSpace, error)
}

func New(log *slog.Logger, lister SpaceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.coworking.getAllSpaces.New"

		log = log.With(slog.String("op", op))

		spaces, err := lister.ListSpaces()
		if err != nil {
			log.Error("failed to get coworking spaces", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get coworking spaces"))
			return
		}

		log.Info("coworking spaces retrieved successfully", slog.Int("count", len(spaces)))

		responseOK(w, r, spaces)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, spaces []models.CoworkingSpace) {
	if spaces == nil {
		spaces = []models.CoworkingSpace{}
	}

	render.JSON(w, r, SpacesResponse{
		Response: response.OK(),
		Spaces:   spaces,
	})
}
