package getSpace

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

type SpaceResponse struct {
	response.Response
	*models.CoworkingDetail
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpaceGetter
type SpaceGetter interface {
	GetSpace(coworkingID uuid.UUID) (*models.CoworkingDetail, error)
}

func New(log *slog.Logger, getter SpaceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.coworking.getSpace.New"

		log = log.With(slog.String("op", op))

		coworkingID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid coworking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid coworking id format"))
			return
		}

		log = log.With(slog.String("coworking_id", coworkingID.String()))

		space, err := getter.GetSpace(coworkingID)
		if err != nil {
			if errors.Is(err, storage.ErrSpaceNotFound) {
				log.Error("coworking space not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("coworking space not found"))
				return
			}

			log.Error("failed to get coworking space", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get coworking space"))
			return
		}

		log.Info("coworking space retrieved successfully")

		render.JSON(w, r, SpaceResponse{
			Response:        response.OK(),
			CoworkingDetail: space,
		})
	}
}
