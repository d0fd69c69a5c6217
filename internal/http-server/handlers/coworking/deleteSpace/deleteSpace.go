package deleteSpace

import (
	"errors"
	"log/slog"
	"net/http"

	"eventspace/internal/lib/api/response"
	"eventspace/internal/lib/logger/sl"
	"eventspace/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpaceDeleter
type SpaceDeleter interface {
	DeleteSpace(coworkingID uuid.UUID) error
}

func New(log *slog.Logger, deleter SpaceDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.coworking.deleteSpace.New"

		log = log.With(slog.String("op", op))

		coworkingID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid coworking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid coworking id format"))
			return
		}

		log = log.With(slog.String("coworking_id", coworkingID.String()))

		if err = deleter.DeleteSpace(coworkingID); err != nil {
			if errors.Is(err, storage.ErrSpaceNotFound) {
				log.Error("coworking space not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("coworking space not found"))
				return
			}

			log.Error("failed to delete coworking space", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete coworking space"))
			return
		}

		log.Info("coworking space deleted")

		w.WriteHeader(http.StatusNoContent)
	}
}
