package listCameras

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"barberbook/internal/models"
)

// New serves the configured camera placeholders; feeds carry no stream
// URLs yet, only labels for the surveillance grid.
func New(log *slog.Logger, names []string) http.HandlerFunc {
	feeds := make([]models.Camera, 0, len(names))
	for i, name := range names {
		feeds = append(feeds, models.Camera{ID: i + 1, Name: name})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.camera.listCameras.New"

		log.With(slog.String("op", op)).Info("cameras retrieved", slog.Int("count", len(feeds)))

		render.JSON(w, r, feeds)
	}
}
