package replaceProducts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"barberbook/internal/lib/api/response"
	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProductsReplacer
type ProductsReplacer interface {
	ReplaceProducts(products []models.Product) error
}

// New accepts the full inventory array, matching the whole-list save the
// admin UI performs.
func New(log *slog.Logger, inventory ProductsReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inventory.replaceProducts.New"

		log = log.With(slog.String("op", op))

		var products []models.Product

		err := render.DecodeJSON(r.Body, &products)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = inventory.ReplaceProducts(products); err != nil {
			log.Error("failed to save inventory", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save inventory"))
			return
		}

		log.Info("inventory saved", slog.Int("count", len(products)))

		render.JSON(w, r, response.OK())
	}
}
