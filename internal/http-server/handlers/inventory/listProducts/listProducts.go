package listProducts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"barberbook/internal/lib/api/response"
	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProductsGetter
type ProductsGetter interface {
	Products() ([]models.Product, error)
}

func New(log *slog.Logger, inventory ProductsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inventory.listProducts.New"

		log = log.With(slog.String("op", op))

		products, err := inventory.Products()
		if err != nil {
			log.Error("failed to get inventory", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get inventory"))
			return
		}

		if products == nil {
			products = []models.Product{}
		}

		render.JSON(w, r, products)
	}
}
