package listTransactions

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"barberbook/internal/lib/api/response"
	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TransactionsGetter
type TransactionsGetter interface {
	Transactions() ([]models.Transaction, error)
}

func New(log *slog.Logger, ledger TransactionsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.accounting.listTransactions.New"

		log = log.With(slog.String("op", op))

		transactions, err := ledger.Transactions()
		if err != nil {
			log.Error("failed to get ledger", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get ledger"))
			return
		}

		if transactions == nil {
			transactions = []models.Transaction{}
		}

		render.JSON(w, r, transactions)
	}
}
