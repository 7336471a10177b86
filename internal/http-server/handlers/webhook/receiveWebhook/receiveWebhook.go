package receiveWebhook

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"barberbook/internal/lib/logger/sl"
)

// Payload mirrors the shape of Meta messaging webhook deliveries; only
// the fields the bot acts on are decoded.
type Payload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	Messaging []MessagingEvent `json:"messaging"`
}

type MessagingEvent struct {
	Sender  Sender   `json:"sender"`
	Message *Message `json:"message"`
}

type Sender struct {
	ID string `json:"id"`
}

type Message struct {
	Text   string `json:"text"`
	IsEcho bool   `json:"is_echo"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MessageHandler
type MessageHandler interface {
	HandleMessage(senderID, text string)
}

// New acknowledges Instagram deliveries immediately and hands every
// non-echo text message to the bot processor. Non-instagram payloads get
// a 404, matching what Meta expects for unsubscribed objects.
func New(log *slog.Logger, handler MessageHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.webhook.receiveWebhook.New"

		log := log.With(slog.String("op", op))

		var payload Payload

		err := render.DecodeJSON(r.Body, &payload)
		if err != nil {
			log.Error("failed to decode webhook payload", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if payload.Object != "instagram" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("EVENT_RECEIVED"))

		for _, entry := range payload.Entry {
			for _, event := range entry.Messaging {
				if event.Message == nil || event.Message.IsEcho || event.Message.Text == "" {
					continue
				}

				handler.HandleMessage(event.Sender.ID, event.Message.Text)
			}
		}
	}
}
