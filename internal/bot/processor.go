// Package bot turns inbound Instagram DMs into booking actions: it runs
// the scheduling decision over a fresh snapshot, persists confirmed
// bookings through the store's insert-if-absent contract and sends the
// reply. Each message is handled in one synchronous pass with no state
// carried between calls.
package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"barberbook/internal/lib/logger/sl"
	"barberbook/internal/models"
	"barberbook/internal/scheduling"
	"barberbook/internal/storage/jsonfile"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStore
type BookingStore interface {
	Bookings() ([]models.Booking, error)
	InsertBookingIfFree(b models.Booking) error
	AppendBotLog(message, logType string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Notify(recipientID, text string) error
}

type Processor struct {
	log      *slog.Logger
	store    BookingStore
	notifier Notifier
}

func New(log *slog.Logger, store BookingStore, notifier Notifier) *Processor {
	return &Processor{
		log:      log,
		store:    store,
		notifier: notifier,
	}
}

const (
	replyHelp       = "👋 Hello! To book, please say something like: 'Haircut tomorrow at 4pm'"
	replyOutOfHours = "❌ We are only open from 12:00 PM to 10:00 PM. Please choose another time."
)

// HandleMessage processes one non-echo DM. Send failures are logged and
// swallowed: replies are fire and forget.
func (p *Processor) HandleMessage(senderID, text string) {
	const op = "bot.Processor.HandleMessage"

	log := p.log.With(slog.String("op", op), slog.String("sender_id", senderID))

	if text == "" {
		return
	}

	p.logActivity(fmt.Sprintf("Received DM: %q", text), models.BotLogIncoming)

	snapshot, err := p.store.Bookings()
	if err != nil {
		log.Error("failed to load bookings", sl.Err(err))
		p.logActivity("Failed to read bookings: "+err.Error(), models.BotLogError)
		return
	}

	decision := scheduling.Resolve(text, senderID, snapshot)

	switch decision.Outcome {
	case scheduling.OutcomeClarification:
		p.reply(log, senderID, replyHelp)

	case scheduling.OutcomeOutOfHours:
		p.reply(log, senderID, replyOutOfHours)

	case scheduling.OutcomeSlotTaken:
		p.reply(log, senderID, slotTakenReply(decision.RequestedHour, decision.Suggestions))

	case scheduling.OutcomeConfirmed:
		p.confirm(log, senderID, decision)
	}
}

func (p *Processor) confirm(log *slog.Logger, senderID string, decision scheduling.Decision) {
	booking := *decision.Booking

	err := p.store.InsertBookingIfFree(booking)
	if errors.Is(err, jsonfile.ErrSlotTaken) {
		// Lost the race to a concurrent write; answer as if the slot had
		// been taken all along, with suggestions from the current state.
		snapshot, snapErr := p.store.Bookings()
		if snapErr != nil {
			log.Error("failed to reload bookings", sl.Err(snapErr))
			snapshot = nil
		}

		suggestions := scheduling.SuggestNeighbors(snapshot, booking.Date, decision.RequestedHour)
		p.reply(log, senderID, slotTakenReply(decision.RequestedHour, suggestions))
		return
	}
	if err != nil {
		log.Error("failed to persist booking", sl.Err(err))
		p.logActivity("Failed to save booking: "+err.Error(), models.BotLogError)
		return
	}

	p.logActivity(fmt.Sprintf("Created booking for %s @ %d", booking.Date, decision.RequestedHour), models.BotLogSuccess)

	p.reply(log, senderID, fmt.Sprintf(
		"✅ Confirmed! Booked for %s at %s. See you soon at 3BD Barber Shop! ✂️",
		booking.Date,
		scheduling.HourLabel(decision.RequestedHour),
	))
}

func slotTakenReply(hour int, suggestions []string) string {
	suggestionText := "Fully booked around that time."
	if len(suggestions) > 0 {
		suggestionText = "Available times near that: " + strings.Join(suggestions, " or ")
	}

	return fmt.Sprintf("❌ Sorry, %s is taken. %s", scheduling.HourLabel(hour), suggestionText)
}

func (p *Processor) reply(log *slog.Logger, recipientID, text string) {
	if err := p.notifier.Notify(recipientID, text); err != nil {
		log.Error("failed to send reply", sl.Err(err))
		p.logActivity("Failed to send message: "+err.Error(), models.BotLogError)
		return
	}

	preview := text
	if r := []rune(preview); len(r) > 20 {
		preview = string(r[:20]) + "..."
	}
	p.logActivity(fmt.Sprintf("Sent reply to %s: %q", recipientID, preview), models.BotLogOutgoing)
}

// logActivity records an entry on the bot activity feed shown in the
// admin UI; failures there must never affect message handling.
func (p *Processor) logActivity(message, logType string) {
	if err := p.store.AppendBotLog(message, logType); err != nil {
		p.log.Error("failed to append bot log", sl.Err(err))
	}
}
