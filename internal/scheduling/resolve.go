// Package scheduling decides what to do with a free-text booking request:
// it parses the requested slot, validates it against the shop's operating
// hours, checks it against the current bookings and either accepts it or
// suggests free neighbor slots. It is pure over its inputs; persisting an
// accepted booking and messaging the customer are the caller's job.
package scheduling

import (
	"time"

	"github.com/google/uuid"

	"barberbook/internal/models"
)

// Outcome is the kind of decision produced for one inbound message.
type Outcome string

const (
	// OutcomeClarification means no usable date+hour was found in the text.
	OutcomeClarification Outcome = "clarification"
	// OutcomeOutOfHours means the requested hour is outside the shop window.
	OutcomeOutOfHours Outcome = "out_of_hours"
	// OutcomeSlotTaken means the slot is occupied; Suggestions may offer
	// free neighbors and is empty when the shop is fully booked nearby.
	OutcomeSlotTaken Outcome = "slot_taken"
	// OutcomeConfirmed means the slot is free and Booking is ready to persist.
	OutcomeConfirmed Outcome = "confirmed"
)

// Decision is the single structured result of resolving one message
// against a snapshot of the bookings.
type Decision struct {
	Outcome       Outcome
	RequestedHour int
	Suggestions   []string
	Booking       *models.Booking
}

const defaultService = "Haircut (Insta)"

// Resolve turns a raw DM and the current booking snapshot into exactly one
// Decision. It is stateless: calling it twice with the same inputs yields
// the same decision. senderRef is an opaque messaging-platform sender id
// used only to build a placeholder customer label.
func Resolve(text, senderRef string, bookings []models.Booking) Decision {
	return ResolveAt(text, senderRef, bookings, time.Now())
}

// ResolveAt is Resolve with an explicit current time, for callers that
// need a fixed clock.
func ResolveAt(text, senderRef string, bookings []models.Booking, now time.Time) Decision {
	intent, ok := ParseTimeExpression(text, now)
	if !ok {
		return Decision{Outcome: OutcomeClarification}
	}

	if !WithinHours(intent.Hour) {
		return Decision{
			Outcome:       OutcomeOutOfHours,
			RequestedHour: intent.Hour,
		}
	}

	if SlotTaken(bookings, intent.Date, intent.Hour) {
		return Decision{
			Outcome:       OutcomeSlotTaken,
			RequestedHour: intent.Hour,
			Suggestions:   SuggestNeighbors(bookings, intent.Date, intent.Hour),
		}
	}

	booking := &models.Booking{
		ID:          uuid.NewString(),
		Customer:    customerLabel(senderRef),
		Service:     defaultService,
		Date:        intent.Date,
		Time:        models.NewHourValue(intent.Hour),
		Source:      models.SourceInstagram,
		InstagramID: senderRef,
	}

	return Decision{
		Outcome:       OutcomeConfirmed,
		RequestedHour: intent.Hour,
		Booking:       booking,
	}
}

// customerLabel builds a placeholder name from the sender reference; no
// profile lookup is performed.
func customerLabel(senderRef string) string {
	short := senderRef
	if len(short) > 4 {
		short = short[:4]
	}
	return "Instagram User (" + short + ")"
}
