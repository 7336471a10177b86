// Package jsonfile persists the shop's records as pretty-printed JSON
// files in a single data directory, the same layout the admin UI reads
// and writes. Every operation works on a fresh read of the file, so the
// store is the single place that narrows write races between the bot and
// the UI.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"barberbook/internal/models"
	"barberbook/internal/scheduling"
)

var (
	ErrSlotTaken       = errors.New("slot already booked")
	ErrBookingNotFound = errors.New("booking not found")
)

const (
	bookingsFile    = "bookings.json"
	inventoryFile   = "inventory.json"
	accountingFile  = "accounting.json"
	botSettingsFile = "bot_settings.json"
	botLogsFile     = "bot_logs.json"
)

// maxBotLogs bounds the log file; only the newest entries are kept.
const maxBotLogs = 50

type Storage struct {
	dir string
	mu  sync.Mutex
}

// New opens the data directory, creating it and any missing data files.
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	for _, name := range []string{bookingsFile, inventoryFile, accountingFile, botLogsFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("failed to init %s: %w", name, err)
			}
		}
	}

	return &Storage{dir: dir}, nil
}

// readList decodes a JSON array file into dst. A missing or corrupt file
// yields the zero value: the UI behaves the same way, and one bad file
// must not take the whole service down.
func readList(path string, dst any) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, dst)
}

func writeFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}

	return nil
}

func (s *Storage) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Bookings returns the current booking snapshot, freshly read from disk.
func (s *Storage) Bookings() ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bookings []models.Booking
	readList(s.path(bookingsFile), &bookings)

	return bookings, nil
}

// InsertBookingIfFree appends the booking unless its (date, hour) slot is
// already occupied, in which case it returns ErrSlotTaken. The check and
// the write happen against the same fresh read under the store lock; this
// is the compare-and-set the conflict resolver relies on.
func (s *Storage) InsertBookingIfFree(b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bookings []models.Booking
	readList(s.path(bookingsFile), &bookings)

	hour, err := b.Time.Int()
	if err != nil {
		return fmt.Errorf("booking has invalid hour %q: %w", b.Time, err)
	}

	if scheduling.SlotTaken(bookings, b.Date, hour) {
		return ErrSlotTaken
	}

	bookings = append(bookings, b)

	return writeFile(s.path(bookingsFile), bookings)
}

// DeleteBooking removes the booking with the given id.
func (s *Storage) DeleteBooking(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var bookings []models.Booking
	readList(s.path(bookingsFile), &bookings)

	kept := bookings[:0]
	for _, b := range bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}

	if len(kept) == len(bookings) {
		return ErrBookingNotFound
	}

	return writeFile(s.path(bookingsFile), kept)
}

func (s *Storage) Products() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var products []models.Product
	readList(s.path(inventoryFile), &products)

	return products, nil
}

// ReplaceProducts overwrites the inventory with the given list, matching
// the whole-array save the admin UI performs.
func (s *Storage) ReplaceProducts(products []models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if products == nil {
		products = []models.Product{}
	}

	return writeFile(s.path(inventoryFile), products)
}

func (s *Storage) Transactions() ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var transactions []models.Transaction
	readList(s.path(accountingFile), &transactions)

	return transactions, nil
}

func (s *Storage) ReplaceTransactions(transactions []models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if transactions == nil {
		transactions = []models.Transaction{}
	}

	return writeFile(s.path(accountingFile), transactions)
}

func (s *Storage) BotSettings() (models.BotSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var settings models.BotSettings

	data, err := os.ReadFile(s.path(botSettingsFile))
	if err != nil {
		return settings, nil
	}

	// The settings file starts life as "[]" in legacy data dirs; treat
	// anything that does not decode as empty settings.
	_ = json.Unmarshal(data, &settings)

	return settings, nil
}

func (s *Storage) SaveBotSettings(settings models.BotSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(s.path(botSettingsFile), settings)
}

// BotLogs returns bot activity entries, newest first.
func (s *Storage) BotLogs() ([]models.BotLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var logs []models.BotLog
	readList(s.path(botLogsFile), &logs)

	return logs, nil
}

// AppendBotLog prepends an entry and trims the file to the newest
// maxBotLogs records.
func (s *Storage) AppendBotLog(message, logType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var logs []models.BotLog
	readList(s.path(botLogsFile), &logs)

	entry := models.BotLog{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Message:   message,
		Type:      logType,
	}

	logs = append([]models.BotLog{entry}, logs...)
	if len(logs) > maxBotLogs {
		logs = logs[:maxBotLogs]
	}

	return writeFile(s.path(botLogsFile), logs)
}

// PruneBotLogs rewrites the log file keeping only the newest maxBotLogs
// entries; used by the periodic maintenance loop to repair oversized
// files written by older versions.
func (s *Storage) PruneBotLogs() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var logs []models.BotLog
	readList(s.path(botLogsFile), &logs)

	if len(logs) <= maxBotLogs {
		return nil
	}

	return writeFile(s.path(botLogsFile), logs[:maxBotLogs])
}
