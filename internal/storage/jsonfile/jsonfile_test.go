package jsonfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberbook/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	storage, err := New(t.TempDir())
	require.NoError(t, err)

	return storage
}

func testBooking(id, date string, hour int) models.Booking {
	return models.Booking{
		ID:       id,
		Customer: "Walk In",
		Service:  "Haircut",
		Date:     date,
		Time:     models.NewHourValue(hour),
		Source:   models.SourceManual,
	}
}

func TestNewCreatesDataFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := New(dir)
	require.NoError(t, err)

	for _, name := range []string{"bookings.json", "inventory.json", "accounting.json", "bot_logs.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(data))
	}
}

func TestInsertBookingIfFree(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	require.NoError(t, storage.InsertBookingIfFree(testBooking("a", "2024-01-10", 15)))

	bookings, err := storage.Bookings()
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "a", bookings[0].ID)
}

func TestInsertBookingIfFreeRejectsTakenSlot(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	require.NoError(t, storage.InsertBookingIfFree(testBooking("a", "2024-01-10", 15)))

	err := storage.InsertBookingIfFree(testBooking("b", "2024-01-10", 15))
	require.ErrorIs(t, err, ErrSlotTaken)

	bookings, err := storage.Bookings()
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestInsertBookingIfFreeAllowsSameHourOtherDay(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	require.NoError(t, storage.InsertBookingIfFree(testBooking("a", "2024-01-10", 15)))
	require.NoError(t, storage.InsertBookingIfFree(testBooking("b", "2024-01-11", 15)))

	bookings, err := storage.Bookings()
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestInsertBookingIfFreeRejectsInvalidHour(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	b := testBooking("a", "2024-01-10", 15)
	b.Time = models.HourValue("noonish")

	err := storage.InsertBookingIfFree(b)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSlotTaken))
}

func TestInsertBookingIfFreeWithLegacyStringHours(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	legacy := `[{"id": "old", "customer": "X", "service": "Haircut", "date": "2024-01-10", "time": "15", "source": "manual"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bookings.json"), []byte(legacy), 0o644))

	storage, err := New(dir)
	require.NoError(t, err)

	err = storage.InsertBookingIfFree(testBooking("new", "2024-01-10", 15))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestDeleteBooking(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	require.NoError(t, storage.InsertBookingIfFree(testBooking("a", "2024-01-10", 15)))

	require.NoError(t, storage.DeleteBooking("a"))

	bookings, err := storage.Bookings()
	require.NoError(t, err)
	assert.Empty(t, bookings)

	assert.ErrorIs(t, storage.DeleteBooking("a"), ErrBookingNotFound)
}

func TestBookingsSurvivesCorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bookings.json"), []byte("{not json"), 0o644))

	storage, err := New(dir)
	require.NoError(t, err)

	bookings, err := storage.Bookings()
	require.NoError(t, err)
	assert.Empty(t, bookings)

	// The store recovers on the next successful write.
	require.NoError(t, storage.InsertBookingIfFree(testBooking("a", "2024-01-10", 15)))
}

func TestReplaceProducts(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	products := []models.Product{
		{ID: "p1", Name: "Pomade", Qty: 10, Price: 14.5},
		{ID: "p2", Name: "Beard Oil", Qty: 3, Price: 22},
	}

	require.NoError(t, storage.ReplaceProducts(products))

	got, err := storage.Products()
	require.NoError(t, err)
	assert.Equal(t, products, got)

	require.NoError(t, storage.ReplaceProducts(nil))

	got, err = storage.Products()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReplaceTransactions(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	transactions := []models.Transaction{
		{ID: "t1", Date: "2024-01-10", Category: "Haircut", Type: models.TransactionIncome, Amount: 30},
	}

	require.NoError(t, storage.ReplaceTransactions(transactions))

	got, err := storage.Transactions()
	require.NoError(t, err)
	assert.Equal(t, transactions, got)
}

func TestBotSettingsRoundTrip(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	settings, err := storage.BotSettings()
	require.NoError(t, err)
	assert.Empty(t, settings.AccessToken)

	require.NoError(t, storage.SaveBotSettings(models.BotSettings{AccessToken: "token123"}))

	settings, err = storage.BotSettings()
	require.NoError(t, err)
	assert.Equal(t, "token123", settings.AccessToken)
}

func TestBotSettingsLegacyArrayFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bot_settings.json"), []byte("[]"), 0o644))

	storage, err := New(dir)
	require.NoError(t, err)

	settings, err := storage.BotSettings()
	require.NoError(t, err)
	assert.Empty(t, settings.AccessToken)
}

func TestAppendBotLogKeepsNewestFifty(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)

	for i := 0; i < 55; i++ {
		require.NoError(t, storage.AppendBotLog("entry", models.BotLogInfo))
	}
	require.NoError(t, storage.AppendBotLog("latest", models.BotLogSuccess))

	logs, err := storage.BotLogs()
	require.NoError(t, err)
	require.Len(t, logs, 50)
	assert.Equal(t, "latest", logs[0].Message)
	assert.Equal(t, models.BotLogSuccess, logs[0].Type)
}
