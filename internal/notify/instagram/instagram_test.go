package instagram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotify(t *testing.T) {
	t.Parallel()

	var gotPath, gotToken string
	var gotPayload messagePayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(srv.URL, func() string { return "token123" })

	err := client.Notify("recipient1", "hello")
	require.NoError(t, err)

	assert.Equal(t, "/me/messages", gotPath)
	assert.Equal(t, "token123", gotToken)
	assert.Equal(t, "recipient1", gotPayload.Recipient.ID)
	assert.Equal(t, "hello", gotPayload.Message.Text)
}

func TestNotifyWithoutToken(t *testing.T) {
	t.Parallel()

	client := New("http://unused", func() string { return "" })

	err := client.Notify("recipient1", "hello")
	assert.ErrorIs(t, err, ErrNoAccessToken)
}

func TestNotifyGraphAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid token"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, func() string { return "bad" })

	err := client.Notify("recipient1", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
