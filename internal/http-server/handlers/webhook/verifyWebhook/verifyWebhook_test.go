package verifyWebhook

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"barberbook/internal/lib/logger/handlers/slogdiscard"
)

func TestVerifyWebhookHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	handler := New(logger, "secret_token")

	testCases := []struct {
		name           string
		query          string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid subscription",
			query:          "hub.mode=subscribe&hub.verify_token=secret_token&hub.challenge=12345",
			expectedStatus: http.StatusOK,
			expectedBody:   "12345",
		},
		{
			name:           "wrong token",
			query:          "hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "wrong mode",
			query:          "hub.mode=unsubscribe&hub.verify_token=secret_token&hub.challenge=12345",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing params",
			query:          "",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/webhook/instagram?"+tc.query, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
