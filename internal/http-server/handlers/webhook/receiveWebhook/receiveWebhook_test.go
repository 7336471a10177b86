package receiveWebhook

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"barberbook/internal/http-server/handlers/webhook/receiveWebhook/mocks"
	"barberbook/internal/lib/logger/handlers/slogdiscard"
)

func TestReceiveWebhookHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(handler *mocks.MessageHandler)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Instagram message dispatched",
			requestBody: `{
				"object": "instagram",
				"entry": [{"messaging": [{"sender": {"id": "user1"}, "message": {"text": "tomorrow at 5pm"}}]}]
			}`,
			mockSetup: func(handler *mocks.MessageHandler) {
				handler.On("HandleMessage", "user1", "tomorrow at 5pm").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "EVENT_RECEIVED",
		},
		{
			name: "Echo messages skipped",
			requestBody: `{
				"object": "instagram",
				"entry": [{"messaging": [{"sender": {"id": "page"}, "message": {"text": "Confirmed!", "is_echo": true}}]}]
			}`,
			mockSetup:      func(handler *mocks.MessageHandler) {},
			expectedStatus: http.StatusOK,
			expectedBody:   "EVENT_RECEIVED",
		},
		{
			name: "Events without text skipped",
			requestBody: `{
				"object": "instagram",
				"entry": [{"messaging": [{"sender": {"id": "user1"}}]}]
			}`,
			mockSetup:      func(handler *mocks.MessageHandler) {},
			expectedStatus: http.StatusOK,
			expectedBody:   "EVENT_RECEIVED",
		},
		{
			name: "Multiple entries all dispatched",
			requestBody: `{
				"object": "instagram",
				"entry": [
					{"messaging": [{"sender": {"id": "user1"}, "message": {"text": "today at 4"}}]},
					{"messaging": [{"sender": {"id": "user2"}, "message": {"text": "hello"}}]}
				]
			}`,
			mockSetup: func(handler *mocks.MessageHandler) {
				handler.On("HandleMessage", "user1", "today at 4").Return()
				handler.On("HandleMessage", "user2", "hello").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "EVENT_RECEIVED",
		},
		{
			name:           "Non-instagram object",
			requestBody:    `{"object": "page", "entry": []}`,
			mockSetup:      func(handler *mocks.MessageHandler) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `not json`,
			mockSetup:      func(handler *mocks.MessageHandler) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := mocks.NewMessageHandler(t)
			tc.mockSetup(handler)

			req := httptest.NewRequest(http.MethodPost, "/webhook/instagram", bytes.NewBufferString(tc.requestBody))
			rr := httptest.NewRecorder()

			New(logger, handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			}

			if len(tc.requestBody) > 0 && tc.expectedStatus == http.StatusOK {
				handler.AssertExpectations(t)
			}
			if tc.name == "Echo messages skipped" || tc.name == "Events without text skipped" {
				handler.AssertNotCalled(t, "HandleMessage", mock.Anything, mock.Anything)
			}
		})
	}
}
