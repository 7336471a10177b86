package models

import "time"

const (
	BotLogInfo     = "info"
	BotLogError    = "error"
	BotLogSuccess  = "success"
	BotLogIncoming = "incoming"
	BotLogOutgoing = "outgoing"
)

type BotLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
}

type BotSettings struct {
	AccessToken string `json:"accessToken"`
}
