package entity

import (
	"time"
)

// PayloadType defines the type of the payload
type PayloadType string

const (
	PriceAlert PayloadType = "price_alert"
)

// Payload represents an outbound WhatsApp notification
type Payload struct {
	Type       PayloadType            `json:"type"`
	Phone      string                 `json:"phone"`
	Text       string                 `json:"text"`
	ScheduleAt time.Time              `json:"scheduleAt"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// AlertMessage is the message body accepted by the WhatsApp gateway
type AlertMessage struct {
	Text string `json:"text"`
}

// SendAlertRequest is the wire format of the gateway send endpoint
type SendAlertRequest struct {
	PhoneNumber string       `json:"phoneNumber"`
	Message     AlertMessage `json:"message"`
	ScheduleAt  string       `json:"scheduleAt,omitempty"`
	Type        string       `json:"type"`
}
