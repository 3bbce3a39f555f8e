package payment

import "time"

// SessionStatus is the lifecycle state of a payment session. The values
// mirror the provider's payment statuses so webhook updates apply verbatim.
type SessionStatus string

const (
	StatusPending   SessionStatus = "pending"
	StatusSucceeded SessionStatus = "succeeded"
	StatusCanceled  SessionStatus = "canceled"
	StatusFailed    SessionStatus = "failed"
)

// Session is the local record of one payment attempt, keyed by the
// provider-assigned payment ID so local and provider views stay linked.
// Created pending by CreateSession; status transitions only through
// webhook notifications; never deleted.
type Session struct {
	ID              string        `bson:"_id"`
	UserID          string        `bson:"userId"`
	PlanID          string        `bson:"planId"`
	Status          SessionStatus `bson:"status"`
	ConfirmationURL string        `bson:"confirmationUrl,omitempty"`
	Email           string        `bson:"email,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt"`
}

// SessionLink is what the client needs to send the user to the hosted
// payment page.
type SessionLink struct {
	ConfirmationURL string `json:"confirmationUrl"`
	PaymentID       string `json:"paymentId"`
}

// Metadata travels with the provider session and returns in the webhook,
// correlating the asynchronous notification back to a user and plan.
type Metadata struct {
	UserID string `json:"userId,omitempty"`
	PlanID string `json:"plan,omitempty"`
}

// PaymentObject is the provider's payment representation inside a
// notification.
type PaymentObject struct {
	ID       string   `json:"id"`
	Status   string   `json:"status"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// Notification is one inbound webhook delivery. Deliveries are at least
// once and unordered.
type Notification struct {
	Event  string        `json:"event"`
	Object PaymentObject `json:"object"`
}
