package entitlement

import "time"

// Status is the resolved access level for a user.
type Status string

const (
	StatusFree Status = "free"
	StatusPro  Status = "pro"
)

// Subscription is the stored per-user entitlement record. One record per
// user, keyed by user ID; absence of a record means free.
type Subscription struct {
	UserID    string     `bson:"_id"`
	Status    Status     `bson:"status"`
	PlanID    string     `bson:"planId,omitempty"`
	UpdatedAt time.Time  `bson:"updatedAt"`
	ExpiresAt *time.Time `bson:"expiresAt,omitempty"`
}

// ExpiredAt reports whether the subscription's expiry has passed at now.
// Records without an expiry never expire.
func (s *Subscription) ExpiredAt(now time.Time) bool {
	return s.ExpiresAt != nil && s.ExpiresAt.Before(now)
}

// Entitlement is the read-model returned to clients: the stored record
// reinterpreted with lazy expiry applied.
type Entitlement struct {
	Status    Status     `json:"status"`
	PlanID    string     `json:"planId,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// IsPro reports whether the entitlement grants pro access.
func (e Entitlement) IsPro() bool {
	return e.Status == StatusPro
}
