package user

import "time"

// Subscription plan tiers. New accounts always start on PlanFree;
// nothing in this service ever changes the tier afterwards.
const (
	PlanFree     = "free"
	PlanPro      = "pro"
	PlanBusiness = "business"
)

// User represents a registered account.
type User struct {
	ID           string    // store-generated UUID, assigned at creation
	Name         string    // display name, free text
	Email        string    // login identifier, unique per account
	PasswordHash string    // bcrypt hash, plaintext is never persisted
	Plan         string    // subscription tier, one of the Plan* constants
	IsVerified   bool      // email verification flag, persisted but not enforced
	CreatedAt    time.Time // set by the store at insert
}
