package models

// Caller identifies who is making a request. Exactly one of UserID / AnonID
// is expected to be set; the admission and access-check layers receive it
// explicitly instead of reading ambient request state.
type Caller struct {
	UserID        string
	AnonID        string
	Authenticated bool
}

// OwnerKey returns the identity used for per-owner serialization:
// the user id for authenticated callers, the anon id otherwise.
func (c Caller) OwnerKey() string {
	if c.Authenticated {
		return c.UserID
	}
	return c.AnonID
}
