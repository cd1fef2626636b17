package entity

import (
	"time"
)

// IdentityProfile is the provider-supplied identity obtained via the OAuth
// handshake.
type IdentityProfile struct {
	ProviderID string `json:"providerId" bson:"providerId"`
	Username   string `json:"username" bson:"username"`
	Name       string `json:"name" bson:"name"`
	AvatarURL  string `json:"avatarUrl" bson:"avatarUrl"`
}

// DisplayName resolves the name shown to the user, falling back from the
// provider display name to the username and finally the provider id.
func (p IdentityProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.Username != "" {
		return p.Username
	}

	return p.ProviderID
}

// Session is an authenticated identity stored server-side, keyed by the
// opaque token held in the client's cookie.
type Session struct {
	Token     string          `json:"token" bson:"_id"`
	Profile   IdentityProfile `json:"profile" bson:"profile"`
	CreatedAt time.Time       `json:"createdAt" bson:"createdAt"`
	ExpiresAt time.Time       `json:"expiresAt" bson:"expiresAt"`
}

// NewSession creates a session for the given profile with the given lifetime.
func NewSession(token string, profile IdentityProfile, ttl time.Duration) *Session {
	now := time.Now().UTC()

	return &Session{
		Token:     token,
		Profile:   profile,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
