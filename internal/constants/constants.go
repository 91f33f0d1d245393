package constants

// ContextKeyUserID is the gin context key holding the authenticated user's ID.
const ContextKeyUserID = "user_id"

const (
	// DefaultBcryptCost matches the work factor the API has always used.
	DefaultBcryptCost = 10

	// DefaultTokenTTLHours is the token lifetime applied when TOKEN_TTL_HOURS is unset.
	DefaultTokenTTLHours = 24
)
