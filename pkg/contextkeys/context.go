package contextkeys

// ContextKey is the type for values stored in gin/request contexts.
type ContextKey string

const (
	// UserIDKey holds the authenticated user's ID, set by the auth middleware.
	UserIDKey ContextKey = "userID"

	// UserEmailKey holds the authenticated user's email.
	UserEmailKey ContextKey = "userEmail"
)
