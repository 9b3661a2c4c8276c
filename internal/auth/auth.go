// Package auth implements the owner allow-list check. The bot serves a
// single configured user; every other requester gets one rejection reply
// and no further processing.
package auth

// Guard answers whether a requester may use the bot
type Guard struct {
	ownerID int64
}

// NewGuard creates a guard for the given owner identifier
func NewGuard(ownerID int64) *Guard {
	return &Guard{ownerID: ownerID}
}

// IsAuthorized reports whether the user is the configured owner
func (g *Guard) IsAuthorized(userID int64) bool {
	return userID == g.ownerID
}
