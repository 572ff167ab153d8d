// Package credential defines the per-user Canvas token store contract.
//
// Tokens are deliberately ephemeral: the durable copy lives with the login
// flow outside this service, so implementations carry no persistence or
// expiry semantics. Expiry is the remote API's concern and surfaces as an
// auth failure on fetch.
package credential

import "errors"

var ErrNotFound = errors.New("no token for this user")

// Repository stores one Canvas access token per user id; saving overwrites
// any previous token (last write wins). Implementations must be safe for
// concurrent use from multiple requests.
type Repository interface {
	// SaveToken records the token for uid. Empty uid or token is an input error.
	SaveToken(uid, token string) error
	// GetToken returns the token for uid, or ErrNotFound.
	GetToken(uid string) (string, error)
}
