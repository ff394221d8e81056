// Package interfaces defines contracts between AlphaDesk components
package interfaces

// TokenStore persists the access/refresh token pair. The only client-side
// state that survives a restart.
type TokenStore interface {
	// AccessToken returns the persisted access token, or "" when absent.
	AccessToken() string
	// RefreshToken returns the persisted refresh token, or "" when absent.
	RefreshToken() string
	// Save persists a new token pair, replacing any previous one.
	Save(accessToken, refreshToken string) error
	// Clear removes all persisted tokens.
	Clear() error
}
