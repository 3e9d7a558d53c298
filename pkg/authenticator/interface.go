package authenticator

import "time"

type TokenEngine interface {
	// Generate signs obj into a token which expires after the given duration.
	Generate(expiration time.Duration, obj any) (string, error)

	// Verify checks the signature and expiration of token and decodes the
	// embedded object into obj.
	Verify(token string, obj any) error
}
