package model

// AccessToken is the identity embedded in a bearer token issued by the auth
// provider.
type AccessToken struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
