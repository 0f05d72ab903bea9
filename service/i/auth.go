package i

// Authenticator exchanges the operator's admin key for an access token
// granting the protected routes.
type Authenticator interface {
	SignIn(adminKey string) (string, error)
}
