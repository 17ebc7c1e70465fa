package dto

// AdminLoginRequest carries the shared admin secret
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminSessionData is returned on successful login. Token is a short-lived
// signed credential the client re-sends on every privileged call.
type AdminSessionData struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}
