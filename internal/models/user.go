package models

// Credentials are posted to the login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued by the auth backend.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// Registration is posted to the register endpoint.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is returned by the profile endpoint.
type UserProfile struct {
	UserID   int    `json:"userId" yaml:"user_id"`
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email,omitempty" yaml:"email,omitempty"`
}
