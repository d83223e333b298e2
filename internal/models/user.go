package models

// User is an account row. PasswordHash is never serialized.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Identity is the authenticated caller bound to a request by the auth
// middleware: id + username, never the credential.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// PublicUser is the response shape for user listings and profiles.
type PublicUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// Public strips the credential from a User.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
