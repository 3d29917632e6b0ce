package model

// User is an application account as stored in the `users` collection of the
// persisted document. Emails are unique case-insensitively; comparison always
// happens against the lower-cased form. The password hash is kept alongside
// the profile fields because the whole document is serialized as one unit,
// but it is never included in API responses.
//
// Fields:
//  ID           – opaque identifier of the user.
//  Email        – unique email address (stored lower-cased).
//  Username     – display name shown in the UI.
//  Avatar       – either an http(s) URL or an embedded data:image/ payload.
//  PasswordHash – bcrypt hash of the password; omitted from JSON when empty.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Avatar       string `json:"avatar"`
	PasswordHash string `json:"password,omitempty"`
}

// Public returns a copy of the user safe to send to clients, with the
// password hash stripped.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}
