package entities

// UserProfile mirrors a row of the users table. Field names follow the
// table's user_field_names contract.
type UserProfile struct {
	ID                 int    `json:"id"`
	Name               string `json:"nome"`
	Email              string `json:"Email"`
	Company            string `json:"empresa"`
	Phone              string `json:"telefone"`
	PasswordHash       string `json:"senha_hash,omitempty"`
	AvatarURL          string `json:"avatar_url,omitempty"`
	GoogleRefreshToken string `json:"google_refresh_token,omitempty"`
}

// Public strips credentials before the profile leaves the service.
func (u UserProfile) Public() UserProfile {
	u.PasswordHash = ""
	u.GoogleRefreshToken = ""
	return u
}

// GoogleConnected reports whether a refresh token is stored; presence is
// the sole signal that the user granted calendar access.
func (u UserProfile) GoogleConnected() bool {
	return u.GoogleRefreshToken != ""
}
