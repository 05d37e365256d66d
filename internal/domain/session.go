package domain

// Session represents the signed-in identity. It is owned exclusively by the
// auth gateway; all other components read it through accessor calls and the
// session-changed subscription.
type Session struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	Authenticated bool   `json:"authenticated"`
}

// Anonymous returns the zero session used when nobody is signed in.
func Anonymous() Session {
	return Session{}
}
