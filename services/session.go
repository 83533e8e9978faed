package services

// Session is the explicit actor context carried from the auth middleware
// into the workflow engine. It replaces any ambient token storage: the
// access gate and the decision processor only ever see this struct.
type Session struct {
	UserID int
	Email  string
	Role   string
}

// Valid reports whether the session identifies an authenticated actor.
func (s *Session) Valid() bool {
	return s != nil && s.UserID > 0 && s.Role != ""
}
