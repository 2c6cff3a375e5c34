package store

// User is one account record. SessionID 0 means no active session.
type User struct {
	PasswordHash string `json:"password_hash"`
	SessionID    int    `json:"session_id"`
}

// State is the full store document: users keyed by username, active
// sessions keyed by the decimal form of the token. The issuer keeps the
// two maps bidirectionally consistent; field names match existing
// snapshots and must not change.
type State struct {
	Users    map[string]User   `json:"users"`
	Sessions map[string]string `json:"sessions"`
}

func NewState() *State {
	return &State{
		Users:    make(map[string]User),
		Sessions: make(map[string]string),
	}
}

// normalize allocates missing maps after decoding a sparse document.
func (s *State) normalize() {
	if s.Users == nil {
		s.Users = make(map[string]User)
	}
	if s.Sessions == nil {
		s.Sessions = make(map[string]string)
	}
}
