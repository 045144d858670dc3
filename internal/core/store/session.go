package store

const sessionNamespace = "session"

// Session key names match the wire fields the backend returns.
const (
	keyToken  = "token"
	keyRole   = "role"
	keyEmail  = "email"
	keyNombre = "nombre"
)

// Session owns the persisted credentials for the current device user.
// A non-blank token is the single definition of "logged in"; the profile
// fields are best-effort and may be empty for a valid session.
type Session struct {
	kv *KV
}

// NewSession wraps a key-value store with session accessors.
func NewSession(kv *KV) *Session {
	return &Session{kv: kv}
}

// IsLoggedIn reports whether a non-blank token is stored.
func (s *Session) IsLoggedIn() (bool, error) {
	token, _, err := s.kv.Get(sessionNamespace, keyToken)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Token returns the stored bearer token, empty when logged out.
func (s *Session) Token() (string, error) {
	value, _, err := s.kv.Get(sessionNamespace, keyToken)
	return value, err
}

// Role returns the stored role ("dueno" or "veterinario"), empty when unset.
func (s *Session) Role() (string, error) {
	value, _, err := s.kv.Get(sessionNamespace, keyRole)
	return value, err
}

// Email returns the stored account email, empty when unset.
func (s *Session) Email() (string, error) {
	value, _, err := s.kv.Get(sessionNamespace, keyEmail)
	return value, err
}

// DisplayName returns the stored display name, empty when unset.
func (s *Session) DisplayName() (string, error) {
	value, _, err := s.kv.Get(sessionNamespace, keyNombre)
	return value, err
}

// Save overwrites all four session fields in one transaction.
func (s *Session) Save(token, role, email, displayName string) error {
	return s.kv.SetMany(sessionNamespace, map[string]string{
		keyToken:  token,
		keyRole:   role,
		keyEmail:  email,
		keyNombre: displayName,
	})
}

// Clear removes every session key in one operation.
func (s *Session) Clear() error {
	return s.kv.ClearNamespace(sessionNamespace)
}
