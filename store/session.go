package store

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/ZeyadMahfouzz/supermarket-client/api"
	"github.com/ZeyadMahfouzz/supermarket-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// Result is the uniform outcome of storefront operations. Nothing in the
// stores panics or returns raw errors across the component boundary; callers
// decide how to present the message.
type Result struct {
	Success bool
	Message string
}

func failure(message string) Result {
	return Result{Message: message}
}

// SessionStore holds the authenticated identity for the life of the process
// and persists it so a restart does not lose the login. It registers itself
// as the API client's unauthorized hook: a 401 from any endpoint tears the
// session down and notifies the views.
type SessionStore struct {
	api  *api.Client
	file sessionFile

	mu        sync.RWMutex
	current   models.Session
	onExpired func()
}

func NewSessionStore(client *api.Client, sessionPath string) *SessionStore {
	store := &SessionStore{api: client, file: sessionFile{path: sessionPath}}
	if session, ok := store.file.load(); ok {
		store.current = session
		client.SetSession(session)
	}
	client.OnUnauthorized(store.handleUnauthorized)
	return store
}

// OnExpired registers the hook fired after a forced teardown, so the views
// can route back to the login screen.
func (s *SessionStore) OnExpired(hook func()) {
	s.mu.Lock()
	s.onExpired = hook
	s.mu.Unlock()
}

func (s *SessionStore) Login(email, password string) Result {
	token, err := s.api.Auth.Login(email, password)
	if err != nil {
		return failure(err.Error())
	}

	session, err := sessionFromToken(token)
	if err != nil {
		log.Println("Malformed credential from login:", err)
		return failure("Login failed. Please try again.")
	}
	if session.Email == "" {
		session.Email = email
	}
	if session.Name == "" {
		session.Name = nameFromEmail(session.Email)
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
	s.api.SetSession(session)

	if err := s.file.save(session); err != nil {
		log.Println("Failed to persist session:", err)
	}
	return Result{Success: true}
}

// Register creates the account and, on success, immediately logs in with the
// same credentials.
func (s *SessionStore) Register(data models.RegisterData) Result {
	if err := s.api.Auth.Register(data); err != nil {
		return failure(err.Error())
	}
	return s.Login(data.Email, data.Password)
}

func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.current = models.Session{}
	s.mu.Unlock()
	s.api.ClearSession()
	s.file.clear()
}

func (s *SessionStore) handleUnauthorized() {
	s.mu.Lock()
	s.current = models.Session{}
	hook := s.onExpired
	s.mu.Unlock()
	s.file.clear()
	if hook != nil {
		hook()
	}
}

func (s *SessionStore) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SessionStore) IsAuthenticated() bool {
	return s.Current().Token != ""
}

func (s *SessionStore) IsAdmin() bool {
	return s.Current().IsAdmin()
}

// sessionFromToken decodes identity out of the bearer token without
// verifying the signature. The client never holds the signing secret; the
// gateway re-validates every request, so the claims here only drive UI
// affordances.
func sessionFromToken(token string) (models.Session, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return models.Session{}, err
	}

	session := models.Session{Token: token, Role: models.RoleUser}
	if id, ok := claims["userId"].(float64); ok {
		session.UserID = int64(id)
	}
	if email, ok := claims["sub"].(string); ok {
		session.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	if role, ok := claims["role"].(string); ok && role != "" {
		session.Role = models.Role(role)
	}

	if session.UserID == 0 {
		return models.Session{}, errors.New("credential is missing the user id claim")
	}
	return session, nil
}

func nameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
