package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/models"

	"gopkg.in/yaml.v3"
)

// UserStore manages the durable user roster and the login session record.
// The session is persisted independently of the roster so it survives
// process restarts.
type UserStore struct {
	UsersFile   string
	SessionFile string

	Clock func() time.Time
}

// NewUserStore creates a user store backed by the given roster and session files.
func NewUserStore(usersFile, sessionFile string) *UserStore {
	return &UserStore{
		UsersFile:   usersFile,
		SessionFile: sessionFile,
		Clock:       time.Now,
	}
}

// Users returns all registered users. A missing or corrupt roster yields an
// empty collection.
func (s *UserStore) Users() []models.User {
	data, err := fileutils.ReadFile(s.UsersFile)
	if err != nil {
		log.Debugf("No user data at %s", s.UsersFile)
		return []models.User{}
	}

	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		log.Warnf("Corrupt user data at %s: %v", s.UsersFile, err)
		return []models.User{}
	}
	return users
}

func (s *UserStore) saveUsers(users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := fileutils.WriteFileAtomic(s.UsersFile, data, 0600); err != nil {
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}

// Register creates a new user. The email must be unique across all users
// under case-insensitive comparison.
func (s *UserStore) Register(name, email, password string) (models.User, error) {
	users := s.Users()
	for _, existing := range users {
		if existing.EmailEquals(email) {
			log.Errorf("Registration rejected: email %s already in use", email)
			return models.User{}, ErrEmailTaken
		}
	}

	user := models.NewUser(name, email, password)
	users = append(users, user)
	if err := s.saveUsers(users); err != nil {
		return models.User{}, err
	}

	log.Debugf("Registered user %s (%s)", user.Name, user.Email)
	return user, nil
}

// Login authenticates by case-insensitive email and exact password match.
// On success it creates and persists a session. The failure does not reveal
// whether the email or the password was wrong.
func (s *UserStore) Login(email, password string) (*models.Session, error) {
	for _, user := range s.Users() {
		if user.EmailEquals(email) && user.Password == password {
			session := models.Session{User: user, LoggedInAt: s.Clock()}
			if err := s.saveSession(session); err != nil {
				return nil, err
			}
			log.Debugf("User logged in: %s", user.Email)
			return &session, nil
		}
	}

	log.Debugf("Login failed for email %s", email)
	return nil, ErrInvalidCredentials
}

func (s *UserStore) saveSession(session models.Session) error {
	data, err := yaml.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := fileutils.WriteFileAtomic(s.SessionFile, data, 0600); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// CurrentSession returns the persisted session, or nil when no session
// exists or the record is corrupt.
func (s *UserStore) CurrentSession() *models.Session {
	data, err := fileutils.ReadFile(s.SessionFile)
	if err != nil {
		return nil
	}

	var session models.Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		log.Warnf("Corrupt session data at %s: %v", s.SessionFile, err)
		return nil
	}
	if session.User.ID == "" {
		return nil
	}
	return &session
}

// CurrentUser returns the user of the persisted session, or nil.
func (s *UserStore) CurrentUser() *models.User {
	session := s.CurrentSession()
	if session == nil {
		return nil
	}
	user := session.User
	return &user
}

// IsLoggedIn reports whether a session is present.
func (s *UserStore) IsLoggedIn() bool {
	return s.CurrentSession() != nil
}

// Logout destroys the session. User records remain.
func (s *UserStore) Logout() error {
	err := os.Remove(s.SessionFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	log.Debug("User logged out")
	return nil
}

// IsEmailTaken reports whether another user already holds the email.
// The record with excludingUserID is ignored, so a profile edit can keep
// its own address.
func (s *UserStore) IsEmailTaken(email, excludingUserID string) bool {
	for _, user := range s.Users() {
		if user.ID != excludingUserID && user.EmailEquals(email) {
			return true
		}
	}
	return false
}

// UpdateUser replaces the roster record matching the user's ID. When the
// updated user is the session user, the session snapshot is rewritten too so
// the two records never diverge.
func (s *UserStore) UpdateUser(updated models.User) error {
	if updated.ID == "" {
		log.Error("Attempted to update user with empty ID")
		return ErrEmptyID
	}

	users := s.Users()
	index := -1
	for i, existing := range users {
		if existing.ID == updated.ID {
			index = i
			break
		}
	}
	if index == -1 {
		log.Errorf("User with ID %s not found for update", updated.ID)
		return fmt.Errorf("update user %s: %w", updated.ID, ErrNotFound)
	}

	users[index] = updated
	if err := s.saveUsers(users); err != nil {
		return err
	}

	if session := s.CurrentSession(); session != nil && session.User.ID == updated.ID {
		session.User = updated
		if err := s.saveSession(*session); err != nil {
			return err
		}
	}

	log.Debugf("User updated: %s (%s)", updated.Name, updated.Email)
	return nil
}
