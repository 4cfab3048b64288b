package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"alfredoptarigan/interview-coach/internal/config"
	"alfredoptarigan/interview-coach/internal/models"
)

const (
	keyJobDesc     = "job_desc"
	keyCompanyInfo = "company_info"
	keyResume      = "resume"
	keyParsedInfo  = "parsed_info"

	exportKeyPrefix = "html_file_"
)

// SessionStore keeps per-client interview state in a cookie-keyed session.
type SessionStore struct {
	store *session.Store
}

func NewSessionStore(cfg config.SessionConfig) *SessionStore {
	store := session.New(session.Config{
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   cfg.CookieSecure,
	})
	store.RegisterType(models.JobInfo{})

	return &SessionStore{store: store}
}

// Load returns the caller's session, creating one if needed.
func (s *SessionStore) Load(c *fiber.Ctx) (*Session, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &Session{sess: sess}, nil
}

type Session struct {
	sess *session.Session
}

func (s *Session) ID() string {
	return s.sess.ID()
}

// String returns the string stored under key, or "" if absent.
func (s *Session) String(key string) string {
	if v, ok := s.sess.Get(key).(string); ok {
		return v
	}
	return ""
}

// StringOr prefers the request value when the client sent one.
func (s *Session) StringOr(value *string, key string) string {
	if value != nil {
		return *value
	}
	return s.String(key)
}

func (s *Session) SetString(key, value string) {
	s.sess.Set(key, value)
}

func (s *Session) JobInfo() (models.JobInfo, bool) {
	info, ok := s.sess.Get(keyParsedInfo).(models.JobInfo)
	return info, ok
}

func (s *Session) SetJobInfo(info models.JobInfo) {
	s.sess.Set(keyParsedInfo, info)
}

func (s *Session) ExportPath(fileID string) string {
	return s.String(exportKeyPrefix + fileID)
}

func (s *Session) SetExportPath(fileID, path string) {
	s.sess.Set(exportKeyPrefix+fileID, path)
}

func (s *Session) Save() error {
	if err := s.sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
