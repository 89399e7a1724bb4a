// internal/services/notification_service.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/scmdash/scm-backend/internal/i18n"
	"github.com/scmdash/scm-backend/internal/metrics"
)

const DefaultFeedSize = 100

type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
	LevelWarning NotificationLevel = "warning"
)

type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Resource  string            `json:"resource"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	CreatedAt time.Time         `json:"created_at"`
}

// NotificationService is the user-visible feed of one session. It keeps the
// most recent notifications up to its limit.
type NotificationService struct {
	mu    sync.RWMutex
	lang  string
	limit int
	feed  []Notification
}

func NewNotificationService(lang string, limit int) *NotificationService {
	if lang == "" {
		lang = "en"
	}
	if limit <= 0 {
		limit = DefaultFeedSize
	}
	return &NotificationService{lang: lang, limit: limit}
}

// Success emits a success notification whose title and message come from the
// message catalogue.
func (s *NotificationService) Success(resource, titleKey, messageKey string, args ...interface{}) Notification {
	return s.push(LevelSuccess, resource, i18n.T(s.lang, titleKey), i18n.T(s.lang, messageKey, args...))
}

func (s *NotificationService) Error(resource, messageKey string, args ...interface{}) Notification {
	return s.push(LevelError, resource, i18n.T(s.lang, i18n.KeyError), i18n.T(s.lang, messageKey, args...))
}

func (s *NotificationService) Warning(resource, messageKey string, args ...interface{}) Notification {
	return s.push(LevelWarning, resource, i18n.T(s.lang, i18n.KeyWarning), i18n.T(s.lang, messageKey, args...))
}

// Recent returns up to n notifications, newest first. n <= 0 returns all.
func (s *NotificationService) Recent(n int) []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.feed) {
		n = len(s.feed)
	}
	out := make([]Notification, 0, n)
	for i := len(s.feed) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.feed[i])
	}
	return out
}

func (s *NotificationService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feed = nil
}

func (s *NotificationService) push(level NotificationLevel, resource, title, message string) Notification {
	n := Notification{
		ID:        uuid.New().String(),
		Level:     level,
		Resource:  resource,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.feed = append(s.feed, n)
	if overflow := len(s.feed) - s.limit; overflow > 0 {
		s.feed = append([]Notification(nil), s.feed[overflow:]...)
	}
	s.mu.Unlock()

	metrics.NotificationsEmitted.WithLabelValues(resource, string(level)).Inc()
	logrus.WithFields(logrus.Fields{
		"resource": resource,
		"level":    level,
		"title":    title,
	}).Info(message)

	return n
}
