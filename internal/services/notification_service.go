package services

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationLoading NotificationKind = "loading"
)

// Notification is one user-visible message. ID ties milestones of a logical
// operation together: a later notification with the same ID replaces the
// earlier one, so a confirmation supersedes its loading message.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
	ID      string           `json:"id,omitempty"`
	At      time.Time        `json:"at"`
}

// NotificationSink receives every emitted notification.
type NotificationSink interface {
	Notify(n Notification)
}

type NotificationService interface {
	AddSink(sink NotificationSink)
	Notify(n Notification)
	Success(id, message string)
	Error(id, message string)
	Loading(id, message string)
	Recent() []Notification
}

const recentLimit = 100

type notificationService struct {
	mu     sync.Mutex
	sinks  []NotificationSink
	recent []Notification
}

func NewNotificationService() NotificationService {
	return &notificationService{}
}

func (s *notificationService) AddSink(sink NotificationSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = append(s.sinks, sink)
}

func (s *notificationService) Notify(n Notification) {
	if n.At.IsZero() {
		n.At = time.Now()
	}

	s.mu.Lock()
	replaced := false
	if n.ID != "" {
		for i := range s.recent {
			if s.recent[i].ID == n.ID {
				s.recent[i] = n
				replaced = true
				break
			}
		}
	}
	if !replaced {
		s.recent = append(s.recent, n)
		if len(s.recent) > recentLimit {
			s.recent = s.recent[len(s.recent)-recentLimit:]
		}
	}
	sinks := make([]NotificationSink, len(s.sinks))
	copy(sinks, s.sinks)
	s.mu.Unlock()

	for _, sink := range sinks {
		sink.Notify(n)
	}
}

func (s *notificationService) Success(id, message string) {
	s.Notify(Notification{Kind: NotificationSuccess, Message: message, ID: id})
}

func (s *notificationService) Error(id, message string) {
	s.Notify(Notification{Kind: NotificationError, Message: message, ID: id})
}

func (s *notificationService) Loading(id, message string) {
	s.Notify(Notification{Kind: NotificationLoading, Message: message, ID: id})
}

func (s *notificationService) Recent() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.recent))
	copy(out, s.recent)
	return out
}

// zapSink mirrors notifications into the process log.
type zapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) NotificationSink {
	return &zapSink{log: log}
}

func (z *zapSink) Notify(n Notification) {
	fields := []zap.Field{zap.String("kind", string(n.Kind))}
	if n.ID != "" {
		fields = append(fields, zap.String("op", n.ID))
	}
	if n.Kind == NotificationError {
		z.log.Warn(n.Message, fields...)
		return
	}
	z.log.Info(n.Message, fields...)
}
