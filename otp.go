package apppass

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultOTPTTL applies when the caller supplies no TTL.
	DefaultOTPTTL = 300 * time.Second
	// DefaultOTPLength applies when the caller supplies no length.
	DefaultOTPLength = 10
)

// expiryScheduler tracks one pending deletion timer per OTP name so a
// manual delete can cancel the deferred one. Timers die with the
// process; the startup sweep remains the authoritative cleanup.
type expiryScheduler struct {
	mu     sync.Mutex
	timers map[string]scheduledDeletion
}

type scheduledDeletion struct {
	token uuid.UUID
	timer *time.Timer
}

func newExpiryScheduler() *expiryScheduler {
	return &expiryScheduler{timers: make(map[string]scheduledDeletion)}
}

// schedule arms a deletion for name after ttl, replacing any pending
// one. fire runs on the timer goroutine.
func (s *expiryScheduler) schedule(name string, ttl time.Duration, fire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.timers[name]; ok {
		prev.timer.Stop()
	}
	token := uuid.New()
	timer := time.AfterFunc(ttl, func() {
		s.fired(name, token)
		fire()
	})
	s.timers[name] = scheduledDeletion{token: token, timer: timer}
}

func (s *expiryScheduler) cancel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.timers[name]; ok {
		d.timer.Stop()
		delete(s.timers, name)
	}
}

// fired clears the bookkeeping for a fired timer, unless the slot was
// rearmed in the meantime.
func (s *expiryScheduler) fired(name string, token uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.timers[name]; ok && d.token == token {
		delete(s.timers, name)
	}
}

// pending reports whether a deletion is currently armed for name.
func (s *expiryScheduler) pending(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[name]
	return ok
}

// GenerateOTP stores a time-boxed password for name and schedules its
// deletion once ttl elapses, returning the generated value. The
// deferred deletion is best effort: it dies with the process, and
// CleanupExpiredOTPs compensates on next startup. An existing entry
// under name is rejected, never overwritten.
func (m *Manager) GenerateOTP(name string, ttl time.Duration, length int) (string, error) {
	if m.exists(name) {
		return "", ErrExists
	}
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	if length <= 0 {
		length = DefaultOTPLength
	}
	otp, err := randomAlphanumeric(length)
	if err != nil {
		return "", err
	}
	expiry := time.Now().Add(ttl).Unix()
	if err := m.saveEntry(name, otp, TypeAuto); err != nil {
		return "", err
	}
	if err := m.setOTPExpiry(name, expiry); err != nil {
		m.log.WithError(err).WithField("app", name).Warn("failed to save OTP expiry")
	}
	m.sched.schedule(name, ttl, func() {
		if err := m.deleteOTP(name); err != nil {
			m.log.WithError(err).WithField("app", name).Warn("failed to auto-delete OTP")
		}
	})
	return otp, nil
}

// deleteOTP removes the OTP entry, its metadata and its index slot.
// Safe to race with a manual delete: both sides are idempotent.
func (m *Manager) deleteOTP(name string) error {
	if err := m.del(EntryKey(name)); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	m.deleteMetadata(name)
	return m.indexRemove(name)
}

// IsOTPExpired reports whether the OTP stored under name has passed
// its expiry. A name with no expiry record is not an OTP and reports
// false.
func (m *Manager) IsOTPExpired(name string) bool {
	expiry, ok := m.OTPExpiry(name)
	if !ok {
		return false
	}
	return time.Now().Unix() >= expiry
}

// CleanupExpiredOTPs deletes every indexed OTP whose expiry has
// passed. Run at process startup to collect OTPs whose deletion
// timer never fired because the previous process exited first.
func (m *Manager) CleanupExpiredOTPs() {
	names, err := m.Index()
	if err != nil {
		m.log.WithError(err).Warn("failed to read index during OTP sweep")
		return
	}
	now := time.Now().Unix()
	for _, name := range names {
		expiry, ok := m.OTPExpiry(name)
		if !ok || expiry > now {
			continue
		}
		if err := m.deleteOTP(name); err != nil {
			m.log.WithError(err).WithField("app", name).Warn("failed to clean up expired OTP")
		}
	}
}
