package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:" // Key for session payloads: session:{session_id}

var ErrNoSession = errors.New("no active session")

// User is the authenticated identity carried in a session.
type User struct {
	UserName  string    `json:"userName"`
	Email     string    `json:"email,omitempty"`
	LoginDate time.Time `json:"loginDate"`
}

// Session is the cookie-backed payload. The browser only ever holds a
// signed session id; the payload itself lives in redis.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	LastSeen  time.Time `json:"lastSeen"`
}

// Manager creates, loads, and destroys sessions. A session expires when
// either its absolute duration has elapsed since login, or it has been
// idle longer than the idle duration. Idle expiry rides on the redis key
// TTL, which is refreshed on every authenticated request.
type Manager struct {
	client   *redis.Client
	secret   []byte
	duration time.Duration
	idle     time.Duration
}

func NewManager(client *redis.Client, secret string, duration, idle time.Duration) *Manager {
	return &Manager{
		client:   client,
		secret:   []byte(secret),
		duration: duration,
		idle:     idle,
	}
}

// Create establishes a session for user and returns the signed token to
// set as the cookie value.
func (m *Manager) Create(ctx context.Context, user User) (string, error) {
	now := time.Now().UTC()
	sess := Session{
		ID:        uuid.New().String(),
		User:      user,
		CreatedAt: now,
		LastSeen:  now,
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	if err := m.client.Set(ctx, keyPrefix+sess.ID, data, m.idle).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	return m.sign(sess.ID), nil
}

// Get resolves a token to its session, enforcing both expiry rules and
// refreshing the idle window. Any invalid, missing, or expired token
// resolves to ErrNoSession.
func (m *Manager) Get(ctx context.Context, token string) (*Session, error) {
	id, ok := m.verify(token)
	if !ok {
		return nil, ErrNoSession
	}

	data, err := m.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	now := time.Now().UTC()
	if now.Sub(sess.CreatedAt) > m.duration {
		_ = m.client.Del(ctx, keyPrefix+id).Err()
		return nil, ErrNoSession
	}

	// Touch: refresh the idle window.
	sess.LastSeen = now
	if refreshed, err := json.Marshal(sess); err == nil {
		_ = m.client.Set(ctx, keyPrefix+id, refreshed, m.idle).Err()
	}

	return &sess, nil
}

// Destroy removes the session behind token. Destroying an invalid or
// already-expired token is a no-op.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	id, ok := m.verify(token)
	if !ok {
		return nil
	}
	if err := m.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (m *Manager) sign(id string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(id))
	return id + "." + hex.EncodeToString(mac.Sum(nil))
}

func (m *Manager) verify(token string) (string, bool) {
	id, sig, ok := strings.Cut(token, ".")
	if !ok || id == "" {
		return "", false
	}

	want, err := hex.DecodeString(sig)
	if err != nil {
		return "", false
	}

	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(id))
	if !hmac.Equal(mac.Sum(nil), want) {
		return "", false
	}
	return id, true
}
