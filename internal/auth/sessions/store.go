package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "auth:session:" // Session data: auth:session:{token}
	userSessionsKey  = "auth:user:"    // Set of tokens for a user: auth:user:{username}
)

var ErrNotFound = errors.New("session not found")

// Session records a token issued by the login endpoint. Verification of
// bearer tokens stays rule-based; sessions exist for diagnostics and TTL
// housekeeping only.
type Session struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	IssuedAt time.Time `json:"issued_at"`
}

// Store keeps issued sessions in Redis with a TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) TTL() time.Duration { return s.ttl }

// Put stores the session and indexes it under the user's token set.
func (s *Store) Put(ctx context.Context, sess Session) error {
	if sess.Token == "" {
		return fmt.Errorf("session token required")
	}
	if sess.IssuedAt.IsZero() {
		sess.IssuedAt = time.Now().UTC()
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.sessionKey(sess.Token), data, s.ttl)
	pipe.SAdd(ctx, s.userKey(sess.Username), sess.Token)
	pipe.Expire(ctx, s.userKey(sess.Username), s.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Get retrieves a session by token.
func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, s.sessionKey(token)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// Touch refreshes the TTL of an active session.
func (s *Store) Touch(ctx context.Context, token string) error {
	ok, err := s.client.Expire(ctx, s.sessionKey(token), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of live sessions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var (
		cursor uint64
		total  int
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, sessionKeyPrefix+"*", 100).Result()
		if err != nil {
			return 0, fmt.Errorf("scan sessions: %w", err)
		}
		total += len(keys)
		cursor = next
		if cursor == 0 {
			return total, nil
		}
	}
}

// PurgeExpired deletes sessions whose issue time is past the TTL. Redis
// expires keys on its own, but the embedded server used in dev keeps its
// clock frozen, so the janitor sweeps by issued_at instead.
func (s *Store) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	var (
		cursor uint64
		purged int
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, sessionKeyPrefix+"*", 100).Result()
		if err != nil {
			return purged, fmt.Errorf("scan sessions: %w", err)
		}

		for _, key := range keys {
			data, err := s.client.Get(ctx, key).Bytes()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				return purged, fmt.Errorf("get session: %w", err)
			}

			var sess Session
			if err := json.Unmarshal(data, &sess); err != nil {
				// Unreadable entry, drop it.
				s.client.Del(ctx, key)
				purged++
				continue
			}

			if now.Sub(sess.IssuedAt) > s.ttl {
				pipe := s.client.Pipeline()
				pipe.Del(ctx, key)
				pipe.SRem(ctx, s.userKey(sess.Username), sess.Token)
				if _, err := pipe.Exec(ctx); err != nil {
					return purged, fmt.Errorf("purge session: %w", err)
				}
				purged++
			}
		}

		cursor = next
		if cursor == 0 {
			return purged, nil
		}
	}
}

func (s *Store) sessionKey(token string) string { return sessionKeyPrefix + token }
func (s *Store) userKey(username string) string { return userSessionsKey + username }
