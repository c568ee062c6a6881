// Package store persists generation history to Postgres and caches
// recently-returned fingerprints in Redis, the way internal/db.Database
// paired lib/pq and go-redis behind one handle. Either backend is
// optional: a nil *sql.DB or nil *redis.Client degrades its half of the
// store to a no-op (Postgres) or an in-process map (Redis), mirroring
// cmd/server's "Running in demo mode" fallback when the configured
// services aren't reachable.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Record is one row of generation history.
type Record struct {
	ID          string
	Category    string
	Difficulty  string
	Fingerprint string
	WordCount   int
	FillDensity float64
	CreatedAt   time.Time
}

// Store wraps an optional Postgres handle and an optional Redis client.
// When Redis is nil, fingerprint exclusion falls back to an in-process
// map guarded by mu, so a single-instance deployment still dedupes
// without a Redis dependency.
type Store struct {
	db    *sql.DB
	redis *redis.Client

	mu       sync.Mutex
	fallback map[string]time.Time
}

// Open connects to Postgres and Redis. Either URL may be empty, in
// which case that backend is left nil and Store degrades gracefully.
func Open(postgresURL, redisURL string) (*Store, error) {
	s := &Store{fallback: make(map[string]time.Time)}

	if postgresURL != "" {
		db, err := sql.Open("postgres", postgresURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping postgres: %w", err)
		}
		s.db = db
	}

	if redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		s.redis = rdb
	}

	return s, nil
}

// Close releases both backends. Safe to call on a Store returned with
// either backend absent.
func (s *Store) Close() error {
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.redis != nil {
		if rerr := s.redis.Close(); err == nil {
			err = rerr
		}
	}
	return err
}

// InitSchema creates the history table. No-op when Postgres is absent.
func (s *Store) InitSchema() error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS generation_history (
		id VARCHAR(36) PRIMARY KEY,
		category VARCHAR(100) NOT NULL,
		difficulty VARCHAR(20) NOT NULL,
		fingerprint VARCHAR(16) NOT NULL,
		word_count INTEGER NOT NULL,
		fill_density FLOAT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_generation_history_fingerprint ON generation_history(fingerprint);
	CREATE INDEX IF NOT EXISTS idx_generation_history_category ON generation_history(category);
	CREATE INDEX IF NOT EXISTS idx_generation_history_created_at ON generation_history(created_at);
	`)
	return err
}

// RecordGeneration inserts one history row. No-op when Postgres is absent.
func (s *Store) RecordGeneration(r Record) error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(`
		INSERT INTO generation_history (id, category, difficulty, fingerprint, word_count, fill_density, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.Category, r.Difficulty, r.Fingerprint, r.WordCount, r.FillDensity, r.CreatedAt)
	return err
}

// RecentHistory returns the most recent history rows for a category,
// newest first. Returns an empty slice, not an error, when Postgres is
// absent.
func (s *Store) RecentHistory(category string, limit int) ([]Record, error) {
	if s.db == nil {
		return nil, nil
	}
	rows, err := s.db.Query(`
		SELECT id, category, difficulty, fingerprint, word_count, fill_density, created_at
		FROM generation_history WHERE category = $1
		ORDER BY created_at DESC LIMIT $2
	`, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Category, &r.Difficulty, &r.Fingerprint, &r.WordCount, &r.FillDensity, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// fingerprintTTL is how long a returned fingerprint stays excluded from
// future generations for the same category.
const fingerprintTTL = 24 * time.Hour

// MarkSeen records a fingerprint as recently returned. When Redis is
// configured it's stored with an expiring key; otherwise it lands in
// the in-process fallback map.
func (s *Store) MarkSeen(ctx context.Context, category, fingerprint string) error {
	key := "seen:" + category + ":" + fingerprint
	if s.redis != nil {
		return s.redis.Set(ctx, key, "1", fingerprintTTL).Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback[key] = time.Now().Add(fingerprintTTL)
	return nil
}

// HasSeen reports whether a fingerprint was recently returned for a
// category. When using the fallback map, expired entries are purged
// lazily on lookup.
func (s *Store) HasSeen(ctx context.Context, category, fingerprint string) (bool, error) {
	key := "seen:" + category + ":" + fingerprint
	if s.redis != nil {
		n, err := s.redis.Exists(ctx, key).Result()
		if err != nil {
			return false, err
		}
		return n > 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.fallback[key]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.fallback, key)
		return false, nil
	}
	return true, nil
}
