// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"parishcms/internal/cache"
	"parishcms/internal/database"
	"parishcms/internal/middleware"
	"parishcms/internal/session"
	"parishcms/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "parishcms")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "parishcms")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		// Clean up test session and cache keys.
		for _, pattern := range []string{"session:*", "page:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB            *sql.DB
	Valkey        *redis.Client
	Sessions      *session.Store
	PageStore     *store.PageStore
	UserStore     *store.UserStore
	SettingStore  *store.SettingStore
	EventStore    *store.EventStore
	SermonStore   *store.SermonStore
	BulletinStore *store.BulletinStore
	PageCache     *cache.PageCache
	Pages         *Pages
	Public        *Public
	Settings      *Settings
	Events        *Events
	Sermons       *Sermons
	Bulletins     *Bulletins
	Reset         *Reset
	Auth          *Auth
}

// newTestEnv creates a complete test environment with all handler dependencies.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	sessions := session.NewStore(vk, false)
	pageStore := store.NewPageStore(db)
	userStore := store.NewUserStore(db)
	settingStore := store.NewSettingStore(db)
	eventStore := store.NewEventStore(db)
	sermonStore := store.NewSermonStore(db)
	bulletinStore := store.NewBulletinStore(db)
	pageCache := cache.NewPageCache(vk, 1*time.Minute)

	return &testEnv{
		DB:            db,
		Valkey:        vk,
		Sessions:      sessions,
		PageStore:     pageStore,
		UserStore:     userStore,
		SettingStore:  settingStore,
		EventStore:    eventStore,
		SermonStore:   sermonStore,
		BulletinStore: bulletinStore,
		PageCache:     pageCache,
		Pages:         NewPages(pageStore, pageCache),
		Public:        NewPublic(pageStore, settingStore, pageCache),
		Settings:      NewSettings(settingStore, pageCache),
		Events:        NewEvents(eventStore),
		Sermons:       NewSermons(sermonStore),
		Bulletins:     NewBulletins(bulletinStore),
		Reset:         NewReset(pageStore, pageCache),
		Auth:          NewAuth(sessions, userStore),
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email, role string, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
		Role:        role,
		TwoFADone:   twoFADone,
	}
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// cleanPages removes test pages by slug.
func cleanPages(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM pages WHERE slug = $1", s)
	}
}

// cleanUsers removes test users by email.
func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, e := range emails {
		db.Exec("DELETE FROM users WHERE email = $1", e)
	}
}

// cleanEvents removes test events by title.
func cleanEvents(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM events WHERE title = $1", title)
	}
}

// cleanSermons removes test sermons by title.
func cleanSermons(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM sermons WHERE title = $1", title)
	}
}

// cleanBulletins removes test bulletins by title.
func cleanBulletins(t *testing.T, db *sql.DB, titles ...string) {
	t.Helper()
	for _, title := range titles {
		db.Exec("DELETE FROM bulletins WHERE title = $1", title)
	}
}

// cleanSettings removes test settings sections.
func cleanSettings(t *testing.T, db *sql.DB, sections ...string) {
	t.Helper()
	for _, s := range sections {
		db.Exec("DELETE FROM settings WHERE section = $1", s)
	}
}
