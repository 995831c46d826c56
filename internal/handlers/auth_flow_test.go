// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"

	"parishcms/internal/models"
	"parishcms/internal/session"
)

// createFlowUser registers a user with a known password and schedules
// its removal.
func createFlowUser(t *testing.T, env *testEnv, password string) *models.User {
	t.Helper()
	email := "flow-" + uuid.New().String()[:8] + "@test.local"
	user, err := env.UserStore.Create(email, password, "Flow User", models.RoleEditor)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() { cleanUsers(t, env.DB, email) })
	return user
}

// sessionCookie extracts the session cookie set by a recorded response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestLogin_ValidCredentials_SetsSessionCookie(t *testing.T) {
	env := newTestEnv(t)
	user := createFlowUser(t, env, "correct-horse-battery")

	payload := `{"email": "` + user.Email + `", "password": "correct-horse-battery"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	env.Auth.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Login: got status %d, want %d; body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	body := decodeJSON(t, rec)
	if body["success"] != true {
		t.Errorf("Login: success = %v", body["success"])
	}
	// A fresh user has no authenticator enrolled yet.
	if body["needs_2fa_setup"] != true {
		t.Errorf("Login: needs_2fa_setup = %v, want true", body["needs_2fa_setup"])
	}

	cookie := sessionCookie(t, rec)
	if cookie.Value == "" {
		t.Error("Login: session cookie should carry an ID")
	}
	if !cookie.HttpOnly {
		t.Error("Login: session cookie should be HttpOnly")
	}
}

func TestLogin_WrongPassword_Returns401(t *testing.T) {
	env := newTestEnv(t)
	user := createFlowUser(t, env, "right-password")

	payload := `{"email": "` + user.Email + `", "password": "wrong-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	env.Auth.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Login wrong password: got status %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if body := decodeJSON(t, rec); body["error"] != "Invalid email or password." {
		t.Errorf("Login wrong password: error = %v", body["error"])
	}
}

func TestLogin_UnknownEmail_Returns401(t *testing.T) {
	env := newTestEnv(t)

	payload := `{"email": "nobody@test.local", "password": "whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	env.Auth.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Login unknown email: got status %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestMe_WithoutSession_Returns401(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	env.Auth.Me(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("Me without session: got status %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestMe_WithSession_ReturnsIdentity(t *testing.T) {
	env := newTestEnv(t)

	sess := testSession(uuid.New(), "someone@test.local", "editor", true)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	env.Auth.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Me: got status %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeJSON(t, rec)
	if body["email"] != "someone@test.local" {
		t.Errorf("Me: email = %v", body["email"])
	}
	if body["role"] != "editor" {
		t.Errorf("Me: role = %v", body["role"])
	}
	if body["two_fa_done"] != true {
		t.Errorf("Me: two_fa_done = %v", body["two_fa_done"])
	}
}

func TestTOTPSetupAndVerify_CompletesEnrollment(t *testing.T) {
	env := newTestEnv(t)
	user := createFlowUser(t, env, "enroll-password")

	// Log in for a real session cookie; verify needs it to update the session.
	loginReq := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email": "`+user.Email+`", "password": "enroll-password"}`))
	loginRec := httptest.NewRecorder()
	env.Auth.Login(loginRec, loginReq)
	if loginRec.Code != http.StatusOK {
		t.Fatalf("Login: got status %d", loginRec.Code)
	}
	cookie := sessionCookie(t, loginRec)

	sess := testSession(user.ID, user.Email, "editor", false)

	setupReq := httptest.NewRequest(http.MethodPost, "/api/auth/totp/setup", nil)
	setupReq.AddCookie(cookie)
	setupReq = setupReq.WithContext(ctxWithSession(setupReq.Context(), sess))
	setupRec := httptest.NewRecorder()
	env.Auth.TOTPSetup(setupRec, setupReq)

	if setupRec.Code != http.StatusOK {
		t.Fatalf("TOTPSetup: got status %d; body: %s", setupRec.Code, setupRec.Body.String())
	}
	setupBody := decodeJSON(t, setupRec)
	secret, _ := setupBody["secret"].(string)
	if secret == "" {
		t.Fatal("TOTPSetup: missing secret")
	}
	if qr, _ := setupBody["qr_code"].(string); qr == "" {
		t.Error("TOTPSetup: missing QR code")
	}

	code, err := totp.GenerateCode(secret, time.Now())
	if err != nil {
		t.Fatalf("generate code: %v", err)
	}

	verifyReq := httptest.NewRequest(http.MethodPost, "/api/auth/totp/verify",
		strings.NewReader(`{"code": "`+code+`"}`))
	verifyReq.AddCookie(cookie)
	verifyReq = verifyReq.WithContext(ctxWithSession(verifyReq.Context(), sess))
	verifyRec := httptest.NewRecorder()
	env.Auth.TOTPVerify(verifyRec, verifyReq)

	if verifyRec.Code != http.StatusOK {
		t.Fatalf("TOTPVerify: got status %d; body: %s", verifyRec.Code, verifyRec.Body.String())
	}

	// First successful verification flips enrollment on.
	updated, err := env.UserStore.FindByID(user.ID)
	if err != nil || updated == nil {
		t.Fatalf("FindByID after verify: user=%v err=%v", updated, err)
	}
	if !updated.TOTPEnabled {
		t.Error("TOTPVerify: enrollment should be complete")
	}
}

func TestTOTPVerify_BadCode_Returns401(t *testing.T) {
	env := newTestEnv(t)
	user := createFlowUser(t, env, "verify-password")

	if err := env.UserStore.SetTOTPSecret(user.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("set secret: %v", err)
	}

	sess := testSession(user.ID, user.Email, "editor", false)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/totp/verify",
		strings.NewReader(`{"code": "000000"}`))
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	env.Auth.TOTPVerify(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("TOTPVerify bad code: got status %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestTOTPVerify_NoSecret_Returns400(t *testing.T) {
	env := newTestEnv(t)
	user := createFlowUser(t, env, "no-secret-password")

	sess := testSession(user.ID, user.Email, "editor", false)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/totp/verify",
		strings.NewReader(`{"code": "123456"}`))
	req = req.WithContext(ctxWithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	env.Auth.TOTPVerify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("TOTPVerify no secret: got status %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	env := newTestEnv(t)
	user := createFlowUser(t, env, "logout-password")

	loginReq := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email": "`+user.Email+`", "password": "logout-password"}`))
	loginRec := httptest.NewRecorder()
	env.Auth.Login(loginRec, loginReq)
	cookie := sessionCookie(t, loginRec)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.Auth.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Logout: got status %d, want %d", rec.Code, http.StatusOK)
	}
	cleared := sessionCookie(t, rec)
	if cleared.MaxAge >= 0 {
		t.Errorf("Logout: cookie MaxAge = %d, want negative", cleared.MaxAge)
	}

	// The session itself is gone from Valkey.
	getReq := httptest.NewRequest(http.MethodGet, "/", nil)
	getReq.AddCookie(cookie)
	if data, _ := env.Sessions.Get(getReq.Context(), getReq); data != nil {
		t.Error("Logout: session should be destroyed")
	}
}
