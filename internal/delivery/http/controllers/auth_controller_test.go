package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"activitydesk/internal/delivery/http/helpers"
	"activitydesk/internal/domain"
)

type mockAuthService struct {
	user  *domain.User
	token string
	err   error
}

func (m *mockAuthService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}

func TestAuthController_SignUp(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *mockAuthService
		wantStatus int
	}{
		{
			name:       "missing fields",
			body:       `{"email": ""}`,
			svc:        &mockAuthService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{`,
			svc:        &mockAuthService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid email",
			body:       `{"email": "not-an-email", "password": "supersecret", "name": "Ana"}`,
			svc:        &mockAuthService{err: domain.ErrInvalidInput},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"email": "ana@example.com", "password": "supersecret", "name": "Ana"}`,
			svc:        &mockAuthService{err: domain.ErrDuplicateEmail},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "success",
			body:       `{"email": "ana@example.com", "password": "supersecret", "name": "Ana"}`,
			svc:        &mockAuthService{user: &domain.User{ID: 1, Email: "ana@example.com", Name: "Ana"}},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger(), tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			ctrl.SignUp(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *mockAuthService
		wantStatus int
		wantToken  string
	}{
		{
			name:       "missing password",
			body:       `{"email": "ana@example.com"}`,
			svc:        &mockAuthService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad credentials",
			body:       `{"email": "ana@example.com", "password": "wrong"}`,
			svc:        &mockAuthService{err: domain.ErrInvalidCredentials},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "success",
			body:       `{"email": "ana@example.com", "password": "supersecret"}`,
			svc:        &mockAuthService{token: "tok"},
			wantStatus: http.StatusOK,
			wantToken:  "tok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger(), tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			ctrl.Login(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantToken == "" {
				return
			}
			var resp struct {
				Data  LoginResponse     `json:"data"`
				Error *helpers.APIError `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to unmarshal response: %v", err)
			}
			if resp.Data.Token != tt.wantToken {
				t.Fatalf("expected token %q, got %q", tt.wantToken, resp.Data.Token)
			}
		})
	}
}
