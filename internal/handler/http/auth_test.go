// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/marmita-api/internal/service"
	"github.com/MKhiriev/marmita-api/internal/store"
	"github.com/MKhiriev/marmita-api/internal/utils"
	"github.com/MKhiriev/marmita-api/internal/validators"
	"github.com/MKhiriev/marmita-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	h, m := newMockedHandler(t)
	companyID := int64(4)
	req := models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1", CompanyID: &companyID}

	m.auth.EXPECT().RegisterUser(gomock.Any(), req).
		Return(models.User{ID: 1, Name: "Ana", Email: "ana@example.com", PasswordHash: "$2a$10$digest", Role: "USER"}, nil)

	rr := httptest.NewRecorder()
	h.register(rr, httptest.NewRequest(http.MethodPost, "/register", jsonBody(t, req)))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"Ana","email":"ana@example.com"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "digest")
	assert.NotContains(t, rr.Body.String(), "secret1")
}

func TestRegister_Errors(t *testing.T) {
	validationErr := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided,
		&validators.ValidationError{Fields: []validators.FieldError{{Field: "email", Message: "must be a valid email address"}}})

	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "malformed JSON",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid JSON body",
		},
		{
			name:        "empty body",
			body:        ``,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid JSON body",
		},
		{
			name:        "stray closing brace",
			body:        `{"name":"Ana","email":"ana@example.com","password":"secret1"}}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid JSON body",
		},
		{
			name:        "validation failure",
			body:        `{"name":"Ana","email":"nope","password":"secret1"}`,
			serviceErr:  validationErr,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided: email: must be a valid email address",
		},
		{
			name:        "duplicate email",
			body:        `{"name":"Ana","email":"ana@example.com","password":"secret1"}`,
			serviceErr:  fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyInUse),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "email already in use",
		},
		{
			name:        "storage failure",
			body:        `{"name":"Ana","email":"ana@example.com","password":"secret1"}`,
			serviceErr:  fmt.Errorf("%w: connection refused", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			if tt.serviceErr != nil {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)
			}

			rr := httptest.NewRecorder()
			h.register(rr, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rr))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h, m := newMockedHandler(t)
	req := models.LoginRequest{Email: "ana@example.com", Password: "secret1"}
	user := models.User{ID: 3, Name: "Ana", Email: "ana@example.com", PasswordHash: "digest", Role: "USER"}

	m.auth.EXPECT().Login(gomock.Any(), req).Return(user, nil)
	m.token.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "header.payload.sig"}, nil)

	rr := httptest.NewRecorder()
	h.login(rr, httptest.NewRequest(http.MethodPost, "/login", jsonBody(t, req)))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "login successful", resp.Message)
	assert.Equal(t, models.LoginUser{ID: 3, Name: "Ana", Email: "ana@example.com", Role: "USER"}, resp.User)
	assert.Equal(t, "header.payload.sig", resp.Token)
	assert.NotContains(t, rr.Body.String(), "digest")
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name        string
		loginErr    error
		tokenErr    error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "unknown email",
			loginErr:    fmt.Errorf("user search by email failed: %w", store.ErrNoUserWasFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "user not found",
		},
		{
			name:        "wrong password",
			loginErr:    service.ErrWrongPassword,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "invalid password",
		},
		{
			name:        "storage failure",
			loginErr:    errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
		{
			name:        "token signing failure",
			tokenErr:    service.ErrTokenCreationFailed,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			user := models.User{ID: 3, Role: "USER"}

			if tt.loginErr != nil {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.loginErr)
			} else {
				m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user, nil)
				m.token.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{}, tt.tokenErr)
			}

			rr := httptest.NewRecorder()
			body := jsonBody(t, models.LoginRequest{Email: "ana@example.com", Password: "secret1"})
			h.login(rr, httptest.NewRequest(http.MethodPost, "/login", body))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rr))
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newMockedHandler(t)

	rr := httptest.NewRecorder()
	h.login(rr, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("not json")))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid JSON body", decodeError(t, rr))
}

// ─────────────────────────────────────────────
// profile
// ─────────────────────────────────────────────

func TestProfile_Success(t *testing.T) {
	h, m := newMockedHandler(t)
	createdAt := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	companyID := int64(9)

	m.auth.EXPECT().GetUser(gomock.Any(), int64(3)).Return(models.User{
		ID: 3, Name: "Ana", Email: "ana@example.com", PasswordHash: "digest", Role: "USER",
		CompanyID: &companyID, CreatedAt: createdAt,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = req.WithContext(utils.WithPrincipal(req.Context(), models.Principal{UserID: 3, Role: "USER"}))
	rr := httptest.NewRecorder()

	h.profile(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"message": "you are accessing a protected route",
		"userFromToken": {"userId": 3, "role": "USER"},
		"userDetails": {
			"id": 3,
			"name": "Ana",
			"email": "ana@example.com",
			"role": "USER",
			"companyId": 9,
			"createdAt": "2026-02-03T04:05:06Z"
		}
	}`, rr.Body.String())
}

func TestProfile_DeletedAccount(t *testing.T) {
	h, m := newMockedHandler(t)

	m.auth.EXPECT().GetUser(gomock.Any(), int64(3)).Return(models.User{}, store.ErrNoUserWasFound)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = req.WithContext(utils.WithPrincipal(req.Context(), models.Principal{UserID: 3, Role: "USER"}))
	rr := httptest.NewRecorder()

	h.profile(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "user not found", decodeError(t, rr))
}

func TestProfile_WithoutPrincipal(t *testing.T) {
	h, _ := newMockedHandler(t)

	rr := httptest.NewRecorder()
	h.profile(rr, httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
