package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/marmita-api/internal/config"
	"github.com/MKhiriev/marmita-api/internal/logger"
	"github.com/MKhiriev/marmita-api/internal/mock"
	"github.com/MKhiriev/marmita-api/internal/service"
	"github.com/MKhiriev/marmita-api/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testMocks groups the service mocks behind a Handler.
type testMocks struct {
	auth    *mock.MockAuthService
	token   *mock.MockTokenService
	appInfo *mock.MockAppInfoService
}

// newMockedHandler builds a Handler whose services are all gomock mocks.
func newMockedHandler(t *testing.T) (*Handler, testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := testMocks{
		auth:    mock.NewMockAuthService(ctrl),
		token:   mock.NewMockTokenService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	svcs := &service.Services{
		AuthService:    m.auth,
		TokenService:   m.token,
		AppInfoService: m.appInfo,
	}

	return NewHandler(svcs, config.Server{CORSAllowedOrigins: []string{"*"}}, logger.Nop()), m
}

// newRealTokenService returns a TokenService signing with testSignKey.
func newRealTokenService(t *testing.T) service.TokenService {
	t.Helper()

	svc, err := service.NewTokenService(config.App{
		TokenSignKey:  testSignKey,
		TokenIssuer:   testIssuer,
		TokenDuration: 8 * time.Hour,
	}, logger.Nop())
	require.NoError(t, err)

	return svc
}

const (
	testSignKey = "handler-test-secret"
	testIssuer  = "marmita-api"
)

// jsonBody serialises v into a request body.
func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// decodeError reads an ErrorResponse from a recorder.
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), rr.Body.String())
	return body.Error
}

// okHandler records whether it was called.
func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}
