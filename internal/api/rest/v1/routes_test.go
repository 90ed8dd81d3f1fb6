//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockKeyVaultService := new(MockKeyVaultService)
	mockCryptoService := new(MockCryptoService)

	r := gin.Default()

	// Setup mocks so every route can answer
	mockKeyVaultService.On("Generate", mock.Anything, mock.Anything).Return(nil, nil)
	mockKeyVaultService.On("List", mock.Anything, mock.Anything).Return([]*keys.KeyMeta{}, nil)
	mockKeyVaultService.On("GetByID", mock.Anything, mock.Anything).Return(testKeyMeta(keys.KeyTypePublic), nil)
	mockKeyVaultService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)
	mockCryptoService.On("Encrypt", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	mockCryptoService.On("Decrypt", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	mockCryptoService.On("Sign", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	mockCryptoService.On("Verify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	SetupRoutes(r, mockKeyVaultService, mockCryptoService)

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"POST", "/api/v1/rsv/keys"},
		{"GET", "/api/v1/rsv/keys"},
		{"GET", "/api/v1/rsv/keys/abc"},
		{"GET", "/api/v1/rsv/keys/abc/file"},
		{"DELETE", "/api/v1/rsv/keys/abc"},
		{"POST", "/api/v1/rsv/crypto/encrypt"},
		{"POST", "/api/v1/rsv/crypto/decrypt"},
		{"POST", "/api/v1/rsv/crypto/sign"},
		{"POST", "/api/v1/rsv/crypto/verify"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}
