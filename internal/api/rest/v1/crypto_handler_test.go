//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testCryptoKeyID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

func postJSON(t *testing.T, handlerFunc gin.HandlerFunc, url, body string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handlerFunc(c)
	return w
}

func TestCryptoHandler_Encrypt_Success(t *testing.T) {
	mockCryptoService := new(MockCryptoService)
	handler := NewCryptoHandler(mockCryptoService)

	plainText := []byte("secret")
	cipherText := []byte("encrypted bytes")

	mockCryptoService.
		On("Encrypt", mock.Anything, testCryptoKeyID, plainText, []byte(nil)).
		Return(cipherText, nil)

	body := fmt.Sprintf(`{"key_id": %q, "plain_text": %q}`,
		testCryptoKeyID, base64.StdEncoding.EncodeToString(plainText))
	w := postJSON(t, handler.Encrypt, "/crypto/encrypt", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), base64.StdEncoding.EncodeToString(cipherText))
	mockCryptoService.AssertExpectations(t)
}

func TestCryptoHandler_Encrypt_WithLabel(t *testing.T) {
	mockCryptoService := new(MockCryptoService)
	handler := NewCryptoHandler(mockCryptoService)

	mockCryptoService.
		On("Encrypt", mock.Anything, testCryptoKeyID, []byte("hi!"), []byte("test")).
		Return([]byte("out"), nil)

	body := fmt.Sprintf(`{"key_id": %q, "plain_text": %q, "label": %q}`,
		testCryptoKeyID,
		base64.StdEncoding.EncodeToString([]byte("hi!")),
		base64.StdEncoding.EncodeToString([]byte("test")))
	w := postJSON(t, handler.Encrypt, "/crypto/encrypt", body)

	assert.Equal(t, http.StatusOK, w.Code)
	mockCryptoService.AssertExpectations(t)
}

func TestCryptoHandler_Encrypt_MissingKeyID(t *testing.T) {
	mockCryptoService := new(MockCryptoService)
	handler := NewCryptoHandler(mockCryptoService)

	body := fmt.Sprintf(`{"plain_text": %q}`, base64.StdEncoding.EncodeToString([]byte("secret")))
	w := postJSON(t, handler.Encrypt, "/crypto/encrypt", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockCryptoService.AssertNotCalled(t, "Encrypt")
}

func TestCryptoHandler_Encrypt_ServiceError(t *testing.T) {
	mockCryptoService := new(MockCryptoService)
	handler := NewCryptoHandler(mockCryptoService)

	mockCryptoService.
		On("Encrypt", mock.Anything, testCryptoKeyID, mock.Anything, mock.Anything).
		Return(nil, errors.New("message too long"))

	body := fmt.Sprintf(`{"key_id": %q, "plain_text": %q}`,
		testCryptoKeyID, base64.StdEncoding.EncodeToString([]byte("secret")))
	w := postJSON(t, handler.Encrypt, "/crypto/encrypt", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error encrypting data")
}

func TestCryptoHandler_Decrypt_Success(t *testing.T) {
	mockCryptoService := new(MockCryptoService)
	handler := NewCryptoHandler(mockCryptoService)

	cipherText := []byte("encrypted bytes")
	plainText := []byte("secret")

	mockCryptoService.
		On("Decrypt", mock.Anything, testCryptoKeyID, cipherText, []byte(nil)).
		Return(plainText, nil)

	body := fmt.Sprintf(`{"key_id": %q, "cipher_text": %q}`,
		testCryptoKeyID, base64.StdEncoding.EncodeToString(cipherText))
	w := postJSON(t, handler.Decrypt, "/crypto/decrypt", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), base64.StdEncoding.EncodeToString(plainText))
	mockCryptoService.AssertExpectations(t)
}

func TestCryptoHandler_Decrypt_ServiceError(t *testing.T) {
	mockCryptoService := new(MockCryptoService)
	handler := NewCryptoHandler(mockCryptoService)

	mockCryptoService.
		On("Decrypt", mock.Anything, testCryptoKeyID, mock.Anything, mock.Anything).
		Return(nil, errors.New("label mismatch"))

	body := fmt.Sprintf(`{"key_id": %q, "cipher_text": %q}`,
		testCryptoKeyID, base64.StdEncoding.EncodeToString([]byte("bad")))
	w := postJSON(t, handler.Decrypt, "/crypto/decrypt", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error decrypting data")
}

func TestCryptoHandler_Sign_Success(t *testing.T) {
	mockCryptoService := new(MockCryptoService)
	handler := NewCryptoHandler(mockCryptoService)

	data := []byte("data to sign")
	signature := []byte("signature bytes")

	mockCryptoService.
		On("Sign", mock.Anything, testCryptoKeyID, data).
		Return(signature, nil)

	body := fmt.Sprintf(`{"key_id": %q, "data": %q}`,
		testCryptoKeyID, base64.StdEncoding.EncodeToString(data))
	w := postJSON(t, handler.Sign, "/crypto/sign", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), base64.StdEncoding.EncodeToString(signature))
	mockCryptoService.AssertExpectations(t)
}

func TestCryptoHandler_Verify_Valid(t *testing.T) {
	mockCryptoService := new(MockCryptoService)
	handler := NewCryptoHandler(mockCryptoService)

	mockCryptoService.
		On("Verify", mock.Anything, testCryptoKeyID, mock.Anything, mock.Anything).
		Return(true, nil)

	body := fmt.Sprintf(`{"key_id": %q, "data": %q, "signature": %q}`,
		testCryptoKeyID,
		base64.StdEncoding.EncodeToString([]byte("data")),
		base64.StdEncoding.EncodeToString([]byte("sig")))
	w := postJSON(t, handler.Verify, "/crypto/verify", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
}

func TestCryptoHandler_Verify_Invalid(t *testing.T) {
	mockCryptoService := new(MockCryptoService)
	handler := NewCryptoHandler(mockCryptoService)

	mockCryptoService.
		On("Verify", mock.Anything, testCryptoKeyID, mock.Anything, mock.Anything).
		Return(false, errors.New("signature does not match data"))

	body := fmt.Sprintf(`{"key_id": %q, "data": %q, "signature": %q}`,
		testCryptoKeyID,
		base64.StdEncoding.EncodeToString([]byte("data")),
		base64.StdEncoding.EncodeToString([]byte("sig")))
	w := postJSON(t, handler.Verify, "/crypto/verify", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
}
