package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
)

// CryptoHandler defines the interface for cryptographic operations with stored keys
type CryptoHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

// cryptoHandler struct holds the services
type cryptoHandler struct {
	cryptoService keys.CryptoService
}

// NewCryptoHandler creates a new CryptoHandler
func NewCryptoHandler(cryptoService keys.CryptoService) CryptoHandler {
	return &cryptoHandler{
		cryptoService: cryptoService,
	}
}

// Encrypt handles the POST request to encrypt data with a stored public key
// @Summary Encrypt data with a stored public key
// @Description Encrypt a plaintext with RSAES-OAEP under an optional label using the stored public key.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Encryption Parameters"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /crypto/encrypt [post]
func (handler *cryptoHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid encryption data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	cipherText, err := handler.cryptoService.Encrypt(ctx, request.KeyID, request.PlainText, request.Label)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error encrypting data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{CipherText: cipherText})
}

// Decrypt handles the POST request to decrypt data with a stored private key
// @Summary Decrypt data with a stored private key
// @Description Decrypt an RSAES-OAEP ciphertext using the stored private key. The label must match the one used at encryption time.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Decryption Parameters"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /crypto/decrypt [post]
func (handler *cryptoHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid decryption data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	plainText, err := handler.cryptoService.Decrypt(ctx, request.KeyID, request.CipherText, request.Label)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error decrypting data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{PlainText: plainText})
}

// Sign handles the POST request to sign data with a stored private key
// @Summary Sign data with a stored private key
// @Description Hash the data with SHA-256 and sign the digest with the stored private key.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body SignRequest true "Signing Parameters"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Router /crypto/sign [post]
func (handler *cryptoHandler) Sign(ctx *gin.Context) {
	var request SignRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid signing data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	signature, err := handler.cryptoService.Sign(ctx, request.KeyID, request.Data)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error signing data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{Signature: signature})
}

// Verify handles the POST request to verify a signature with a stored public key
// @Summary Verify a signature with a stored public key
// @Description Verify a signature over data using the stored public key.
// @Tags Crypto
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Verification Parameters"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /crypto/verify [post]
func (handler *cryptoHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid verification data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	valid, err := handler.cryptoService.Verify(ctx, request.KeyID, request.Data, request.Signature)
	if err != nil {
		ctx.JSON(http.StatusOK, VerifyResponse{Valid: false})
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}
