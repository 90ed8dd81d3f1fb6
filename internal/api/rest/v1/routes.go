package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyVaultService keys.KeyVaultService,
	cryptoService keys.CryptoService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Keys Routes
	keyHandler := NewKeyHandler(keyVaultService)
	v1.POST("/keys", keyHandler.GenerateKeys)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/file", keyHandler.DownloadByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Crypto Routes
	cryptoHandler := NewCryptoHandler(cryptoService)
	v1.POST("/crypto/encrypt", cryptoHandler.Encrypt)
	v1.POST("/crypto/decrypt", cryptoHandler.Decrypt)
	v1.POST("/crypto/sign", cryptoHandler.Sign)
	v1.POST("/crypto/verify", cryptoHandler.Verify)
}
