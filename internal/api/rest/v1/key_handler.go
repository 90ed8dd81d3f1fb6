package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SlightlyLoony/rsa-vault/internal/domain/keys"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	GenerateKeys(ctx *gin.Context)
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// keyHandler struct holds the services
type keyHandler struct {
	keyVaultService keys.KeyVaultService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyVaultService keys.KeyVaultService) KeyHandler {
	return &keyHandler{
		keyVaultService: keyVaultService,
	}
}

func toKeyMetaResponse(keyMeta *keys.KeyMeta) KeyMetaResponse {
	return KeyMetaResponse{
		ID:              keyMeta.ID,
		KeyPairID:       keyMeta.KeyPairID,
		Algorithm:       keyMeta.Algorithm,
		BitLength:       keyMeta.BitLength,
		Type:            keyMeta.Type,
		DateTimeCreated: keyMeta.DateTimeCreated,
	}
}

// GenerateKeys handles the POST request to generate and store an RSA key pair
// @Summary Generate an RSA key pair
// @Description Generate an RSA key pair with the given modulus bit length and store both halves.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeyRequest true "Key Generation Parameters"
// @Success 201 {array} KeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid key data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	keyMetas, err := handler.keyVaultService.Generate(ctx, request.BitLength)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error generating keys: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	var listResponse = []KeyMetaResponse{}
	for _, keyMeta := range keyMetas {
		listResponse = append(listResponse, toKeyMetaResponse(keyMeta))
	}

	ctx.JSON(http.StatusCreated, listResponse)
}

// ListMetadata handles the GET request to list key metadata with optional query parameters
// @Summary List key metadata based on query parameters
// @Description Fetch a list of key metadata based on filters like type and creation date, with pagination and sorting options.
// @Tags Key
// @Accept json
// @Produce json
// @Param type query string false "Key Type"
// @Param dateTimeCreated query string false "Key Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyMetaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListMetadata(ctx *gin.Context) {
	query := &keys.KeyQuery{}

	if keyType := ctx.Query("type"); len(keyType) > 0 {
		query.Type = keyType
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit, _ = strconv.Atoi(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset, _ = strconv.Atoi(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	keyMetas, err := handler.keyVaultService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []KeyMetaResponse{}
	for _, keyMeta := range keyMetas {
		listResponse = append(listResponse, toKeyMetaResponse(keyMeta))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve key metadata by ID
// @Summary Retrieve key metadata by ID
// @Description Fetch the key metadata by ID, including bit length, type and creation date.
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyMetaResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetMetadataByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	keyMeta, err := handler.keyVaultService.GetByID(ctx, keyID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("key with id %s not found", keyID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, toKeyMetaResponse(keyMeta))
}

// DownloadByID handles GET request to download public key material by ID
// @Summary Download a public key by ID
// @Description Download the tagged-string encoding of a public key by ID. Private keys cannot be downloaded.
// @Tags Key
// @Accept json
// @Produce text/plain
// @Param id path string true "Key ID"
// @Success 200 {file} file "Public key in its tagged-string encoding"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id}/file [get]
func (handler *keyHandler) DownloadByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	keyMeta, err := handler.keyVaultService.GetByID(ctx, keyID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{
			Message: fmt.Sprintf("key with id %s not found", keyID),
		})
		return
	}

	if keyMeta.Type == keys.KeyTypePrivate {
		var errorResponse ErrorResponse
		errorResponse.Message = "download forbidden for private keys"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	filename := fmt.Sprintf("%s-public-key.txt", keyID)

	ctx.Writer.Header().Set("Content-Type", "text/plain")
	ctx.Writer.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.String(http.StatusOK, keyMeta.Material)
}

// DeleteByID handles the DELETE request to delete a key by ID
// @Summary Delete a key by ID
// @Description Delete a specific key and associated metadata by ID.
// @Tags Key
// @Accept json
// @Produce json
// @Param id path string true "Key ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteByID(ctx *gin.Context) {
	keyID := ctx.Param("id")

	if err := handler.keyVaultService.DeleteByID(ctx, keyID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error deleting key with id %s", keyID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted key with id %s", keyID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}
