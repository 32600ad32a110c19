package handler

import (
	"net/http"
	"path"
	"strings"

	"pulsefeed/backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadKeyInput defines the structure for requesting a storage object key.
type UploadKeyInput struct {
	Kind      string `json:"kind" binding:"required,oneof=avatar media" example:"media"`
	Extension string `json:"extension" example:".jpg"`
}

// UploadKeyResponse carries a freshly minted object key and the bucket the
// client should upload it to.
type UploadKeyResponse struct {
	Bucket    string `json:"bucket" example:"media"`
	ObjectKey string `json:"object_key" example:"f1c7f1f0-52d1-4d7a-8f5e-1a2b3c4d5e6f.jpg"`
	PublicURL string `json:"public_url"`
}

// NewUploadKey godoc
// @Summary      Mint a storage object key
// @Description  Generates a unique object key in the avatar or media bucket for a client-side upload.
// @Tags         media
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UploadKeyInput true "Upload target"
// @Success      201  {object}  UploadKeyResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /media/keys [post]
func NewUploadKey(c *gin.Context) {
	var input UploadKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ext := input.Extension
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	bucket := config.AppConfig.MediaBucket
	if input.Kind == "avatar" {
		bucket = config.AppConfig.AvatarBucket
	}

	key := uuid.NewString() + ext

	c.JSON(http.StatusCreated, UploadKeyResponse{
		Bucket:    bucket,
		ObjectKey: key,
		PublicURL: objectPublicURL(bucket, key),
	})
}

// MediaObjectURL resolves an object key in the media bucket to its public URL.
func MediaObjectURL(objectKey string) string {
	return objectPublicURL(config.AppConfig.MediaBucket, objectKey)
}

func objectPublicURL(bucket, key string) string {
	base := strings.TrimSuffix(config.AppConfig.StorageBaseURL, "/")
	return base + "/" + path.Join("storage/v1/object/public", bucket, key)
}
