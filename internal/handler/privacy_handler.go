package handler

import (
	"errors"
	"net/http"

	"pulsefeed/backend/internal/database"
	"pulsefeed/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PrivacyInput defines the structure for updating privacy settings.
type PrivacyInput struct {
	ProfileVisibility string `json:"profile_visibility" binding:"required,oneof=public private" example:"private"`
}

// PrivacyResponse defines the structure for a user's privacy settings.
type PrivacyResponse struct {
	ProfileVisibility string `json:"profile_visibility" example:"public"`
}

// GetMyPrivacy godoc
// @Summary      Get privacy settings
// @Description  Returns the current user's privacy settings. Users with no stored setting are public.
// @Tags         privacy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivacyResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me/privacy [get]
func GetMyPrivacy(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var setting models.PrivacySetting
	err := database.DB.Where("user_id = ?", viewerID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No row means no restriction.
		c.JSON(http.StatusOK, PrivacyResponse{ProfileVisibility: models.VisibilityPublic})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch privacy settings"})
		return
	}

	c.JSON(http.StatusOK, PrivacyResponse{ProfileVisibility: setting.ProfileVisibility})
}

// UpdateMyPrivacy godoc
// @Summary      Update privacy settings
// @Description  Sets the current user's profile visibility (public or private).
// @Tags         privacy
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PrivacyInput true "Privacy settings"
// @Success      200  {object}  PrivacyResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/me/privacy [put]
func UpdateMyPrivacy(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input PrivacyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var setting models.PrivacySetting
	err := database.DB.Where("user_id = ?", viewerID).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.PrivacySetting{
			UserID:            viewerID.(uint),
			ProfileVisibility: input.ProfileVisibility,
		}
		err = database.DB.Create(&setting).Error
	case err == nil:
		err = database.DB.Model(&setting).Update("profile_visibility", input.ProfileVisibility).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update privacy settings"})
		return
	}

	c.JSON(http.StatusOK, PrivacyResponse{ProfileVisibility: input.ProfileVisibility})
}
