package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pulsefeed/backend/internal/database"
	"pulsefeed/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FollowedUserResponse is a compact user card used in follower listings.
type FollowedUserResponse struct {
	ID          uint   `json:"id" example:"1"`
	Username    string `json:"username" example:"alice"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Status      string `json:"status" example:"accepted"`
}

// FollowUser godoc
// @Summary      Follow a user
// @Description  Follows a user. Public targets are followed immediately; private targets receive a pending request that they must accept.
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      201  {object}  map[string]string "{"status": "accepted|pending"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Failure      409  {object}  ErrorResponse "Follow already exists"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/follow [post]
func FollowUser(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserID, err := parseUserID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID"})
		return
	}

	if viewerID.(uint) == targetUserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	var target models.User
	if err := database.DB.First(&target, targetUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Target user not found"})
		return
	}

	var existing models.Follow
	err = database.DB.Where("follower_id = ? AND following_id = ?", viewerID, targetUserID).First(&existing).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusConflict, gin.H{"error": "Follow already exists or another error occurred"})
		return
	}

	// Private targets get a pending request; public targets are followed at once.
	status := models.StatusAccepted
	var setting models.PrivacySetting
	err = database.DB.Where("user_id = ?", targetUserID).First(&setting).Error
	if err == nil && setting.ProfileVisibility == models.VisibilityPrivate {
		status = models.StatusPending
	}

	follow := models.Follow{
		FollowerID:  viewerID.(uint),
		FollowingID: targetUserID,
		Status:      status,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&follow).Error; err != nil {
			return err
		}
		if status == models.StatusAccepted {
			return applyFollowCounts(tx, follow.FollowerID, follow.FollowingID, 1)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create follow"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": string(status)})
}

// AcceptFollow godoc
// @Summary      Accept a follow request
// @Description  Accepts a pending follow request from another user.
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Requesting User ID"
// @Success      200  {object}  map[string]string "{"message": "Request accepted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/accept [post]
func AcceptFollow(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	requesterID, err := parseUserID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requesting user ID"})
		return
	}

	var request models.Follow
	err = database.DB.Where("follower_id = ? AND following_id = ? AND status = ?", requesterID, viewerID, models.StatusPending).First(&request).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending request not found"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&request).Update("status", models.StatusAccepted).Error; err != nil {
			return err
		}
		return applyFollowCounts(tx, request.FollowerID, request.FollowingID, 1)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request accepted"})
}

// DeclineFollow godoc
// @Summary      Decline a follow request
// @Description  Declines a pending follow request from another user.
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Requesting User ID"
// @Success      200  {object}  map[string]string "{"message": "Request declined"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Request not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/decline [post]
func DeclineFollow(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	requesterID, err := parseUserID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid requesting user ID"})
		return
	}

	result := database.DB.Where("follower_id = ? AND following_id = ? AND status = ?", requesterID, viewerID, models.StatusPending).Delete(&models.Follow{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decline request"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending request not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request declined"})
}

// UnfollowUser godoc
// @Summary      Unfollow a user
// @Description  Removes an existing follow or cancels a pending request.
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      200  {object}  map[string]string "{"message": "Follow removed"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Follow not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/follow [delete]
func UnfollowUser(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetUserID, err := parseUserID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target user ID"})
		return
	}

	var follow models.Follow
	err = database.DB.Where("follower_id = ? AND following_id = ?", viewerID, targetUserID).First(&follow).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Follow not found to remove"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&follow).Error; err != nil {
			return err
		}
		// Pending requests never counted, so there is nothing to roll back.
		if follow.Status == models.StatusAccepted {
			return applyFollowCounts(tx, follow.FollowerID, follow.FollowingID, -1)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove follow"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Follow removed"})
}

// GetFollowers godoc
// @Summary      List the current user's followers
// @Description  Returns users following the current user, with pagination. Use status=pending to list incoming follow requests.
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        status query     string  false  "Filter by status (pending, accepted)" default(accepted)
// @Param        page   query     int     false  "Page number" default(1)
// @Param        limit  query     int     false  "Items per page" default(20)
// @Success      200    {object}  PaginatedResponse[FollowedUserResponse]
// @Failure      401    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /users/me/followers [get]
func GetFollowers(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	listFollowEdges(c, database.DB.Where("following_id = ?", viewerID).Preload("Follower"), func(f models.Follow) models.User {
		return f.Follower
	})
}

// GetFollowing godoc
// @Summary      List users the current user follows
// @Description  Returns users the current user follows, with pagination.
// @Tags         follows
// @Produce      json
// @Security     BearerAuth
// @Param        status query     string  false  "Filter by status (pending, accepted)" default(accepted)
// @Param        page   query     int     false  "Page number" default(1)
// @Param        limit  query     int     false  "Items per page" default(20)
// @Success      200    {object}  PaginatedResponse[FollowedUserResponse]
// @Failure      401    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /users/me/following [get]
func GetFollowing(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	listFollowEdges(c, database.DB.Where("follower_id = ?", viewerID).Preload("Following"), func(f models.Follow) models.User {
		return f.Following
	})
}

func listFollowEdges(c *gin.Context, query *gorm.DB, pick func(models.Follow) models.User) {
	status := c.DefaultQuery("status", string(models.StatusAccepted))
	query = query.Where("status = ?", status)

	page, limit := pageParams(c)
	result, err := Paginate[models.Follow](query, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch follows"})
		return
	}

	users := make([]FollowedUserResponse, 0, len(result.Data))
	for _, f := range result.Data {
		user := pick(f)
		if user.ID == 0 {
			continue
		}
		users = append(users, FollowedUserResponse{
			ID:          user.ID,
			Username:    user.Username,
			DisplayName: user.DisplayName,
			AvatarURL:   user.AvatarURL,
			Status:      string(f.Status),
		})
	}

	c.JSON(http.StatusOK, PaginatedResponse[FollowedUserResponse]{
		Data: users,
		Meta: result.Meta,
	})
}

// applyFollowCounts shifts the denormalized counters on both sides of an
// accepted edge by delta (+1 on accept, -1 on removal).
func applyFollowCounts(tx *gorm.DB, followerID, followingID uint, delta int) error {
	err := tx.Model(&models.User{}).Where("id = ?", followingID).
		UpdateColumn("follower_count", gorm.Expr("follower_count + ?", delta)).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.User{}).Where("id = ?", followerID).
		UpdateColumn("following_count", gorm.Expr("following_count + ?", delta)).Error
}

func parseUserID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func pageParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100 // Max limit
	}
	return page, limit
}
