package handler

import (
	"net/http"
	"strconv"

	"pulsefeed/backend/internal/database"
	"pulsefeed/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// MediaInput references an uploaded object in the media bucket.
type MediaInput struct {
	ObjectKey string `json:"object_key" binding:"required" example:"f1c7f1f0-52d1-4d7a-8f5e-1a2b3c4d5e6f.jpg"`
	Type      string `json:"type" example:"image"`
}

// CreatePostInput defines the structure for creating a post. A post with media
// shows up in the profile's media grid; without media it is a text thread.
type CreatePostInput struct {
	Text  string       `json:"text" example:"hello world"`
	Media []MediaInput `json:"media"`
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Creates a new post or thread for the current user. Media entries must reference objects already uploaded to the media bucket.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreatePostInput true "Post content"
// @Success      201  {object}  PostResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /posts [post]
func CreatePost(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Text == "" && len(input.Media) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post must have text or media"})
		return
	}

	post := models.Post{
		UserID: viewerID.(uint),
		Text:   input.Text,
	}
	for i, m := range input.Media {
		mediaType := m.Type
		if mediaType == "" {
			mediaType = "image"
		}
		post.Media = append(post.Media, models.Media{
			URL:      MediaObjectURL(m.ObjectKey),
			Type:     mediaType,
			Position: i,
		})
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, buildPostResponse(post))
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Deletes one of the current user's own posts.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  map[string]string "{"message": "Post deleted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the author"
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /posts/{id} [delete]
func DeletePost(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := database.DB.First(&post, uint(postID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.UserID != viewerID.(uint) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own posts"})
		return
	}

	if err := database.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// AdminDeletePost godoc
// @Summary      Delete any post (moderation)
// @Description  Deletes any post regardless of author. Admin only.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Post ID"
// @Success      200  {object}  map[string]string "{"message": "Post deleted"}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Post not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /admin/posts/{id} [delete]
func AdminDeletePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	result := database.DB.Delete(&models.Post{}, uint(postID))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
