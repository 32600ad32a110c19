package handler

import (
	"errors"
	"net/http"
	"time"

	"pulsefeed/backend/internal/models"
	"pulsefeed/backend/internal/profile"

	"github.com/gin-gonic/gin"
)

// ProfileStore backs the profile routes. Set in main once the database is up.
var ProfileStore profile.Store

// ProfileResponse is the full bundle rendered on a profile page. When the
// profile is private and the viewer has no access, posts and threads are empty
// and posts_count is zero, but the header fields are still returned.
type ProfileResponse struct {
	ID             uint           `json:"id" example:"1"`
	Username       string         `json:"username" example:"alice"`
	DisplayName    string         `json:"display_name" example:"Alice"`
	Bio            string         `json:"bio"`
	Website        string         `json:"website"`
	Location       string         `json:"location"`
	AvatarURL      string         `json:"avatar_url"`
	CreatedAt      time.Time      `json:"created_at"`
	FollowerCount  int64          `json:"follower_count"`
	FollowingCount int64          `json:"following_count"`
	PostsCount     int            `json:"posts_count"`
	IsPrivate      bool           `json:"is_private"`
	IsOwner        bool           `json:"is_owner"`
	IsFollowing    bool           `json:"is_following"`
	CanViewContent bool           `json:"can_view_content"`
	Posts          []PostResponse `json:"posts"`
	Threads        []PostResponse `json:"threads"`
}

// PostResponse defines the structure for a single post or thread.
type PostResponse struct {
	ID           uint            `json:"id" example:"1"`
	UserID       uint            `json:"user_id" example:"1"`
	Text         string          `json:"text"`
	Media        []MediaResponse `json:"media"`
	LikeCount    int64           `json:"like_count"`
	CommentCount int64           `json:"comment_count"`
	ShareCount   int64           `json:"share_count"`
	SaveCount    int64           `json:"save_count"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MediaResponse defines the structure for one media attachment.
type MediaResponse struct {
	URL      string `json:"url"`
	Type     string `json:"type" example:"image"`
	Position int    `json:"position"`
}

// GetProfileByUsername godoc
// @Summary      Get a profile page
// @Description  Resolves a profile by username for the current viewer (anonymous allowed). Private profiles return header data with empty content.
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Profile username"
// @Success      200       {object}  ProfileResponse
// @Failure      404       {object}  ErrorResponse "Profile not found"
// @Failure      500       {object}  ErrorResponse
// @Router       /profiles/{username} [get]
func GetProfileByUsername(c *gin.Context) {
	viewerID := viewerIDFromContext(c)

	result, err := profile.Resolve(ProfileStore, viewerID, c.Param("username"))
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve profile"})
		return
	}

	c.JSON(http.StatusOK, buildProfileResponse(result))
}

// GetProfilePosts godoc
// @Summary      Get a profile's full post list
// @Description  Returns all content by the profile, newest first. If the viewer cannot see the content, redirects to the profile summary instead of erroring.
// @Tags         profiles
// @Produce      json
// @Param        username  path      string  true  "Profile username"
// @Success      200       {array}   PostResponse
// @Success      303       {string}  string  "Redirect to profile summary"
// @Failure      404       {object}  ErrorResponse "Profile not found"
// @Failure      500       {object}  ErrorResponse
// @Router       /profiles/{username}/posts [get]
func GetProfilePosts(c *gin.Context) {
	viewerID := viewerIDFromContext(c)
	username := c.Param("username")

	result, err := profile.Resolve(ProfileStore, viewerID, username)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve profile"})
		return
	}

	// Hidden content bounces back to the summary page rather than erroring.
	if !result.CanViewContent {
		c.Redirect(http.StatusSeeOther, "/api/v1/profiles/"+username)
		return
	}

	content, err := ProfileStore.ListContentByAuthor(result.Profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	responses := make([]PostResponse, 0, len(content))
	for _, item := range content {
		responses = append(responses, buildPostResponse(item))
	}

	c.JSON(http.StatusOK, responses)
}

// viewerIDFromContext returns the authenticated user ID, or nil for anonymous
// requests. Profile routes run behind the optional auth middleware, so either
// is possible.
func viewerIDFromContext(c *gin.Context) *uint {
	value, exists := c.Get("userID")
	if !exists {
		return nil
	}
	userID, ok := value.(uint)
	if !ok {
		return nil
	}
	return &userID
}

func buildProfileResponse(result *profile.AccessResult) ProfileResponse {
	target := result.Profile

	posts := make([]PostResponse, 0, len(result.Posts))
	for _, item := range result.Posts {
		posts = append(posts, buildPostResponse(item))
	}

	threads := make([]PostResponse, 0, len(result.Threads))
	for _, item := range result.Threads {
		threads = append(threads, buildPostResponse(item))
	}

	return ProfileResponse{
		ID:             target.ID,
		Username:       target.Username,
		DisplayName:    target.DisplayName,
		Bio:            target.Bio,
		Website:        target.Website,
		Location:       target.Location,
		AvatarURL:      target.AvatarURL,
		CreatedAt:      target.CreatedAt,
		FollowerCount:  target.FollowerCount,
		FollowingCount: target.FollowingCount,
		PostsCount:     result.PostsCount,
		IsPrivate:      result.IsPrivate,
		IsOwner:        result.IsOwner,
		IsFollowing:    result.IsFollowing,
		CanViewContent: result.CanViewContent,
		Posts:          posts,
		Threads:        threads,
	}
}

func buildPostResponse(post models.Post) PostResponse {
	media := make([]MediaResponse, 0, len(post.Media))
	for _, m := range post.Media {
		media = append(media, MediaResponse{
			URL:      m.URL,
			Type:     m.Type,
			Position: m.Position,
		})
	}

	return PostResponse{
		ID:           post.ID,
		UserID:       post.UserID,
		Text:         post.Text,
		Media:        media,
		LikeCount:    post.LikeCount,
		CommentCount: post.CommentCount,
		ShareCount:   post.ShareCount,
		SaveCount:    post.SaveCount,
		CreatedAt:    post.CreatedAt,
	}
}
