package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pulsefeed/backend/internal/models"
	"pulsefeed/backend/internal/profile"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubStore is a canned profile.Store for handler tests.
type stubStore struct {
	profiles map[string]*models.User
	settings map[uint]*models.PrivacySetting
	follows  map[[2]uint]models.FollowStatus
	content  map[uint][]models.Post
}

func (s *stubStore) FindProfileByUsername(username string) (*models.User, error) {
	user, ok := s.profiles[username]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return user, nil
}

func (s *stubStore) FindPrivacySetting(userID uint) (*models.PrivacySetting, error) {
	return s.settings[userID], nil
}

func (s *stubStore) HasAcceptedFollow(followerID, followingID uint) (bool, error) {
	return s.follows[[2]uint{followerID, followingID}] == models.StatusAccepted, nil
}

func (s *stubStore) ListContentByAuthor(userID uint) ([]models.Post, error) {
	return s.content[userID], nil
}

func privateAliceStore() *stubStore {
	return &stubStore{
		profiles: map[string]*models.User{
			"alice": {Model: gorm.Model{ID: 1}, Username: "alice", DisplayName: "Alice"},
		},
		settings: map[uint]*models.PrivacySetting{
			1: {UserID: 1, ProfileVisibility: models.VisibilityPrivate},
		},
		follows: map[[2]uint]models.FollowStatus{},
		content: map[uint][]models.Post{
			1: {
				{Model: gorm.Model{ID: 11, CreatedAt: time.Now()}, UserID: 1, Text: "with media", Media: []models.Media{{PostID: 11, URL: "a.jpg"}}},
				{Model: gorm.Model{ID: 10, CreatedAt: time.Now().Add(-time.Hour)}, UserID: 1, Text: "thread only"},
			},
		},
	}
}

// setupProfileRouter wires the profile routes with a stub store and an
// optional pre-authenticated viewer.
func setupProfileRouter(store profile.Store, viewerID *uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ProfileStore = store

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if viewerID != nil {
			c.Set("userID", *viewerID)
		}
		c.Next()
	})
	router.GET("/api/v1/profiles/:username", GetProfileByUsername)
	router.GET("/api/v1/profiles/:username/posts", GetProfilePosts)
	return router
}

func TestGetProfileNotFound(t *testing.T) {
	router := setupProfileRouter(&stubStore{profiles: map[string]*models.User{}}, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetProfilePrivateAnonymous(t *testing.T) {
	router := setupProfileRouter(privateAliceStore(), nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/alice", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.True(t, resp.IsPrivate)
	assert.False(t, resp.CanViewContent)
	assert.Empty(t, resp.Posts)
	assert.Empty(t, resp.Threads)
	assert.Zero(t, resp.PostsCount)

	// The private view still serializes empty lists, not nulls.
	body := rr.Body.String()
	assert.Contains(t, body, `"posts":[]`)
	assert.Contains(t, body, `"threads":[]`)
}

func TestGetProfileVisibleToFollower(t *testing.T) {
	store := privateAliceStore()
	store.follows[[2]uint{2, 1}] = models.StatusAccepted
	router := setupProfileRouter(store, uintPtr(2))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/alice", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.IsFollowing)
	assert.True(t, resp.CanViewContent)
	assert.Equal(t, 2, resp.PostsCount)
	assert.Len(t, resp.Posts, 1)
	assert.Len(t, resp.Threads, 1)
	assert.Equal(t, "a.jpg", resp.Posts[0].Media[0].URL)
}

func TestGetProfilePostsRedirectsWhenHidden(t *testing.T) {
	router := setupProfileRouter(privateAliceStore(), nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/alice/posts", nil))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/api/v1/profiles/alice", rr.Header().Get("Location"))
}

func TestGetProfilePostsVisible(t *testing.T) {
	router := setupProfileRouter(privateAliceStore(), uintPtr(1))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/alice/posts", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var posts []PostResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	// Newest first, media and threads interleaved in one list.
	assert.Equal(t, uint(11), posts[0].ID)
	assert.Equal(t, uint(10), posts[1].ID)
}

func uintPtr(v uint) *uint { return &v }
