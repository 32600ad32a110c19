package profile

import (
	"testing"
	"time"

	"pulsefeed/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStore is an in-memory Store that records which lookups were made.
type fakeStore struct {
	profiles map[string]*models.User
	settings map[uint]*models.PrivacySetting
	follows  map[[2]uint]models.FollowStatus
	content  map[uint][]models.Post
	calls    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: map[string]*models.User{},
		settings: map[uint]*models.PrivacySetting{},
		follows:  map[[2]uint]models.FollowStatus{},
		content:  map[uint][]models.Post{},
	}
}

func (s *fakeStore) FindProfileByUsername(username string) (*models.User, error) {
	s.calls = append(s.calls, "profile")
	user, ok := s.profiles[username]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return user, nil
}

func (s *fakeStore) FindPrivacySetting(userID uint) (*models.PrivacySetting, error) {
	s.calls = append(s.calls, "privacy")
	return s.settings[userID], nil
}

func (s *fakeStore) HasAcceptedFollow(followerID, followingID uint) (bool, error) {
	s.calls = append(s.calls, "follow")
	return s.follows[[2]uint{followerID, followingID}] == models.StatusAccepted, nil
}

func (s *fakeStore) ListContentByAuthor(userID uint) ([]models.Post, error) {
	s.calls = append(s.calls, "content")
	return s.content[userID], nil
}

func (s *fakeStore) addUser(id uint, username string) *models.User {
	user := &models.User{Model: gorm.Model{ID: id}, Username: username}
	s.profiles[username] = user
	return user
}

func (s *fakeStore) setPrivate(userID uint) {
	s.settings[userID] = &models.PrivacySetting{UserID: userID, ProfileVisibility: models.VisibilityPrivate}
}

func newPost(id, authorID uint, age time.Duration, mediaURLs ...string) models.Post {
	post := models.Post{
		Model:  gorm.Model{ID: id, CreatedAt: time.Now().Add(-age)},
		UserID: authorID,
		Text:   "post",
	}
	for i, url := range mediaURLs {
		post.Media = append(post.Media, models.Media{PostID: id, URL: url, Position: i})
	}
	return post
}

func uintPtr(v uint) *uint { return &v }

func TestResolveUnknownUsername(t *testing.T) {
	store := newFakeStore()

	result, err := Resolve(store, nil, "ghost")

	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.Nil(t, result)
	// No privacy or content lookups after the miss.
	assert.Equal(t, []string{"profile"}, store.calls)
}

func TestResolveNoPrivacyRowDefaultsToPublic(t *testing.T) {
	store := newFakeStore()
	alice := store.addUser(1, "alice")
	store.content[alice.ID] = []models.Post{newPost(10, alice.ID, time.Hour)}

	result, err := Resolve(store, nil, "alice")

	require.NoError(t, err)
	assert.False(t, result.IsPrivate)
	assert.True(t, result.CanViewContent)
	assert.Equal(t, 1, result.PostsCount)
}

func TestResolveAnonymousNeverChecksFollows(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")
	store.setPrivate(1)

	result, err := Resolve(store, nil, "alice")

	require.NoError(t, err)
	assert.False(t, result.IsOwner)
	assert.False(t, result.IsFollowing)
	assert.False(t, result.CanViewContent)
	assert.NotContains(t, store.calls, "follow")
}

func TestResolvePrivateOwner(t *testing.T) {
	store := newFakeStore()
	alice := store.addUser(1, "alice")
	store.setPrivate(alice.ID)
	store.content[alice.ID] = []models.Post{newPost(10, alice.ID, time.Hour)}

	result, err := Resolve(store, uintPtr(1), "alice")

	require.NoError(t, err)
	assert.True(t, result.IsPrivate)
	assert.True(t, result.IsOwner)
	assert.True(t, result.CanViewContent)
	// Owners skip the follow lookup.
	assert.NotContains(t, store.calls, "follow")
}

func TestResolvePrivateHiddenFromAnonymous(t *testing.T) {
	store := newFakeStore()
	alice := store.addUser(1, "alice")
	store.setPrivate(alice.ID)
	store.content[alice.ID] = []models.Post{newPost(10, alice.ID, time.Hour)}

	result, err := Resolve(store, nil, "alice")

	require.NoError(t, err)
	assert.False(t, result.CanViewContent)
	assert.NotNil(t, result.Posts)
	assert.NotNil(t, result.Threads)
	assert.Empty(t, result.Posts)
	assert.Empty(t, result.Threads)
	assert.Zero(t, result.PostsCount)
	// Content fetch is skipped entirely for hidden profiles.
	assert.NotContains(t, store.calls, "content")
}

func TestResolvePrivateFollowStates(t *testing.T) {
	tests := []struct {
		name    string
		status  models.FollowStatus
		canView bool
	}{
		{"accepted follow grants access", models.StatusAccepted, true},
		{"pending follow does not", models.StatusPending, false},
		{"no follow does not", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			alice := store.addUser(1, "alice")
			store.addUser(2, "bob")
			store.setPrivate(alice.ID)
			if tt.status != "" {
				store.follows[[2]uint{2, 1}] = tt.status
			}

			result, err := Resolve(store, uintPtr(2), "alice")

			require.NoError(t, err)
			assert.Equal(t, tt.canView, result.IsFollowing)
			assert.Equal(t, tt.canView, result.CanViewContent)
		})
	}
}

func TestCanViewContent(t *testing.T) {
	tests := []struct {
		isPrivate, isOwner, isFollowing, want bool
	}{
		{false, false, false, true},
		{false, true, false, true},
		{false, false, true, true},
		{true, false, false, false},
		{true, true, false, true},
		{true, false, true, true},
		{true, true, true, true},
	}

	for _, tt := range tests {
		got := CanViewContent(tt.isPrivate, tt.isOwner, tt.isFollowing)
		assert.Equalf(t, tt.want, got, "CanViewContent(%v, %v, %v)", tt.isPrivate, tt.isOwner, tt.isFollowing)
	}
}

func TestResolvePartitionsContent(t *testing.T) {
	store := newFakeStore()
	alice := store.addUser(1, "alice")
	// Newest first, as the store contract requires.
	store.content[alice.ID] = []models.Post{
		newPost(14, alice.ID, 1*time.Hour, "a.jpg"),
		newPost(13, alice.ID, 2*time.Hour),
		newPost(12, alice.ID, 3*time.Hour, "b.jpg", "c.jpg"),
		newPost(11, alice.ID, 4*time.Hour),
		newPost(10, alice.ID, 5*time.Hour, "d.jpg"),
	}

	result, err := Resolve(store, nil, "alice")

	require.NoError(t, err)
	assert.Equal(t, 5, result.PostsCount)
	assert.Len(t, result.Posts, 3)
	assert.Len(t, result.Threads, 2)
	assert.Equal(t, len(result.Posts)+len(result.Threads), result.PostsCount)

	for _, p := range result.Posts {
		assert.True(t, p.HasMedia())
	}
	for _, th := range result.Threads {
		assert.False(t, th.HasMedia())
	}

	// Both partitions keep the newest-first order of the fetch.
	assert.Equal(t, []uint{14, 12, 10}, postIDs(result.Posts))
	assert.Equal(t, []uint{13, 11}, postIDs(result.Threads))
	assertDescending(t, result.Posts)
	assertDescending(t, result.Threads)
}

func TestResolveNoContent(t *testing.T) {
	store := newFakeStore()
	store.addUser(1, "alice")

	result, err := Resolve(store, nil, "alice")

	require.NoError(t, err)
	assert.True(t, result.CanViewContent)
	assert.NotNil(t, result.Posts)
	assert.NotNil(t, result.Threads)
	assert.Empty(t, result.Posts)
	assert.Empty(t, result.Threads)
	assert.Zero(t, result.PostsCount)
}

func TestResolveIsIdempotent(t *testing.T) {
	store := newFakeStore()
	alice := store.addUser(1, "alice")
	store.addUser(2, "bob")
	store.setPrivate(alice.ID)
	store.follows[[2]uint{2, 1}] = models.StatusAccepted
	store.content[alice.ID] = []models.Post{
		newPost(11, alice.ID, time.Hour, "a.jpg"),
		newPost(10, alice.ID, 2*time.Hour),
	}

	first, err := Resolve(store, uintPtr(2), "alice")
	require.NoError(t, err)
	second, err := Resolve(store, uintPtr(2), "alice")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Scenario: alice is private with 3 posts (2 with media, 1 without); bob has
// an accepted follow to alice.
func TestResolveFollowerViewsPrivateProfile(t *testing.T) {
	store := newFakeStore()
	alice := store.addUser(1, "alice")
	store.addUser(2, "bob")
	store.setPrivate(alice.ID)
	store.follows[[2]uint{2, 1}] = models.StatusAccepted
	store.content[alice.ID] = []models.Post{
		newPost(12, alice.ID, 1*time.Hour, "a.jpg"),
		newPost(11, alice.ID, 2*time.Hour),
		newPost(10, alice.ID, 3*time.Hour, "b.jpg"),
	}

	result, err := Resolve(store, uintPtr(2), "alice")

	require.NoError(t, err)
	assert.True(t, result.IsPrivate)
	assert.False(t, result.IsOwner)
	assert.True(t, result.IsFollowing)
	assert.True(t, result.CanViewContent)
	assert.Equal(t, 3, result.PostsCount)
	assert.Len(t, result.Posts, 2)
	assert.Len(t, result.Threads, 1)
}

func postIDs(posts []models.Post) []uint {
	ids := make([]uint, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	return ids
}

func assertDescending(t *testing.T, posts []models.Post) {
	t.Helper()
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt), "content out of order at index %d", i)
	}
}
