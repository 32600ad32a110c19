package profile

import (
	"errors"

	"pulsefeed/backend/internal/models"
)

// ErrProfileNotFound is returned when the target username resolves to no profile.
// It is the only hard failure of the resolver; missing privacy rows and missing
// follow edges degrade to defaults instead.
var ErrProfileNotFound = errors.New("profile not found")

// Store is the read-only data access the resolver needs. Implementations must
// return (nil, nil) from FindPrivacySetting when no row exists, and
// ListContentByAuthor must order newest-first with a stable tie-break.
type Store interface {
	FindProfileByUsername(username string) (*models.User, error)
	FindPrivacySetting(userID uint) (*models.PrivacySetting, error)
	HasAcceptedFollow(followerID, followingID uint) (bool, error)
	ListContentByAuthor(userID uint) ([]models.Post, error)
}

// AccessResult is the outcome of resolving a profile view for one viewer.
// Posts holds media-bearing content, Threads text-only content; both preserve
// the newest-first fetch order. PostsCount is the total content count across
// both groups — the profile header displays it as the post count.
type AccessResult struct {
	Profile        *models.User
	IsPrivate      bool
	IsOwner        bool
	IsFollowing    bool
	CanViewContent bool
	Posts          []models.Post
	Threads        []models.Post
	PostsCount     int
}

// CanViewContent is the visibility gate: content is visible unless the profile
// is private and the viewer is neither the owner nor an accepted follower.
func CanViewContent(isPrivate, isOwner, isFollowing bool) bool {
	return !isPrivate || isOwner || isFollowing
}

// Resolve determines whether viewerID (nil for anonymous visitors) may see the
// content of the profile identified by username, and fetches and partitions
// that content when visible. The content fetch is skipped entirely for hidden
// profiles.
func Resolve(store Store, viewerID *uint, username string) (*AccessResult, error) {
	target, err := store.FindProfileByUsername(username)
	if err != nil {
		return nil, err
	}

	setting, err := store.FindPrivacySetting(target.ID)
	if err != nil {
		return nil, err
	}
	// No privacy row means no restriction.
	isPrivate := setting != nil && setting.ProfileVisibility == models.VisibilityPrivate

	isOwner := viewerID != nil && *viewerID == target.ID

	isFollowing := false
	if viewerID != nil && !isOwner {
		isFollowing, err = store.HasAcceptedFollow(*viewerID, target.ID)
		if err != nil {
			return nil, err
		}
	}

	result := &AccessResult{
		Profile:        target,
		IsPrivate:      isPrivate,
		IsOwner:        isOwner,
		IsFollowing:    isFollowing,
		CanViewContent: CanViewContent(isPrivate, isOwner, isFollowing),
		Posts:          []models.Post{},
		Threads:        []models.Post{},
	}

	if !result.CanViewContent {
		return result, nil
	}

	content, err := store.ListContentByAuthor(target.ID)
	if err != nil {
		return nil, err
	}

	result.Posts, result.Threads = partitionContent(content)
	result.PostsCount = len(content)

	return result, nil
}

// partitionContent splits one content snapshot into media posts and text
// threads in a single pass, so both groups reflect the same fetch and keep
// its order.
func partitionContent(content []models.Post) (posts, threads []models.Post) {
	posts = []models.Post{}
	threads = []models.Post{}
	for _, item := range content {
		if item.HasMedia() {
			posts = append(posts, item)
		} else {
			threads = append(threads, item)
		}
	}
	return posts, threads
}
