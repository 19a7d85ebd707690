package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/s4shantanu/socialconnect/internal/apperrors"
	"github.com/s4shantanu/socialconnect/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The alice/bob walkthrough: first like counts and notifies once, the repeat
// is a no-op, unlike restores the counter.
func TestLikeUnlikeScenario(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.follow.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	p1 := env.createPost(t, bob.ID, "hello", time.Now())

	res, err := env.engagement.Like(ctx, alice.ID, p1.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.False(t, res.AlreadyLiked)
	assert.EqualValues(t, 1, env.reloadPost(t, p1.ID).LikeCount)

	likeNotifs := 0
	for _, n := range env.notificationsFor(t, bob.ID) {
		if n.Kind == models.NotificationLike {
			likeNotifs++
			assert.Equal(t, alice.ID, n.SenderID)
			require.NotNil(t, n.PostID)
			assert.Equal(t, p1.ID, *n.PostID)
			assert.Equal(t, "alice liked your post", n.Message)
		}
	}
	assert.Equal(t, 1, likeNotifs)

	// Second like: same end state, no new notification.
	res, err = env.engagement.Like(ctx, alice.ID, p1.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.True(t, res.AlreadyLiked)
	assert.EqualValues(t, 1, env.reloadPost(t, p1.ID).LikeCount)

	likeNotifs = 0
	for _, n := range env.notificationsFor(t, bob.ID) {
		if n.Kind == models.NotificationLike {
			likeNotifs++
		}
	}
	assert.Equal(t, 1, likeNotifs)

	res, err = env.engagement.Unlike(ctx, alice.ID, p1.ID)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.EqualValues(t, 0, env.reloadPost(t, p1.ID).LikeCount)
}

func TestRelikeProducesNewNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", time.Now())

	_, err := env.engagement.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	_, err = env.engagement.Unlike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	_, err = env.engagement.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	// Notifications are never merged: unlike then re-like yields two.
	likeNotifs := 0
	for _, n := range env.notificationsFor(t, bob.ID) {
		if n.Kind == models.NotificationLike {
			likeNotifs++
		}
	}
	assert.Equal(t, 2, likeNotifs)
	assert.EqualValues(t, 1, env.reloadPost(t, post.ID).LikeCount)
}

func TestLikeOwnPostNoNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "my own post", time.Now())

	res, err := env.engagement.Like(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, res.Liked)
	assert.EqualValues(t, 1, env.reloadPost(t, post.ID).LikeCount)
	assert.Empty(t, env.notificationsFor(t, bob.ID))
}

func TestLikeMissingOrDeletedPost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	_, err := env.engagement.Like(ctx, alice.ID, 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	post := env.createPost(t, bob.ID, "soon gone", time.Now())
	_, err = env.store.Posts.SoftDeletePost(post.ID)
	require.NoError(t, err)

	_, err = env.engagement.Like(ctx, alice.ID, post.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUnlikeWithoutPriorLike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", time.Now())

	res, err := env.engagement.Unlike(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, res.Liked)
	assert.EqualValues(t, 0, env.reloadPost(t, post.ID).LikeCount)
}

func TestAddCommentValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", time.Now())

	_, err := env.engagement.AddComment(ctx, alice.ID, post.ID, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = env.engagement.AddComment(ctx, alice.ID, post.ID, strings.Repeat("x", models.MaxCommentLength+1))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.EqualValues(t, 0, env.reloadPost(t, post.ID).CommentCount)
}

func TestAddCommentCountsAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", time.Now())

	comment, err := env.engagement.AddComment(ctx, alice.ID, post.ID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, "nice one", comment.Content)
	assert.EqualValues(t, 1, env.reloadPost(t, post.ID).CommentCount)

	ns := env.notificationsFor(t, bob.ID)
	require.Len(t, ns, 1)
	assert.Equal(t, models.NotificationComment, ns[0].Kind)
	assert.Equal(t, "alice commented on your post", ns[0].Message)

	// Commenting on one's own post counts but never notifies.
	_, err = env.engagement.AddComment(ctx, bob.ID, post.ID, "thanks")
	require.NoError(t, err)
	assert.EqualValues(t, 2, env.reloadPost(t, post.ID).CommentCount)
	assert.Len(t, env.notificationsFor(t, bob.ID), 1)
}

func TestRemoveCommentPermissions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	mallory := env.createUser(t, "mallory")
	post := env.createPost(t, bob.ID, "hello", time.Now())

	comment, err := env.engagement.AddComment(ctx, alice.ID, post.ID, "first")
	require.NoError(t, err)

	err = env.engagement.RemoveComment(ctx, mallory.ID, false, comment.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermission)
	assert.EqualValues(t, 1, env.reloadPost(t, post.ID).CommentCount)

	// The author may remove their own comment.
	require.NoError(t, env.engagement.RemoveComment(ctx, alice.ID, false, comment.ID))
	assert.EqualValues(t, 0, env.reloadPost(t, post.ID).CommentCount)

	// The row is tombstoned, not gone, so a repeat remove reports NotFound
	// and the counter is untouched.
	err = env.engagement.RemoveComment(ctx, alice.ID, false, comment.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.EqualValues(t, 0, env.reloadPost(t, post.ID).CommentCount)

	var stored models.Comment
	require.NoError(t, env.db.First(&stored, comment.ID).Error)
	assert.Equal(t, models.StatusDeleted, stored.Status)
}

func TestRemoveCommentElevated(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	admin := env.createUser(t, "admin")
	post := env.createPost(t, bob.ID, "hello", time.Now())

	comment, err := env.engagement.AddComment(ctx, alice.ID, post.ID, "spam")
	require.NoError(t, err)

	require.NoError(t, env.engagement.RemoveComment(ctx, admin.ID, true, comment.ID))
	assert.EqualValues(t, 0, env.reloadPost(t, post.ID).CommentCount)
}

func TestListCommentsActiveOnlyOldestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", time.Now())

	first, err := env.engagement.AddComment(ctx, alice.ID, post.ID, "first")
	require.NoError(t, err)
	second, err := env.engagement.AddComment(ctx, bob.ID, post.ID, "second")
	require.NoError(t, err)
	third, err := env.engagement.AddComment(ctx, alice.ID, post.ID, "third")
	require.NoError(t, err)

	require.NoError(t, env.engagement.RemoveComment(ctx, bob.ID, false, second.ID))

	comments, err := env.engagement.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, third.ID, comments[1].ID)
}

// Counter consistency after an arbitrary mixed sequence: the denormalized
// counters always equal the row counts.
func TestCountersMatchRowsAfterMixedSequence(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", time.Now())

	users := make([]*models.User, 0, 4)
	for _, name := range []string{"u1", "u2", "u3", "u4"} {
		users = append(users, env.createUser(t, name))
	}

	for _, u := range users {
		_, err := env.engagement.Like(ctx, u.ID, post.ID)
		require.NoError(t, err)
	}
	_, err := env.engagement.Unlike(ctx, users[0].ID, post.ID)
	require.NoError(t, err)
	_, err = env.engagement.Like(ctx, users[1].ID, post.ID) // duplicate
	require.NoError(t, err)

	c1, err := env.engagement.AddComment(ctx, users[0].ID, post.ID, "a")
	require.NoError(t, err)
	_, err = env.engagement.AddComment(ctx, users[1].ID, post.ID, "b")
	require.NoError(t, err)
	require.NoError(t, env.engagement.RemoveComment(ctx, users[0].ID, false, c1.ID))

	stored := env.reloadPost(t, post.ID)
	likeRows, err := env.store.Likes.GetLikesCountByPostID(post.ID)
	require.NoError(t, err)
	commentRows, err := env.store.Comments.CountActiveByPostID(post.ID)
	require.NoError(t, err)

	assert.EqualValues(t, likeRows, stored.LikeCount)
	assert.EqualValues(t, commentRows, stored.CommentCount)
	assert.EqualValues(t, 3, stored.LikeCount)
	assert.EqualValues(t, 1, stored.CommentCount)
}

func TestLikeStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, bob.ID, "hello", time.Now())

	liked, err := env.engagement.LikeStatus(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = env.engagement.Like(ctx, alice.ID, post.ID)
	require.NoError(t, err)

	liked, err = env.engagement.LikeStatus(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}
