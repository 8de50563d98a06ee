package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warbler/models"
)

func TestFeedIncludesOwnAndFollowedMessages(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	messages := NewMessageRepository(db)
	feed := NewFeedRepository(db)

	a := mustSignup(t, users, "usera", "a@test.com")
	b := mustSignup(t, users, "userb", "b@test.com")
	c := mustSignup(t, users, "userc", "c@test.com")

	require.NoError(t, follows.Follow(a.ID, b.ID))

	m1, err := messages.Create(a.ID, "m1", 100)
	require.NoError(t, err)
	m2, err := messages.Create(b.ID, "m2", 200)
	require.NoError(t, err)
	m3, err := messages.Create(c.ID, "m3", 300)
	require.NoError(t, err)

	top, err := feed.TopMessagesForUser(a.ID, 0)
	require.NoError(t, err)
	require.Len(t, top, 2)

	ids := []uint{top[0].ID, top[1].ID}
	assert.Contains(t, ids, m1.ID)
	assert.Contains(t, ids, m2.ID)
	assert.NotContains(t, ids, m3.ID)
}

func TestFeedOrderNewestFirst(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	messages := NewMessageRepository(db)
	feed := NewFeedRepository(db)

	a := mustSignup(t, users, "usera", "a@test.com")
	b := mustSignup(t, users, "userb", "b@test.com")

	require.NoError(t, follows.Follow(a.ID, b.ID))

	_, err := messages.Create(a.ID, "oldest", 100)
	require.NoError(t, err)
	_, err = messages.Create(b.ID, "middle", 200)
	require.NoError(t, err)
	_, err = messages.Create(a.ID, "newest", 300)
	require.NoError(t, err)

	top, err := feed.TopMessagesForUser(a.ID, 0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "newest", top[0].Text)
	assert.Equal(t, "middle", top[1].Text)
	assert.Equal(t, "oldest", top[2].Text)
}

func TestFeedTieBreakByMessageID(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)
	feed := NewFeedRepository(db)

	a := mustSignup(t, users, "usera", "a@test.com")

	first, err := messages.Create(a.ID, "first", 100)
	require.NoError(t, err)
	second, err := messages.Create(a.ID, "second", 100)
	require.NoError(t, err)

	top, err := feed.TopMessagesForUser(a.ID, 0)
	require.NoError(t, err)
	require.Len(t, top, 2)

	// Same timestamp: the later insert (higher id) wins.
	assert.Equal(t, second.ID, top[0].ID)
	assert.Equal(t, first.ID, top[1].ID)
}

func TestFeedLimit(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)
	feed := NewFeedRepository(db)

	a := mustSignup(t, users, "usera", "a@test.com")

	for i := 0; i < 5; i++ {
		_, err := messages.Create(a.ID, fmt.Sprintf("msg %d", i), int64(100+i))
		require.NoError(t, err)
	}

	top, err := feed.TopMessagesForUser(a.ID, 3)
	require.NoError(t, err)
	assert.Len(t, top, 3)
	assert.Equal(t, "msg 4", top[0].Text)
}

func TestFeedExcludesFollowers(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	messages := NewMessageRepository(db)
	feed := NewFeedRepository(db)

	a := mustSignup(t, users, "usera", "a@test.com")
	b := mustSignup(t, users, "userb", "b@test.com")

	// b follows a; the edge points the wrong way for a's feed.
	require.NoError(t, follows.Follow(b.ID, a.ID))

	_, err := messages.Create(b.ID, "not in a's feed", 100)
	require.NoError(t, err)

	top, err := feed.TopMessagesForUser(a.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestFeedEmptyForUnknownUser(t *testing.T) {
	db := newTestDB(t)
	feed := NewFeedRepository(db)

	top, err := feed.TopMessagesForUser(42, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestFeedPreloadsAuthors(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)
	feed := NewFeedRepository(db)

	a := mustSignup(t, users, "usera", "a@test.com")
	_, err := messages.Create(a.ID, "hello", 100)
	require.NoError(t, err)

	top, err := feed.TopMessagesForUser(a.ID, 0)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, models.User{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		PwHash:   a.PwHash,
		ImageURL: a.ImageURL,
	}, top[0].Author)
}
