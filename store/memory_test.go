package store_test

import (
	"testing"
	"time"

	models "Playko/models/postgres"
	"Playko/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(username, email, phone string) *models.User {
	return &models.User{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: "hashedpassword",
		Nombre:       "Test",
		Apellido:     "User",
		Edad:         20,
		Level:        1,
	}
}

func TestMemoryUserUniqueness(t *testing.T) {
	st := store.NewMemoryStore()

	require.NoError(t, st.Users.Insert(newUser("ana123", "ana@example.com", "612345678")))

	t.Run("Duplicate username", func(t *testing.T) {
		err := st.Users.Insert(newUser("ana123", "otra@example.com", "698765432"))
		assert.ErrorIs(t, err, store.ErrConflict)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		err := st.Users.Insert(newUser("otrouser", "ana@example.com", "698765432"))
		assert.ErrorIs(t, err, store.ErrConflict)
	})

	t.Run("Duplicate phone", func(t *testing.T) {
		err := st.Users.Insert(newUser("otrouser", "otra@example.com", "612345678"))
		assert.ErrorIs(t, err, store.ErrConflict)
	})

	users, err := st.Users.FindAll(0)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestMemoryFindBy(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.Users.Insert(newUser("ana123", "ana@example.com", "612345678")))

	for _, field := range []string{"username", "email", "phone"} {
		value := map[string]string{
			"username": "ana123",
			"email":    "ana@example.com",
			"phone":    "612345678",
		}[field]
		user, err := st.Users.FindBy(field, value)
		require.NoError(t, err)
		assert.Equal(t, "ana123", user.Username)
	}

	_, err := st.Users.FindBy("username", "nadie")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users.FindBy("password_hash", "hashedpassword")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryFriendEdgeUniqueness(t *testing.T) {
	st := store.NewMemoryStore()

	edge := &models.Friend{
		OwnerUserID:  "owner-1",
		FriendUserID: "friend-1",
		FriendName:   "Nico",
		FriendSince:  time.Now(),
	}
	require.NoError(t, st.Friends.Insert(edge))

	dup := &models.Friend{
		OwnerUserID:  "owner-1",
		FriendUserID: "friend-1",
		FriendName:   "Nico",
		FriendSince:  time.Now(),
	}
	assert.ErrorIs(t, st.Friends.Insert(dup), store.ErrConflict)

	// same name but no account id is a different triple
	unregistered := &models.Friend{
		OwnerUserID: "owner-1",
		FriendName:  "Nico",
		FriendSince: time.Now(),
	}
	assert.NoError(t, st.Friends.Insert(unregistered))

	// but repeating the unregistered triple conflicts too
	assert.ErrorIs(t, st.Friends.Insert(&models.Friend{
		OwnerUserID: "owner-1",
		FriendName:  "Nico",
	}), store.ErrConflict)
}

func TestMemoryGameNoUniqueness(t *testing.T) {
	st := store.NewMemoryStore()

	first := &models.Game{UserID: "user-1", GameTitle: "Chess", PlayedAt: time.Now()}
	second := &models.Game{UserID: "user-1", GameTitle: "Chess", PlayedAt: time.Now()}
	require.NoError(t, st.Games.Insert(first))
	require.NoError(t, st.Games.Insert(second))
	assert.NotEqual(t, first.ID, second.ID)

	games, err := st.Games.FindAllByUser("user-1")
	require.NoError(t, err)
	assert.Len(t, games, 2)
}

func TestMemoryCascadeDelete(t *testing.T) {
	st := store.NewMemoryStore()

	user := newUser("ana123", "ana@example.com", "612345678")
	require.NoError(t, st.Users.Insert(user))

	require.NoError(t, st.Posts.Insert(&models.Post{
		UserID: user.ID, Username: "ana123", Content: "hola", CreatedAt: time.Now(),
	}))
	require.NoError(t, st.Friends.Insert(&models.Friend{
		OwnerUserID: user.ID, FriendName: "Nico", FriendSince: time.Now(),
	}))
	require.NoError(t, st.Games.Insert(&models.Game{
		UserID: user.ID, GameTitle: "Chess", PlayedAt: time.Now(),
	}))

	require.NoError(t, st.Users.Delete(user.ID))

	posts, err := st.Posts.FindAll()
	require.NoError(t, err)
	assert.Empty(t, posts)

	friends, err := st.Friends.FindAllByOwner(user.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)

	games, err := st.Games.FindAllByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, games)

	assert.ErrorIs(t, st.Users.Delete(user.ID), store.ErrNotFound)
}
