package store

import (
	"fmt"
	"sort"
	"sync"

	models "Playko/models/postgres"

	"github.com/google/uuid"
)

// NewMemoryStore builds a fully in-memory record store with the same
// uniqueness, duplicate-edge and cascade-delete semantics as the Postgres
// one. It backs the test suites; nothing in the server wiring depends on it.
func NewMemoryStore() *Store {
	m := &memory{
		users:   map[string]models.User{},
		posts:   map[string]models.Post{},
		friends: map[string]models.Friend{},
		games:   map[string]models.Game{},
	}
	return &Store{
		Users:   &memoryUserStore{m},
		Posts:   &memoryPostStore{m},
		Friends: &memoryFriendStore{m},
		Games:   &memoryGameStore{m},
	}
}

type memory struct {
	mu      sync.Mutex
	seq     int64
	users   map[string]models.User
	posts   map[string]models.Post
	friends map[string]models.Friend
	games   map[string]models.Game
	// insertion sequence per record id, used to break timestamp ties so
	// ordering stays deterministic even within one clock tick
	order map[string]int64
}

func (m *memory) nextSeq(id string) int64 {
	m.seq++
	if m.order == nil {
		m.order = map[string]int64{}
	}
	m.order[id] = m.seq
	return m.seq
}

type memoryUserStore struct{ m *memory }

func (s *memoryUserStore) Insert(user *models.User) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, existing := range s.m.users {
		if existing.Username == user.Username ||
			existing.Email == user.Email ||
			existing.Phone == user.Phone {
			return ErrConflict
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	s.m.users[user.ID] = *user
	s.m.nextSeq(user.ID)
	return nil
}

func (s *memoryUserStore) FindByID(id string) (*models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	user, ok := s.m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *memoryUserStore) FindBy(field, value string) (*models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, user := range s.m.users {
		var match bool
		switch field {
		case "username":
			match = user.Username == value
		case "email":
			match = user.Email == value
		case "phone":
			match = user.Phone == value
		default:
			return nil, fmt.Errorf("unsupported lookup field: %s", field)
		}
		if match {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryUserStore) FindAll(limit int) ([]models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	users := make([]models.User, 0, len(s.m.users))
	for _, user := range s.m.users {
		users = append(users, user)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].HighScore > users[j].HighScore
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (s *memoryUserStore) Update(id string, fields map[string]interface{}) (*models.User, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	user, ok := s.m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	for column, value := range fields {
		switch column {
		case "profile_photo_url":
			user.ProfilePhotoURL = value.(string)
		case "high_score":
			user.HighScore = value.(int)
		case "level":
			user.Level = value.(int)
		default:
			return nil, fmt.Errorf("unsupported update column: %s", column)
		}
	}
	s.m.users[id] = user
	return &user, nil
}

func (s *memoryUserStore) Delete(id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.m.users, id)
	// cascade, mirroring the foreign-key constraints
	for postID, post := range s.m.posts {
		if post.UserID == id {
			delete(s.m.posts, postID)
		}
	}
	for friendID, friend := range s.m.friends {
		if friend.OwnerUserID == id {
			delete(s.m.friends, friendID)
		}
	}
	for gameID, game := range s.m.games {
		if game.UserID == id {
			delete(s.m.games, gameID)
		}
	}
	return nil
}

type memoryPostStore struct{ m *memory }

func (s *memoryPostStore) Insert(post *models.Post) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	s.m.posts[post.ID] = *post
	s.m.nextSeq(post.ID)
	return nil
}

func (s *memoryPostStore) FindByID(id string) (*models.Post, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	post, ok := s.m.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (s *memoryPostStore) FindAll() ([]models.Post, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	posts := make([]models.Post, 0, len(s.m.posts))
	for _, post := range s.m.posts {
		posts = append(posts, post)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return s.m.order[posts[i].ID] > s.m.order[posts[j].ID]
	})
	return posts, nil
}

func (s *memoryPostStore) Delete(id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.posts[id]; !ok {
		return ErrNotFound
	}
	delete(s.m.posts, id)
	return nil
}

type memoryFriendStore struct{ m *memory }

func (s *memoryFriendStore) Insert(friend *models.Friend) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, existing := range s.m.friends {
		if existing.OwnerUserID == friend.OwnerUserID &&
			existing.FriendUserID == friend.FriendUserID &&
			existing.FriendName == friend.FriendName {
			return ErrConflict
		}
	}
	if friend.ID == "" {
		friend.ID = uuid.NewString()
	}
	s.m.friends[friend.ID] = *friend
	s.m.nextSeq(friend.ID)
	return nil
}

func (s *memoryFriendStore) FindEdge(ownerUserID, friendUserID, friendName string) (*models.Friend, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	for _, friend := range s.m.friends {
		if friend.OwnerUserID == ownerUserID &&
			friend.FriendUserID == friendUserID &&
			friend.FriendName == friendName {
			f := friend
			return &f, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryFriendStore) FindAllByOwner(ownerUserID string) ([]models.Friend, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	friends := []models.Friend{}
	for _, friend := range s.m.friends {
		if friend.OwnerUserID == ownerUserID {
			friends = append(friends, friend)
		}
	}
	sort.SliceStable(friends, func(i, j int) bool {
		if !friends[i].FriendSince.Equal(friends[j].FriendSince) {
			return friends[i].FriendSince.After(friends[j].FriendSince)
		}
		return s.m.order[friends[i].ID] > s.m.order[friends[j].ID]
	})
	return friends, nil
}

type memoryGameStore struct{ m *memory }

func (s *memoryGameStore) Insert(game *models.Game) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if game.ID == "" {
		game.ID = uuid.NewString()
	}
	s.m.games[game.ID] = *game
	s.m.nextSeq(game.ID)
	return nil
}

func (s *memoryGameStore) FindAllByUser(userID string) ([]models.Game, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	games := []models.Game{}
	for _, game := range s.m.games {
		if game.UserID == userID {
			games = append(games, game)
		}
	}
	sort.SliceStable(games, func(i, j int) bool {
		if !games[i].PlayedAt.Equal(games[j].PlayedAt) {
			return games[i].PlayedAt.After(games[j].PlayedAt)
		}
		return s.m.order[games[i].ID] > s.m.order[games[j].ID]
	})
	return games, nil
}
