package store

import (
	"errors"

	models "Playko/models/postgres"
)

// Sentinel errors shared by every store implementation. Services wrap them
// with the offending field, e.g. fmt.Errorf("username %w", store.ErrConflict).
var (
	ErrConflict = errors.New("already exists")
	ErrNotFound = errors.New("not found")
)

// UserStore is the record-store surface for accounts. FindBy only accepts the
// unique identity fields ("username", "email", "phone"); anything else is an
// error so callers cannot smuggle arbitrary column names into a query.
type UserStore interface {
	Insert(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindBy(field, value string) (*models.User, error)
	// FindAll returns users ordered by high score descending (leaderboard
	// order). limit <= 0 means no limit.
	FindAll(limit int) ([]models.User, error)
	// Update applies only the given column->value pairs, leaving every other
	// field untouched, and returns the updated record.
	Update(id string, fields map[string]interface{}) (*models.User, error)
	// Delete removes the user and cascades to their posts, friends and games.
	Delete(id string) error
}

// PostStore is the record-store surface for the global feed.
type PostStore interface {
	Insert(post *models.Post) error
	FindByID(id string) (*models.Post, error)
	// FindAll returns every post, newest first.
	FindAll() ([]models.Post, error)
	Delete(id string) error
}

// FriendStore is the record-store surface for friend edges.
type FriendStore interface {
	// Insert fails with ErrConflict when the (owner, friend id, friend name)
	// triple already exists. This is the authority for the duplicate-edge
	// invariant; FindEdge pre-checks only exist for friendlier messages.
	Insert(friend *models.Friend) error
	FindEdge(ownerUserID, friendUserID, friendName string) (*models.Friend, error)
	FindAllByOwner(ownerUserID string) ([]models.Friend, error)
}

// GameStore is the record-store surface for play records.
type GameStore interface {
	Insert(game *models.Game) error
	// FindAllByUser returns the user's play records, newest-played first.
	FindAllByUser(userID string) ([]models.Game, error)
}

// Store bundles the per-entity stores so wiring code can pass one handle.
type Store struct {
	Users   UserStore
	Posts   PostStore
	Friends FriendStore
	Games   GameStore
}
