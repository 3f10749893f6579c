package store

import (
	"errors"
	"fmt"

	models "Playko/models/postgres"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the class 23 code Postgres raises when an insert hits a
// unique index. It is the authority that closes the check-then-insert race.
const uniqueViolation = "23505"

// translateError maps driver/gorm errors onto the store sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return ErrConflict
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// NewGormStore builds the Postgres-backed record store on top of a GORM
// handle. The handle is injected here instead of read from a package-level
// singleton so tests can swap the whole store for an in-memory one.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:   &GormUserStore{DB: db},
		Posts:   &GormPostStore{DB: db},
		Friends: &GormFriendStore{DB: db},
		Games:   &GormGameStore{DB: db},
	}
}

type GormUserStore struct {
	DB *gorm.DB
}

// Identity columns FindBy is allowed to touch.
var userLookupColumns = map[string]string{
	"username": "username",
	"email":    "email",
	"phone":    "phone",
}

func (s *GormUserStore) Insert(user *models.User) error {
	return translateError(s.DB.Create(user).Error)
}

func (s *GormUserStore) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (s *GormUserStore) FindBy(field, value string) (*models.User, error) {
	column, ok := userLookupColumns[field]
	if !ok {
		return nil, fmt.Errorf("unsupported lookup field: %s", field)
	}
	var user models.User
	if err := s.DB.Where(column+" = ?", value).First(&user).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (s *GormUserStore) FindAll(limit int) ([]models.User, error) {
	users := []models.User{}
	query := s.DB.Order("high_score DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, translateError(err)
	}
	return users, nil
}

func (s *GormUserStore) Update(id string, fields map[string]interface{}) (*models.User, error) {
	result := s.DB.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByID(id)
}

func (s *GormUserStore) Delete(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type GormPostStore struct {
	DB *gorm.DB
}

func (s *GormPostStore) Insert(post *models.Post) error {
	return translateError(s.DB.Create(post).Error)
}

func (s *GormPostStore) FindByID(id string) (*models.Post, error) {
	var post models.Post
	if err := s.DB.Where("id = ?", id).First(&post).Error; err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

func (s *GormPostStore) FindAll() ([]models.Post, error) {
	posts := []models.Post{}
	if err := s.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

func (s *GormPostStore) Delete(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Post{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type GormFriendStore struct {
	DB *gorm.DB
}

func (s *GormFriendStore) Insert(friend *models.Friend) error {
	return translateError(s.DB.Create(friend).Error)
}

func (s *GormFriendStore) FindEdge(ownerUserID, friendUserID, friendName string) (*models.Friend, error) {
	var friend models.Friend
	err := s.DB.Where(
		"owner_user_id = ? AND friend_user_id = ? AND friend_name = ?",
		ownerUserID, friendUserID, friendName,
	).First(&friend).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &friend, nil
}

func (s *GormFriendStore) FindAllByOwner(ownerUserID string) ([]models.Friend, error) {
	friends := []models.Friend{}
	err := s.DB.Where("owner_user_id = ?", ownerUserID).
		Order("friend_since DESC").Find(&friends).Error
	if err != nil {
		return nil, translateError(err)
	}
	return friends, nil
}

type GormGameStore struct {
	DB *gorm.DB
}

func (s *GormGameStore) Insert(game *models.Game) error {
	return translateError(s.DB.Create(game).Error)
}

func (s *GormGameStore) FindAllByUser(userID string) ([]models.Game, error) {
	games := []models.Game{}
	err := s.DB.Where("user_id = ?", userID).
		Order("played_at DESC").Find(&games).Error
	if err != nil {
		return nil, translateError(err)
	}
	return games, nil
}
