package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'User' contains the blueprint definition of an account. Username, email and
 * phone are each globally unique; all three are accepted as login fields.
 * It is referenced by Post, Friend and Game.
 */
type User struct {
	ID              string         `gorm:"primaryKey;size:36" json:"id"`
	Username        string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email           string         `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Phone           string         `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	PasswordHash    string         `gorm:"size:255;not null" json:"-"`
	Nombre          string         `gorm:"size:100;not null" json:"nombre"`
	Apellido        string         `gorm:"size:100;not null" json:"apellido"`
	Edad            int            `gorm:"not null" json:"edad"`
	ProfilePhotoURL string         `gorm:"size:255" json:"profilePhotoUrl"`
	HighScore       int            `gorm:"default:0;index:idx_users_high_score" json:"highScore"`
	Level           int            `gorm:"default:1" json:"level"`
	Achievements    datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"achievements"`
	CreatedAt       time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"createdAt"`

	// Relationships (dependent rows go away with the user)
	Posts   []Post   `gorm:"foreignKey:UserID" json:"-"`
	Friends []Friend `gorm:"foreignKey:OwnerUserID" json:"-"`
	Games   []Game   `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
