package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'Game' is a play record ("recently played"), not a library entry: the same
 * user may log the same title any number of times as distinct rows.
 */
type Game struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	UserID       string    `gorm:"size:36;not null;index:idx_games_user" json:"userId"`
	GameTitle    string    `gorm:"size:150;not null" json:"gameTitle"`
	ImageResName string    `gorm:"size:100" json:"imageResName"`
	PlayedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP;index:idx_games_played" json:"playedAt"`

	// Relationship with the owning user
	Player User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
