package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'Post' is a single entry of the global feed. The author's username is
 * denormalized at write time so the feed can be rendered without joining
 * back to users. Posts are immutable after creation except for the derived
 * comment/like counters.
 */
type Post struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	UserID       string    `gorm:"size:36;not null;index:idx_posts_user" json:"userId"`
	Username     string    `gorm:"size:50;not null" json:"username"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Location     string    `gorm:"size:150" json:"location,omitempty"`
	Link         string    `gorm:"size:255" json:"link,omitempty"`
	ImageURI     string    `gorm:"size:255" json:"imageUri,omitempty"`
	CommentCount int       `gorm:"default:0" json:"commentCount"`
	LikeCount    int       `gorm:"default:0" json:"likeCount"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP;index:idx_posts_created" json:"createdAt"`

	// Relationship with the author
	Author User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
