package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
 * 'Friend' is a directed edge of the friend graph, owned by one user.
 * FriendUserID is a soft reference: it stays empty while the friend has no
 * registered account, so there is deliberately no foreign key on it. The
 * (owner, friend id, friend name) triple is unique; an empty FriendUserID
 * participates in the index so unregistered friends are deduplicated too.
 */
type Friend struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerUserID   string    `gorm:"size:36;not null;uniqueIndex:idx_friends_edge" json:"ownerUserId"`
	FriendUserID  string    `gorm:"size:36;uniqueIndex:idx_friends_edge" json:"friendUserId"`
	FriendName    string    `gorm:"size:100;not null;uniqueIndex:idx_friends_edge" json:"friendName"`
	AvatarResName string    `gorm:"size:100" json:"avatarResName"`
	IsOnline      bool      `gorm:"default:false" json:"isOnline"`
	FriendSince   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"friendSince"`

	// Relationship with the owning user
	Owner User `gorm:"foreignKey:OwnerUserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (f *Friend) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
