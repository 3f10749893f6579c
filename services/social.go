package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	models "Playko/models/postgres"
	"Playko/services/redis"
	"Playko/store"
)

// DefaultAvatarResName is the placeholder avatar used when the caller does
// not pick one.
const DefaultAvatarResName = "avatar_default"

// Presence is the slice of the Redis client the identity and social services
// consume: refreshing a user's online marker and reading it back.
// *redis.RedisClient implements it; tests substitute a fake.
type Presence interface {
	MarkUserOnline(userID string) error
	IsUserOnline(userID string) (bool, error)
}

// SocialService manages the directed friend graph. Edges are one-way
// (owner -> friend) and the friend side may not be a registered account yet:
// FriendUserID is a soft reference and is intentionally never checked against
// the user table.
type SocialService struct {
	Friends  store.FriendStore
	Presence Presence // optional, overlays live presence on listings
}

func NewSocialService(friends store.FriendStore, rc *redis.RedisClient) *SocialService {
	s := &SocialService{Friends: friends}
	// keep the interface field truly nil when there is no client
	if rc != nil {
		s.Presence = rc
	}
	return s
}

type AddFriendInput struct {
	OwnerUserID   string
	FriendUserID  string
	FriendName    string
	AvatarResName string
	IsOnline      bool
}

func (s *SocialService) AddFriend(in AddFriendInput) (*models.Friend, error) {
	in.OwnerUserID = strings.TrimSpace(in.OwnerUserID)
	in.FriendName = strings.TrimSpace(in.FriendName)
	if in.OwnerUserID == "" || in.FriendName == "" {
		return nil, validationErrorf("ownerUserId and friendName are required")
	}
	// Self-edges are rejected here, at the rule-owning layer; the stores
	// themselves accept any triple.
	if in.FriendUserID != "" && in.FriendUserID == in.OwnerUserID {
		return nil, validationErrorf("you cannot add yourself as a friend")
	}

	// Friendlier message than the raw index violation; the unique index on
	// the triple still backstops concurrent adds.
	_, err := s.Friends.FindEdge(in.OwnerUserID, in.FriendUserID, in.FriendName)
	if err == nil {
		return nil, fmt.Errorf("friendship %w", store.ErrConflict)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if in.AvatarResName == "" {
		in.AvatarResName = DefaultAvatarResName
	}

	friend := models.Friend{
		OwnerUserID:   in.OwnerUserID,
		FriendUserID:  in.FriendUserID,
		FriendName:    in.FriendName,
		AvatarResName: in.AvatarResName,
		IsOnline:      in.IsOnline,
		FriendSince:   time.Now(),
	}
	if err := s.Friends.Insert(&friend); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, fmt.Errorf("friendship %w", store.ErrConflict)
		}
		return nil, err
	}
	return &friend, nil
}

// ListFriends returns every edge owned by the user. When Redis is available,
// the stored isOnline flag of registered friends is replaced by the live
// presence marker; unregistered friends keep whatever the owner stored.
func (s *SocialService) ListFriends(ownerUserID string) ([]models.Friend, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, validationErrorf("ownerUserId is required")
	}

	friends, err := s.Friends.FindAllByOwner(ownerUserID)
	if err != nil {
		return nil, err
	}

	if s.Presence != nil {
		for i := range friends {
			if friends[i].FriendUserID == "" {
				continue
			}
			online, err := s.Presence.IsUserOnline(friends[i].FriendUserID)
			if err != nil {
				log.Printf("Error checking presence for %s: %v", friends[i].FriendUserID, err)
				continue
			}
			friends[i].IsOnline = online
		}
	}
	return friends, nil
}
