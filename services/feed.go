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

// FeedCache is the slice of the Redis client the feed service consumes.
// GetFeedCache reports a miss as (nil, nil). *redis.RedisClient implements
// it; tests substitute a fake.
type FeedCache interface {
	GetFeedCache() ([]models.Post, error)
	SaveFeedCache(posts []models.Post) error
	InvalidateFeed() error
}

// FeedService owns the global feed: creation, reverse-chronological listing
// and deletion by id. The feed is the same for every caller, which makes it
// the one read path worth caching.
type FeedService struct {
	Posts store.PostStore
	Cache FeedCache // optional read-through cache for the feed
}

func NewFeedService(posts store.PostStore, rc *redis.RedisClient) *FeedService {
	s := &FeedService{Posts: posts}
	// keep the interface field truly nil when there is no client
	if rc != nil {
		s.Cache = rc
	}
	return s
}

type CreatePostInput struct {
	UserID   string
	Username string
	Content  string
	Location string
	Link     string
	ImageURI string
}

// CreatePost stores a new feed entry. Username is the caller-supplied display
// snapshot; it is stored as-is and not re-derived from UserID.
func (s *FeedService) CreatePost(in CreatePostInput) (*models.Post, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.Username = strings.TrimSpace(in.Username)
	in.Content = strings.TrimSpace(in.Content)
	if in.UserID == "" || in.Username == "" || in.Content == "" {
		return nil, validationErrorf("userId, username and content are required")
	}

	post := models.Post{
		UserID:    in.UserID,
		Username:  in.Username,
		Content:   in.Content,
		Location:  in.Location,
		Link:      in.Link,
		ImageURI:  in.ImageURI,
		CreatedAt: time.Now(),
	}
	if err := s.Posts.Insert(&post); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return &post, nil
}

// ListPosts returns the global feed, newest first. Cache errors only cost the
// caller a store round-trip, never the response.
func (s *FeedService) ListPosts() ([]models.Post, error) {
	if s.Cache != nil {
		cached, err := s.Cache.GetFeedCache()
		if err != nil {
			log.Printf("Error reading feed cache: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	posts, err := s.Posts.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.SaveFeedCache(posts); err != nil {
			log.Printf("Error saving feed cache: %v", err)
		}
	}
	return posts, nil
}

func (s *FeedService) DeletePost(postID string) error {
	if err := s.Posts.Delete(postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("post %w", store.ErrNotFound)
		}
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *FeedService) invalidateCache() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateFeed(); err != nil {
		log.Printf("Error invalidating feed cache: %v", err)
	}
}
