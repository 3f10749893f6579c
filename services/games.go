package services

import (
	"strings"
	"time"

	models "Playko/models/postgres"
	"Playko/store"
)

// DefaultGameImageResName is the placeholder artwork used when the caller
// does not name one.
const DefaultGameImageResName = "game_default"

// GameLogService records which games a user has played. There is no
// uniqueness rule: logging the same title twice means it was played twice.
type GameLogService struct {
	Games store.GameStore
}

func NewGameLogService(games store.GameStore) *GameLogService {
	return &GameLogService{Games: games}
}

type AddGameInput struct {
	UserID       string
	GameTitle    string
	ImageResName string
}

func (s *GameLogService) AddGame(in AddGameInput) (*models.Game, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.GameTitle = strings.TrimSpace(in.GameTitle)
	if in.UserID == "" || in.GameTitle == "" {
		return nil, validationErrorf("userId and gameTitle are required")
	}
	if in.ImageResName == "" {
		in.ImageResName = DefaultGameImageResName
	}

	game := models.Game{
		UserID:       in.UserID,
		GameTitle:    in.GameTitle,
		ImageResName: in.ImageResName,
		PlayedAt:     time.Now(),
	}
	if err := s.Games.Insert(&game); err != nil {
		return nil, err
	}
	return &game, nil
}

// ListGames returns the user's play history, newest-played first.
func (s *GameLogService) ListGames(userID string) ([]models.Game, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, validationErrorf("userId is required")
	}
	return s.Games.FindAllByUser(userID)
}
