package services

import (
	"context"
	"fmt"
	"time"

	"karmaboard/internal/models"

	"gorm.io/gorm"
)

// Karma weights per like received.
const (
	PostLikeWeight    = 5
	CommentLikeWeight = 1
)

const (
	DefaultLeaderboardWindow = 24 * time.Hour
	DefaultLeaderboardLimit  = 5
)

type LeaderboardEntry struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// LeaderboardService ranks users by karma earned inside a trailing window.
// All counting, weighting and grouping runs in the database.
type LeaderboardService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db, now: nowUTC}
}

// karma returns a per-author subquery summing weighted likes created at or
// after cutoff on content stored in table.
func (s *LeaderboardService) karma(table string, kind models.TargetType, weight int, cutoff time.Time) *gorm.DB {
	return s.db.Table("likes").
		Select(fmt.Sprintf("%s.user_id AS author_id, COUNT(*) * %d AS karma", table, weight)).
		Joins(fmt.Sprintf("JOIN %s ON %s.id = likes.target_id", table, table)).
		Where("likes.target_type = ? AND likes.created_at >= ?", kind, cutoff).
		Group(table + ".user_id")
}

// scores selects one row per user with a positive score. The post and
// comment sums are independent aggregates, coalesced to 0 before adding.
func (s *LeaderboardService) scores(ctx context.Context, window time.Duration) *gorm.DB {
	if window <= 0 {
		window = DefaultLeaderboardWindow
	}
	cutoff := s.now().Add(-window)

	postKarma := s.karma("posts", models.TargetPost, PostLikeWeight, cutoff)
	commentKarma := s.karma("comments", models.TargetComment, CommentLikeWeight, cutoff)

	return s.db.WithContext(ctx).Table("users").
		Select("users.id AS user_id, users.username, COALESCE(pk.karma, 0) + COALESCE(ck.karma, 0) AS score").
		Joins("LEFT JOIN (?) AS pk ON pk.author_id = users.id", postKarma).
		Joins("LEFT JOIN (?) AS ck ON ck.author_id = users.id", commentKarma).
		Where("COALESCE(pk.karma, 0) + COALESCE(ck.karma, 0) > 0")
}

// ScoreAll maps every user with karma in the window to their score. Users
// without qualifying likes are absent.
func (s *LeaderboardService) ScoreAll(ctx context.Context, window time.Duration) (map[uint]int, error) {
	var rows []LeaderboardEntry
	if err := s.scores(ctx, window).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("score users: %w", err)
	}

	scores := make(map[uint]int, len(rows))
	for _, r := range rows {
		scores[r.UserID] = r.Score
	}
	return scores, nil
}

// TopUsers returns up to limit users ordered by score descending. Equal
// scores are ordered by ascending user id.
func (s *LeaderboardService) TopUsers(ctx context.Context, window time.Duration, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	entries := make([]LeaderboardEntry, 0, limit)
	err := s.scores(ctx, window).
		Order("score DESC, users.id ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return entries, nil
}
