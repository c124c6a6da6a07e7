package services

import (
	"context"
	"fmt"
	"time"

	"karmaboard/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeOutcome reports what a like request did. Both outcomes are successes.
type LikeOutcome int

const (
	LikeCreated LikeOutcome = iota + 1
	LikeAlreadyExists
)

func (o LikeOutcome) String() string {
	switch o {
	case LikeCreated:
		return "liked"
	case LikeAlreadyExists:
		return "already liked"
	default:
		return "unknown"
	}
}

type LikeService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLikeService(db *gorm.DB) *LikeService {
	return &LikeService{db: db, now: nowUTC}
}

// ResolveTarget checks that the post or comment a target names exists.
func (s *LikeService) ResolveTarget(ctx context.Context, target models.LikeTarget) error {
	if target.ID == 0 {
		return ErrTargetNotFound
	}

	var model interface{}
	switch target.Type {
	case models.TargetPost:
		model = &models.Post{}
	case models.TargetComment:
		model = &models.Comment{}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTargetKind, target.Type)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(model).Where("id = ?", target.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("resolve %s: %w", target, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", target, ErrTargetNotFound)
	}
	return nil
}

// Like records that actorID likes the target named by kind and id. A repeated
// like is a no-op reported as LikeAlreadyExists. Exclusivity is left to the
// likes unique index: the insert uses ON CONFLICT DO NOTHING, so concurrent
// callers never see the race as an error.
func (s *LikeService) Like(ctx context.Context, actorID uint, kind string, id uint) (LikeOutcome, error) {
	target, err := models.ParseTarget(kind, id)
	if err != nil {
		return 0, err
	}
	if actorID == 0 {
		return 0, ErrNoActor
	}
	if err := s.ResolveTarget(ctx, target); err != nil {
		return 0, err
	}

	like := models.Like{
		UserID:     actorID,
		TargetType: target.Type,
		TargetID:   target.ID,
		CreatedAt:  s.now(),
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if result.Error != nil {
		return 0, fmt.Errorf("create like on %s: %w", target, result.Error)
	}

	if result.RowsAffected == 0 {
		log.WithFields(log.Fields{"user_id": actorID, "target": target.String()}).Debug("[likes] already liked")
		return LikeAlreadyExists, nil
	}

	log.WithFields(log.Fields{"user_id": actorID, "target": target.String()}).Debug("[likes] like created")
	return LikeCreated, nil
}

// Count returns how many likes a single target has received.
func (s *LikeService) Count(ctx context.Context, target models.LikeTarget) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Like{}).
		Where("target_type = ? AND target_id = ?", target.Type, target.ID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count likes on %s: %w", target, err)
	}
	return count, nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
