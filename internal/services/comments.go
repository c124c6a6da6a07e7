package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"karmaboard/internal/models"

	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Create adds a comment to a post. A reply names its parent through parentID;
// the parent must already exist and belong to the same post.
func (s *CommentService) Create(ctx context.Context, authorID, postID uint, parentID *uint, content string) (*models.Comment, error) {
	if authorID == 0 {
		return nil, ErrNoActor
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	tx := s.db.WithContext(ctx)

	var post models.Post
	if err := tx.Select("id").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("load post %d: %w", postID, err)
	}

	if parentID != nil {
		var parent models.Comment
		if err := tx.Select("id", "post_id").First(&parent, *parentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, fmt.Errorf("load parent comment %d: %w", *parentID, err)
		}
		if parent.PostID != postID {
			return nil, ErrParentMismatch
		}
	}

	comment := models.Comment{
		PostID:   postID,
		UserID:   authorID,
		ParentID: parentID,
		Content:  content,
	}
	if err := tx.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return &comment, nil
}
