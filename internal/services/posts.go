package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"karmaboard/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const DefaultPostListLimit = 50

type Author struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// PostSummary is a post with its author's username and like count.
type PostSummary struct {
	ID             uint
	UserID         uint
	Content        string
	CreatedAt      time.Time
	AuthorUsername string
	LikeCount      int64
}

func (p PostSummary) Author() Author {
	return Author{ID: p.UserID, Username: p.AuthorUsername}
}

type PostDetail struct {
	Post     PostSummary
	Comments *CommentTree
}

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) Create(ctx context.Context, authorID uint, content string) (*models.Post, error) {
	if authorID == 0 {
		return nil, ErrNoActor
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	post := models.Post{
		UserID:  authorID,
		Content: content,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &post, nil
}

// summaries selects posts joined with their author and like count, one row
// per post.
func (s *PostService) summaries(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table("posts").
		Select("posts.id, posts.user_id, posts.content, posts.created_at, users.username AS author_username, COUNT(likes.id) AS like_count").
		Joins("JOIN users ON users.id = posts.user_id").
		Joins("LEFT JOIN likes ON likes.target_type = ? AND likes.target_id = posts.id", models.TargetPost).
		Group("posts.id, users.id")
}

// List returns the newest posts first.
func (s *PostService) List(ctx context.Context, limit int) ([]PostSummary, error) {
	if limit <= 0 {
		limit = DefaultPostListLimit
	}

	posts := make([]PostSummary, 0)
	err := s.summaries(ctx).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Scan(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, postID uint) (*PostSummary, error) {
	var posts []PostSummary
	err := s.summaries(ctx).
		Where("posts.id = ?", postID).
		Limit(1).
		Scan(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}
	if len(posts) == 0 {
		return nil, ErrPostNotFound
	}
	return &posts[0], nil
}

// Comments fetches every comment of a post in one query, each with its like
// count, ordered by creation time.
func (s *PostService) Comments(ctx context.Context, postID uint) ([]CommentRecord, error) {
	records := make([]CommentRecord, 0)
	err := s.db.WithContext(ctx).Table("comments").
		Select("comments.id, comments.post_id, comments.user_id, comments.parent_id, comments.content, comments.created_at, users.username AS author_username, COUNT(likes.id) AS like_count").
		Joins("JOIN users ON users.id = comments.user_id").
		Joins("LEFT JOIN likes ON likes.target_type = ? AND likes.target_id = comments.id", models.TargetComment).
		Where("comments.post_id = ?", postID).
		Group("comments.id, users.id").
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("load comments of post %d: %w", postID, err)
	}
	return records, nil
}

// Detail loads a post and its full comment tree. It issues two queries no
// matter how many comments the post has or how deep the replies go.
func (s *PostService) Detail(ctx context.Context, postID uint) (*PostDetail, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	records, err := s.Comments(ctx, postID)
	if err != nil {
		return nil, err
	}

	tree := BuildCommentTree(records)
	for _, orphan := range tree.Orphans {
		log.WithFields(log.Fields{
			"post_id":    postID,
			"comment_id": orphan.ID,
			"parent_id":  *orphan.ParentID,
		}).Warn("[posts] orphaned reply dropped from comment tree")
	}

	return &PostDetail{Post: *post, Comments: tree}, nil
}
