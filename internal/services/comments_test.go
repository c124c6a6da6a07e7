package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"karmaboard/internal/models"
)

func TestCommentService_Create(t *testing.T) {
	conn := newTestDB(t)
	alice := createUser(t, conn, "alice")
	post := createPost(t, conn, alice, "Hello World")
	s := NewCommentService(conn)
	ctx := context.Background()

	root, err := s.Create(ctx, alice.ID, post.ID, nil, "Root")
	if err != nil {
		t.Fatalf("unexpected error creating root: %v", err)
	}
	if root.ParentID != nil || root.PostID != post.ID {
		t.Errorf("want root comment on post %d, got %+v", post.ID, root)
	}

	reply, err := s.Create(ctx, alice.ID, post.ID, &root.ID, "Child")
	if err != nil {
		t.Fatalf("unexpected error creating reply: %v", err)
	}
	if reply.ParentID == nil || *reply.ParentID != root.ID {
		t.Errorf("want reply under %d, got %+v", root.ID, reply.ParentID)
	}
}

func TestCommentService_CreateErrors(t *testing.T) {
	conn := newTestDB(t)
	alice := createUser(t, conn, "alice")
	first := createPost(t, conn, alice, "first")
	second := createPost(t, conn, alice, "second")
	onFirst := createComment(t, conn, alice, first.ID, nil, "on first", time.Now())

	missing := uint(999)
	tests := []struct {
		name    string
		author  uint
		postID  uint
		parent  *uint
		content string
		wantErr error
	}{
		{"no actor", 0, first.ID, nil, "hi", ErrNoActor},
		{"empty content", alice.ID, first.ID, nil, " ", ErrEmptyContent},
		{"missing post", alice.ID, 999, nil, "hi", ErrTargetNotFound},
		{"missing parent", alice.ID, first.ID, &missing, "hi", ErrTargetNotFound},
		{"parent on another post", alice.ID, second.ID, &onFirst.ID, "hi", ErrParentMismatch},
	}

	s := NewCommentService(conn)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Create(context.Background(), tt.author, tt.postID, tt.parent, tt.content); !errors.Is(err, tt.wantErr) {
				t.Errorf("want %v, got %v", tt.wantErr, err)
			}
		})
	}

	var count int64
	conn.Model(&models.Comment{}).Count(&count)
	if count != 1 {
		t.Errorf("rejected comments must not be stored, found %d rows", count)
	}
}
