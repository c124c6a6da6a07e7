package models

import (
	"errors"
	"testing"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		kind    string
		id      uint
		want    LikeTarget
		wantErr error
	}{
		{kind: "post", id: 7, want: LikeTarget{Type: TargetPost, ID: 7}},
		{kind: "comment", id: 42, want: LikeTarget{Type: TargetComment, ID: 42}},
		{kind: "user", id: 1, wantErr: ErrInvalidTargetKind},
		{kind: "Post", id: 1, wantErr: ErrInvalidTargetKind},
		{kind: "", id: 1, wantErr: ErrInvalidTargetKind},
	}

	for _, tt := range tests {
		got, err := ParseTarget(tt.kind, tt.id)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseTarget(%q, %d): want error %v, got %v", tt.kind, tt.id, tt.wantErr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTarget(%q, %d): unexpected error: %v", tt.kind, tt.id, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q, %d): want %+v, got %+v", tt.kind, tt.id, tt.want, got)
		}
	}
}

func TestLikeTarget_Key(t *testing.T) {
	like := Like{UserID: 1, TargetType: TargetComment, TargetID: 42}
	if got := like.Target(); got != CommentTarget(42) {
		t.Errorf("want %v, got %v", CommentTarget(42), got)
	}
	if got := (Post{ID: 7}).Target().String(); got != "post:7" {
		t.Errorf("want post:7, got %s", got)
	}
	if PostTarget(7) == CommentTarget(7) {
		t.Error("post and comment targets with the same id must differ")
	}
}
