package models

import (
	"errors"
	"fmt"
)

// TargetType discriminates the kinds of content a like can attach to.
type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
)

var ErrInvalidTargetKind = errors.New("invalid like target kind")

// LikeTarget identifies a post or a comment. It is a closed union: only the
// TargetType constants above are valid.
type LikeTarget struct {
	Type TargetType `json:"type"`
	ID   uint       `json:"id"`
}

func PostTarget(id uint) LikeTarget {
	return LikeTarget{Type: TargetPost, ID: id}
}

func CommentTarget(id uint) LikeTarget {
	return LikeTarget{Type: TargetComment, ID: id}
}

// ParseTarget builds a target from an external discriminator such as "post"
// or "comment". Any other kind fails with ErrInvalidTargetKind.
func ParseTarget(kind string, id uint) (LikeTarget, error) {
	switch t := TargetType(kind); t {
	case TargetPost, TargetComment:
		return LikeTarget{Type: t, ID: id}, nil
	default:
		return LikeTarget{}, fmt.Errorf("%w: %q", ErrInvalidTargetKind, kind)
	}
}

func (t LikeTarget) Kind() TargetType {
	return t.Type
}

func (t LikeTarget) String() string {
	return fmt.Sprintf("%s:%d", t.Type, t.ID)
}
