package services

import (
	"errors"
	"fmt"

	"karmaboard/internal/models"
)

var (
	ErrInvalidTargetKind = models.ErrInvalidTargetKind
	ErrTargetNotFound    = errors.New("target not found")
	ErrNoActor           = errors.New("no acting user available")
	ErrEmptyContent      = errors.New("content must not be empty")
	ErrParentMismatch    = errors.New("parent comment belongs to another post")

	ErrPostNotFound   = fmt.Errorf("post %w", ErrTargetNotFound)
	ErrParentNotFound = fmt.Errorf("parent comment %w", ErrTargetNotFound)

	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
