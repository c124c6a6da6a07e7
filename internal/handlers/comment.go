package handlers

import (
	"net/http"

	"karmaboard/internal/services"
	"karmaboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req struct {
		PostID   uint   `json:"post_id" binding:"required"`
		ParentID *uint  `json:"parent_id"`
		Content  string `json:"content"`
	}
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), currentUserID(c), req.PostID, req.ParentID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           comment.ID,
		"post_id":      comment.PostID,
		"parent_id":    comment.ParentID,
		"content":      comment.Content,
		"content_html": utils.RenderMarkdown(comment.Content),
		"created_at":   comment.CreatedAt,
	})
}
