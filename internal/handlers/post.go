package handlers

import (
	"html/template"
	"net/http"
	"time"

	"karmaboard/internal/services"
	"karmaboard/internal/utils"

	"github.com/gin-gonic/gin"
)

const maxPostListLimit = 100

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type postResponse struct {
	ID          uint            `json:"id"`
	Author      services.Author `json:"author"`
	Content     string          `json:"content"`
	ContentHTML template.HTML   `json:"content_html"`
	CreatedAt   time.Time       `json:"created_at"`
	LikeCount   int64           `json:"likes_count"`
}

func newPostResponse(p services.PostSummary) postResponse {
	return postResponse{
		ID:          p.ID,
		Author:      p.Author(),
		Content:     p.Content,
		ContentHTML: utils.RenderMarkdown(p.Content),
		CreatedAt:   p.CreatedAt,
		LikeCount:   p.LikeCount,
	}
}

// renderThreads fills content_html at every depth.
func renderThreads(threads []services.ThreadedComment) {
	for i := range threads {
		threads[i].ContentHTML = utils.RenderMarkdown(threads[i].Content)
		renderThreads(threads[i].Replies)
	}
}

func (h *PostHandler) List(c *gin.Context) {
	limit := utils.StringToInt(c.Query("limit"), services.DefaultPostListLimit)
	if limit <= 0 || limit > maxPostListLimit {
		respondError(c, errBadInput)
		return
	}

	posts, err := h.posts.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, newPostResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"posts": out})
}

func (h *PostHandler) Create(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.posts.Create(c.Request.Context(), currentUserID(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.posts.Get(c.Request.Context(), post.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPostResponse(*summary))
}

// Detail returns a post with its whole reply forest.
func (h *PostHandler) Detail(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		respondError(c, services.ErrPostNotFound)
		return
	}

	detail, err := h.posts.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	threads := detail.Comments.Threads()
	renderThreads(threads)
	c.JSON(http.StatusOK, gin.H{
		"post":     newPostResponse(detail.Post),
		"comments": threads,
	})
}
