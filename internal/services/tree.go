package services

import (
	"html/template"
	"time"
)

// CommentRecord is one row of the flat comment fetch for a post, annotated
// with the author's username and the comment's like count.
type CommentRecord struct {
	ID             uint
	PostID         uint
	UserID         uint
	ParentID       *uint
	Content        string
	CreatedAt      time.Time
	AuthorUsername string
	LikeCount      int64
}

// CommentNode is an arena slot: the record plus the ids of its direct replies
// in fetch order.
type CommentNode struct {
	CommentRecord
	Replies []uint
}

// CommentTree is the reply forest of one post. Nodes live in a flat arena
// indexed by comment id; parent/child links are id lists.
type CommentTree struct {
	nodes []CommentNode
	index map[uint]int

	// Roots holds root comment ids in fetch order.
	Roots []uint
	// Orphans holds records no root reaches, in fetch order: replies whose
	// parent is missing or is themselves, the replies beneath those, and
	// members of parent cycles. They are left out of the tree.
	Orphans []CommentRecord
}

// BuildCommentTree links records to their parents in one pass, then walks
// down from the roots to find what the tree cannot show. Roots
// and replies keep the order of records, so a created_at ordered fetch yields
// created_at ordered siblings at every depth.
func BuildCommentTree(records []CommentRecord) *CommentTree {
	t := &CommentTree{
		nodes: make([]CommentNode, len(records)),
		index: make(map[uint]int, len(records)),
		Roots: make([]uint, 0),
	}
	for i, r := range records {
		t.nodes[i] = CommentNode{CommentRecord: r}
		t.index[r.ID] = i
	}

	for i := range t.nodes {
		n := &t.nodes[i]
		if n.ParentID == nil {
			t.Roots = append(t.Roots, n.ID)
			continue
		}
		parent, ok := t.index[*n.ParentID]
		if !ok || *n.ParentID == n.ID {
			continue
		}
		t.nodes[parent].Replies = append(t.nodes[parent].Replies, n.ID)
	}

	reached := make([]bool, len(t.nodes))
	stack := append([]uint(nil), t.Roots...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		i := t.index[id]
		if reached[i] {
			continue
		}
		reached[i] = true
		stack = append(stack, t.nodes[i].Replies...)
	}
	for i := range t.nodes {
		if !reached[i] {
			t.Orphans = append(t.Orphans, t.nodes[i].CommentRecord)
		}
	}
	return t
}

// Len reports how many comments the arena holds, orphans included.
func (t *CommentTree) Len() int {
	return len(t.nodes)
}

func (t *CommentTree) Node(id uint) (CommentNode, bool) {
	i, ok := t.index[id]
	if !ok {
		return CommentNode{}, false
	}
	return t.nodes[i], true
}

// ThreadedComment is the nested presentation shape of a comment.
type ThreadedComment struct {
	ID          uint              `json:"id"`
	Author      Author            `json:"author"`
	ParentID    *uint             `json:"parent_id"`
	Content     string            `json:"content"`
	ContentHTML template.HTML     `json:"content_html,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	LikeCount   int64             `json:"likes_count"`
	Replies     []ThreadedComment `json:"replies"`
}

// Threads expands the arena into nested root comments.
func (t *CommentTree) Threads() []ThreadedComment {
	return t.expand(t.Roots)
}

func (t *CommentTree) expand(ids []uint) []ThreadedComment {
	out := make([]ThreadedComment, 0, len(ids))
	for _, id := range ids {
		n := t.nodes[t.index[id]]
		out = append(out, ThreadedComment{
			ID:        n.ID,
			Author:    Author{ID: n.UserID, Username: n.AuthorUsername},
			ParentID:  n.ParentID,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
			LikeCount: n.LikeCount,
			Replies:   t.expand(n.Replies),
		})
	}
	return out
}
