package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
)

type CommentsHandler struct {
	comments repository.CommentsRepository
}

func NewCommentsHandler(comments repository.CommentsRepository) *CommentsHandler {
	return &CommentsHandler{comments: comments}
}

// ListByMovie GET /movies/:id/comments
func (h *CommentsHandler) ListByMovie(c *gin.Context) {
	comments, err := h.comments.ListByMovie(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// AddComment POST /movies/:id/comments
func (h *CommentsHandler) AddComment(c *gin.Context) {
	id, ok := requireUserID(c)
	if !ok {
		return
	}

	var comment model.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if comment.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "text is required",
		})
		return
	}

	comment.MovieID = c.Param("id")
	comment.UserID = id
	if err := h.comments.Add(c.Request.Context(), &comment); err != nil {
		respondError(c, err, "Failed to add comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeleteComment DELETE /comments/:id
func (h *CommentsHandler) DeleteComment(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete comment")
		return
	}

	c.Status(http.StatusNoContent)
}
