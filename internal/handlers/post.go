package handlers

import (
	"errors"
	"io"
	"net/http"

	"reddypet/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	appearanceSuccess = "success"
	appearanceNeutral = "neutral"

	msgPostCreated    = "Post created!"
	msgPostFailedPref = "Failed to create post: "
)

type toast struct {
	Text       string `json:"text"`
	Appearance string `json:"appearance"`
}

type menuResponse struct {
	NavigateTo string `json:"navigateTo,omitempty"`
	ShowToast  toast  `json:"showToast"`
}

type createPostRequest struct {
	SubredditName string `json:"subredditName"`
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) createPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.failToast(c, http.StatusBadRequest, err)
		return
	}

	post, err := h.posts.CreatePost(c.Request.Context(), req.SubredditName)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, service.ErrMissingVenue) {
			code = http.StatusBadRequest
		}
		h.failToast(c, code, err)
		return
	}

	h.log.Infow("post created", "id", post.ID, "url", post.URL)
	c.JSON(http.StatusOK, menuResponse{
		NavigateTo: post.URL,
		ShowToast:  toast{Text: msgPostCreated, Appearance: appearanceSuccess},
	})
}

func (h *Handler) failToast(c *gin.Context, code int, err error) {
	h.log.Errorw("post_create_failed", "err", err)
	c.JSON(code, menuResponse{
		ShowToast: toast{Text: msgPostFailedPref + err.Error(), Appearance: appearanceNeutral},
	})
}
