package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"postboard/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/error messages to avoid magic strings and typos.
const (
	msgPostUpdated = "Post updated"
	msgPostDeleted = "Post deleted"

	errPostNotFound  = "Post not found"
	errNotPostOwner  = "You are not the author of this post"
	errListPosts     = "failed to load posts"
	errInvalidPostID = "invalid post id"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for creating a post. Any author supplied by the client is
// ignored; the author is always the authenticated username.
type createPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// Request DTO for updating a post: optional fields, nil = unchanged.
type updatePostRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// pathID parses the :id path parameter, writing a 400 on failure.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidPostID})
		return 0, false
	}
	return id, true
}

// hasListQuery reports whether any pagination/filter parameter is present.
func hasListQuery(c *gin.Context) bool {
	for _, k := range []string{"page", "limit", "author", "search"} {
		if _, ok := c.GetQuery(k); ok {
			return true
		}
	}
	return false
}

// @Summary      List posts
// @Description  Plain array without query params; windowed {items,page,limit,total} with any of page, limit, author, search.
// @Tags         posts
// @Produce      json
// @Param        page    query  int     false  "Page number (default 1)"
// @Param        limit   query  int     false  "Page size (default 10)"
// @Param        author  query  string  false  "Exact author match"
// @Param        search  query  string  false  "Substring match on title or description"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *Handler) listPosts(c *gin.Context) {
	ctx := c.Request.Context()

	if !hasListQuery(c) {
		posts, err := h.services.Posts.List(ctx)
		if err != nil {
			h.logAndJSONError(c, http.StatusInternalServerError, errListPosts, "posts_list_failed", err)
			return
		}
		c.JSON(http.StatusOK, posts)
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	result, err := h.services.Posts.PageOf(ctx, service.PostQuery{
		Page:   page,
		Limit:  limit,
		Author: c.Query("author"),
		Search: c.Query("search"),
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListPosts, "posts_page_failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary      Get one post
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "Post ID"
// @Success      200  {object}  models.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.services.Posts.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errPostNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load post", "post_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body  createPostRequest  true  "Post payload"
// @Success      201  {object}  models.Post
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /posts [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req createPostRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	post, err := h.services.Posts.Create(c.Request.Context(), ident.Username, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPostField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to create post", "post_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// @Summary      Update a post (owner only)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "Post ID"
// @Param        body  body  updatePostRequest  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}  "message, updatedRows"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
// @Security     BearerAuth
func (h *Handler) updatePost(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updatePostRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	updated, err := h.services.Posts.Update(c.Request.Context(), ident.Username, id, service.PostPatch{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		h.writePostMutationError(c, err, "post_update_failed", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgPostUpdated, "updatedRows": updated})
}

// @Summary      Delete a post (owner only)
// @Tags         posts
// @Produce      json
// @Param        id  path  int  true  "Post ID"
// @Success      200  {object}  map[string]interface{}  "message, deletedRows"
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deletePost(c *gin.Context) {
	ident, ok := callerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.services.Posts.Delete(c.Request.Context(), ident.Username, id)
	if err != nil {
		h.writePostMutationError(c, err, "post_delete_failed", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgPostDeleted, "deletedRows": deleted})
}

// writePostMutationError maps ownership-gate sentinels to statuses.
func (h *Handler) writePostMutationError(c *gin.Context, err error, logKey string, id int) {
	switch {
	case errors.Is(err, service.ErrEmptyPatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errPostNotFound})
	case errors.Is(err, service.ErrNotPostOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": errNotPostOwner})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to modify post", logKey, err, "id", id)
	}
}
