package handlers

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SangWon7242/next-board/internal/board"
	"github.com/SangWon7242/next-board/internal/views"
	"github.com/SangWon7242/next-board/models"
	"github.com/SangWon7242/next-board/utils"
)

// listCacheTTL bounds how long a cached post listing may serve reads before
// a refetch, independent of invalidation signals.
const listCacheTTL = 30 * time.Second

// PostDetail is the detail payload: the stored record plus the rendered,
// sanitized markdown body.
type PostDetail struct {
	models.Post
	ContentHTML string `json:"content_html"`
}

// UpdatePostRequest defines the expected request body for editing a post.
// The thumbnail is not editable here.
type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// statusForKind maps an expected lifecycle failure to an HTTP status.
func statusForKind(kind board.Kind) int {
	switch kind {
	case board.KindMissingField:
		return fiber.StatusBadRequest
	case board.KindNotFound:
		return fiber.StatusNotFound
	case board.KindSizeLimitExceeded:
		return fiber.StatusRequestEntityTooLarge
	case board.KindInvalidMediaType:
		return fiber.StatusUnsupportedMediaType
	case board.KindTimeout:
		return fiber.StatusGatewayTimeout
	default:
		return fiber.StatusInternalServerError
	}
}

func respondBoardError(c *fiber.Ctx, err error) error {
	return utils.RespondWithError(c, statusForKind(board.KindOf(err)), board.UserMessage(err))
}

// CreatePost godoc
// @Summary Create a new post
// @Description Creates a post from a multipart form with title, content, and an optional thumbnail image (or thumbnail_url for an already-stored object).
// @Tags posts
// @Accept mpfd
// @Produce json
// @Param title formData string true "Post title"
// @Param content formData string true "Markdown body"
// @Param thumbnail formData file false "Thumbnail image, 5MB max"
// @Success 201 {object} models.Post
// @Failure 400 {object} object "Missing title or content"
// @Failure 413 {object} object "Thumbnail over the size limit"
// @Failure 415 {object} object "Thumbnail is not an image"
// @Router /posts [post]
func (h *ApplicationHandler) CreatePost(c *fiber.Ctx) error {
	title := c.FormValue("title")
	content := c.FormValue("content")

	thumb := board.NoThumbnail()
	if fileHeader, err := c.FormFile("thumbnail"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			h.Logger.WithError(err).Error("failed to open uploaded thumbnail")
			return utils.RespondWithError(c, fiber.StatusBadRequest, "could not read uploaded thumbnail")
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			h.Logger.WithError(err).Error("failed to read uploaded thumbnail")
			return utils.RespondWithError(c, fiber.StatusBadRequest, "could not read uploaded thumbnail")
		}
		thumb = board.ThumbnailUpload(data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	} else if existing := strings.TrimSpace(c.FormValue("thumbnail_url")); existing != "" {
		thumb = board.ThumbnailFromURL(existing)
	}

	post, err := h.Board.Create(c.Context(), title, content, thumb)
	if err != nil {
		return respondBoardError(c, err)
	}

	return utils.RespondWithJSON(c, fiber.StatusCreated, post)
}

// ListPosts godoc
// @Summary List all posts
// @Description Retrieves every post, newest first.
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Router /posts [get]
func (h *ApplicationHandler) ListPosts(c *fiber.Ctx) error {
	if cached, ok := h.Views.Get(views.PostList); ok {
		return utils.RespondWithJSON(c, fiber.StatusOK, cached)
	}

	posts, err := h.Board.List(c.Context())
	if err != nil {
		return respondBoardError(c, err)
	}

	h.Views.Set(views.PostList, posts, listCacheTTL)
	return utils.RespondWithJSON(c, fiber.StatusOK, posts)
}

// GetPost godoc
// @Summary Get one post
// @Description Retrieves a post by id, including the rendered markdown body. Always reads the latest committed record.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} PostDetail
// @Failure 404 {object} object "No post with that id"
// @Router /posts/{id} [get]
func (h *ApplicationHandler) GetPost(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "invalid post id")
	}

	post, err := h.Board.Get(c.Context(), id)
	if err != nil {
		return respondBoardError(c, err)
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, PostDetail{
		Post:        *post,
		ContentHTML: utils.RenderMarkdown(post.Content),
	})
}

// UpdatePost godoc
// @Summary Edit a post
// @Description Rewrites the title and content of an existing post.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body UpdatePostRequest true "New title and content"
// @Success 200 {object} models.Post
// @Failure 404 {object} object "No post with that id"
// @Router /posts/{id} [patch]
func (h *ApplicationHandler) UpdatePost(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "invalid post id")
	}

	payload := new(UpdatePostRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			strings.Join(utils.FormatValidationErrors(err), "; "))
	}

	post, err := h.Board.Update(c.Context(), id, payload.Title, payload.Content)
	if err != nil {
		return respondBoardError(c, err)
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Removes a post. Deleting an id that is already gone still succeeds.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} object
// @Router /posts/{id} [delete]
func (h *ApplicationHandler) DeletePost(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "invalid post id")
	}

	if err := h.Board.Delete(c.Context(), id); err != nil {
		return respondBoardError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "post deleted",
	})
}
