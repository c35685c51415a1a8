package server

import (
	"encoding/json"
	"fmt"

	"yatube/internal/models"
	"yatube/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Index handles GET /
//
// The whole rendered page is cached for cache.IndexTTL keyed by the
// request URL (so each page number caches separately). Reads inside the
// TTL window serve the cached bytes even if posts changed underneath;
// only expiry or an explicit clear brings the index back in sync.
func (s *Server) Index(c *fiber.Ctx) error {
	ctx := c.Context()
	page := pageNumber(c)

	body, err := s.indexCache.GetOrCompute(ctx, c.OriginalURL(), func() ([]byte, error) {
		posts, err := s.postService.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(postPage(posts, page))
	})
	if err != nil {
		return respondForError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// CreatePost handles POST /create
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Text     string `json:"text"`
		GroupID  *uint  `json:"group_id,omitempty"`
		ImageURL string `json:"image_url,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		AuthorID: userID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return respondForError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// EditPost handles POST /posts/:id/edit
//
// Someone else's post is not an error page: the caller is bounced to the
// post's detail view, matching the behavior readers already rely on.
func (s *Server) EditPost(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		Text     string `json:"text"`
		GroupID  *uint  `json:"group_id,omitempty"`
		ImageURL string `json:"image_url,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		UserID:   userID,
		PostID:   postID,
		Text:     req.Text,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if models.IsCode(err, "FORBIDDEN") {
			return c.Redirect(fmt.Sprintf("/posts/%d", postID), fiber.StatusFound)
		}
		return respondForError(c, err)
	}

	return c.JSON(post)
}

// PostDetail handles GET /posts/:id
func (s *Server) PostDetail(c *fiber.Ctx) error {
	ctx := c.Context()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return err
	}

	post, comments, err := s.postService.GetPost(ctx, postID)
	if err != nil {
		return respondForError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"comments": comments,
	})
}

// FollowIndex handles GET /follow
func (s *Server) FollowIndex(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	posts, err := s.postService.Feed(ctx, userID)
	if err != nil {
		return respondForError(c, err)
	}

	return c.JSON(postPage(posts, pageNumber(c)))
}
