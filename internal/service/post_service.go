// Package service holds the business rules between HTTP handlers and repositories.
package service

import (
	"context"
	"strings"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// PostService owns post publication rules: required text, optional group
// membership, and author-only edits.
type PostService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
}

// CreatePostInput carries the fields needed to publish a post.
type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// UpdatePostInput carries the fields for an author editing their post.
type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Text     string
	GroupID  *uint
	ImageURL string
}

// NewPostService creates a new PostService.
func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
	}
}

// CreatePost validates and persists a new post for its author.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
	}

	post := &models.Post{
		Text:     in.Text,
		AuthorID: in.AuthorID,
		GroupID:  in.GroupID,
		ImageURL: in.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost applies an edit if and only if the caller authored the post.
// A non-author gets a Forbidden error; the handler turns that into a
// redirect to the post's detail view.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != in.UserID {
		return nil, models.NewForbiddenError("Only the author may edit this post")
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, err
		}
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	if in.ImageURL != "" {
		post.ImageURL = in.ImageURL
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListAll returns every post, newest first.
func (s *PostService) ListAll(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.ListAll(ctx)
}

// ListByGroup resolves the group by slug and returns its posts, newest first.
func (s *PostService) ListByGroup(ctx context.Context, slug string) (*models.Group, []*models.Post, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.postRepo.ListByGroupID(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	return group, posts, nil
}

// ListByAuthor resolves the author by username and returns their posts, newest first.
func (s *PostService) ListByAuthor(ctx context.Context, username string) (*models.User, []*models.Post, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	posts, err := s.postRepo.ListByAuthorID(ctx, author.ID)
	if err != nil {
		return nil, nil, err
	}
	return author, posts, nil
}

// Feed returns the posts authored by everyone the user follows, newest first.
func (s *PostService) Feed(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.postRepo.Feed(ctx, userID)
}

// GetPost returns a post with its comments in creation order.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, []models.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.commentRepo.ListByPostID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	post.CommentsCount = len(comments)
	return post, comments, nil
}
