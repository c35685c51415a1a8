package service

import (
	"context"
	"strings"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// CommentService attaches comments to posts. Comments are create-only.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// AddComment validates the text, checks the post exists, and stores the
// comment. Validation failure leaves no partial write behind.
func (s *CommentService) AddComment(ctx context.Context, authorID, postID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:     text,
		AuthorID: authorID,
		PostID:   postID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListForPost returns a post's comments in creation order.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPostID(ctx, postID)
}
