package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"alumnihub/internal/cache"
	"alumnihub/internal/errors"
	"alumnihub/internal/model"
	"alumnihub/internal/repository"
)

const postCacheTTL = 5 * time.Minute

// PostInput carries the patchable post fields for updates. Pointers keep
// "field omitted" distinct from "field set to empty".
type PostInput struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// PostService handles the post moderation workflow.
type PostService interface {
	Create(ctx context.Context, author *model.User, title, content string) (*model.Post, error)
	ListVisible(ctx context.Context, viewer *model.User, statusFilter string, offset, limit int) ([]model.Post, error)
	ListMine(ctx context.Context, author *model.User) ([]model.Post, error)
	GetByID(ctx context.Context, id uint) (*model.Post, error)
	Update(ctx context.Context, caller *model.User, id uint, input PostInput) (*model.Post, error)
	Approve(ctx context.Context, id uint) (*model.Post, error)
	Reject(ctx context.Context, id uint) (*model.Post, error)
	Delete(ctx context.Context, caller *model.User, id uint) error
	ListPending(ctx context.Context) ([]model.Post, error)
}

type postService struct {
	repo  repository.PostRepository
	cache *cache.Client

	// allowPublicStatusFilter restores the legacy open visibility where any
	// caller may filter by moderation status.
	allowPublicStatusFilter bool
}

// NewPostService creates a new post service.
func NewPostService(repo repository.PostRepository, cache *cache.Client, allowPublicStatusFilter bool) PostService {
	return &postService{
		repo:                    repo,
		cache:                   cache,
		allowPublicStatusFilter: allowPublicStatusFilter,
	}
}

func (s *postService) cacheKey(id uint) string {
	return fmt.Sprintf("post:%d", id)
}

// Create stores a new post. Admin posts go live immediately; alumni posts
// await moderation.
func (s *postService) Create(ctx context.Context, author *model.User, title, content string) (*model.Post, error) {
	status := model.PostStatusPending
	if author.IsAdmin() {
		status = model.PostStatusApproved
	}

	post := &model.Post{
		AuthorID: author.ID,
		Title:    title,
		Content:  content,
		Status:   status,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	post.Author = author
	return post, nil
}

// ListVisible returns posts newest first. Without a filter only approved
// posts are shown. Filtering by pending or rejected requires an admin
// viewer unless the service was configured to allow it for everyone.
func (s *postService) ListVisible(ctx context.Context, viewer *model.User, statusFilter string, offset, limit int) ([]model.Post, error) {
	if statusFilter == "" {
		statusFilter = model.PostStatusApproved
	}

	if statusFilter != model.PostStatusApproved && !s.allowPublicStatusFilter {
		if viewer == nil || !viewer.IsAdmin() {
			return nil, errors.ErrForbidden
		}
	}

	return s.repo.List(ctx, statusFilter, offset, limit)
}

// ListMine returns all of the caller's posts regardless of status.
func (s *postService) ListMine(ctx context.Context, author *model.User) ([]model.Post, error) {
	return s.repo.ListByAuthor(ctx, author.ID)
}

// GetByID retrieves a post by ID with caching.
func (s *postService) GetByID(ctx context.Context, id uint) (*model.Post, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Post
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	if payload, err := json.Marshal(post); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, postCacheTTL)
	}
	return post, nil
}

// Update patches title and content. Only the author or an admin may edit;
// moderation status is left as is.
func (s *postService) Update(ctx context.Context, caller *model.User, id uint, input PostInput) (*model.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	if post.AuthorID != caller.ID && !caller.IsAdmin() {
		return nil, errors.ErrForbidden
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}

	if err := s.repo.Save(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(post.ID))
	return post, nil
}

// Approve sets the post status to approved, whatever it was before.
func (s *postService) Approve(ctx context.Context, id uint) (*model.Post, error) {
	return s.setStatus(ctx, id, model.PostStatusApproved)
}

// Reject sets the post status to rejected, whatever it was before.
func (s *postService) Reject(ctx context.Context, id uint) (*model.Post, error) {
	return s.setStatus(ctx, id, model.PostStatusRejected)
}

func (s *postService) setStatus(ctx context.Context, id uint, status string) (*model.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	post.Status = status
	if err := s.repo.Save(ctx, post); err != nil {
		return nil, fmt.Errorf("set post status: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(post.ID))
	return post, nil
}

// Delete removes a post permanently. Only the author or an admin may delete.
func (s *postService) Delete(ctx context.Context, caller *model.User, id uint) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}

	if post.AuthorID != caller.ID && !caller.IsAdmin() {
		return errors.ErrForbidden
	}

	if err := s.repo.Delete(ctx, post); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(post.ID))
	return nil
}

// ListPending returns the moderation queue, newest first.
func (s *postService) ListPending(ctx context.Context) ([]model.Post, error) {
	return s.repo.List(ctx, model.PostStatusPending, 0, -1)
}
