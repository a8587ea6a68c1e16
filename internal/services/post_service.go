package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/models"
	"github.com/tradeacademy/backend/internal/plans"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrBucketForbidden = errors.New("your plan does not include this section")
)

// PostService serves structured course material located by taxonomy bucket.
type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// List returns posts for at most one taxonomy filter, dispatched in the
// order chapter, submenu, menu (first non-empty wins). Restricted buckets
// are enforced here against the caller's plan, not just in the client UI:
// a filtered request for a restricted bucket is refused outright, and the
// unfiltered catalog excludes posts in buckets the plan does not grant.
func (s *PostService) List(userPlan, chapter, menu, submenu string) ([]models.Post, error) {
	query := s.db.Model(&models.Post{})

	switch {
	case chapter != "":
		if !plans.BucketAccessible(chapter, userPlan) {
			return nil, ErrBucketForbidden
		}
		query = query.Where("chapter = ?", chapter)
	case submenu != "":
		if !plans.BucketAccessible(submenu, userPlan) {
			return nil, ErrBucketForbidden
		}
		query = query.Where("submenu = ?", submenu)
	case menu != "":
		if !plans.BucketAccessible(menu, userPlan) {
			return nil, ErrBucketForbidden
		}
		query = query.Where("menu = ?", menu)
	default:
		for _, bucket := range plans.RestrictedFor(userPlan) {
			query = query.Where(
				"(chapter IS NULL OR chapter <> ?) AND (menu IS NULL OR menu <> ?) AND (submenu IS NULL OR submenu <> ?)",
				bucket, bucket, bucket,
			)
		}
	}

	var posts []models.Post
	err := query.Order("order_index ASC").Order("created_at ASC").Find(&posts).Error
	return posts, err
}

func (s *PostService) Get(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		return nil, ErrPostNotFound
	}
	return &post, nil
}

// GetForPlan fetches one post and re-checks the restricted-bucket rule: a
// direct fetch by ID must not read a post whose chapter, menu or submenu the
// caller's plan does not grant.
func (s *PostService) GetForPlan(id uuid.UUID, userPlan string) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	for _, bucket := range []*string{post.Chapter, post.Menu, post.Submenu} {
		if bucket != nil && !plans.BucketAccessible(*bucket, userPlan) {
			return nil, ErrBucketForbidden
		}
	}
	return post, nil
}

func (s *PostService) Create(req *dto.CreatePostRequest) (*models.Post, error) {
	post := models.Post{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		PdfURL:      req.PdfURL,
		DocURL:      req.DocURL,
		ImageURL:    req.ImageURL,
		Chapter:     req.Chapter,
		Menu:        req.Menu,
		Submenu:     req.Submenu,
		OrderIndex:  req.OrderIndex,
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

func (s *PostService) Update(id uuid.UUID, req *dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = req.Description
	}
	if req.VideoURL != nil {
		post.VideoURL = req.VideoURL
	}
	if req.PdfURL != nil {
		post.PdfURL = req.PdfURL
	}
	if req.DocURL != nil {
		post.DocURL = req.DocURL
	}
	if req.ImageURL != nil {
		post.ImageURL = req.ImageURL
	}
	if req.Chapter != nil {
		post.Chapter = req.Chapter
	}
	if req.Menu != nil {
		post.Menu = req.Menu
	}
	if req.Submenu != nil {
		post.Submenu = req.Submenu
	}
	if req.OrderIndex != nil {
		post.OrderIndex = *req.OrderIndex
	}

	if err := s.db.Save(post).Error; err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (s *PostService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
