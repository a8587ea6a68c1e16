package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tradeacademy/backend/internal/authctx"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/services"
)

type PostHandler struct {
	postService *services.PostService
	userService *services.UserService
}

func NewPostHandler(postService *services.PostService, userService *services.UserService) *PostHandler {
	return &PostHandler{postService: postService, userService: userService}
}

// List serves the course catalog, optionally filtered by one of the
// chapter, menu or submenu query parameters.
func (h *PostHandler) List(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	user, err := h.userService.GetByID(userID)
	if err != nil {
		return unauthorized(c)
	}

	posts, err := h.postService.List(
		user.Plan,
		c.Query("chapter"),
		c.Query("menu"),
		c.Query("submenu"),
	)
	if err != nil {
		if errors.Is(err, services.ErrBucketForbidden) {
			return forbidden(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"posts": posts})
}

func (h *PostHandler) Show(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	userID, err := authctx.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	user, err := h.userService.GetByID(userID)
	if err != nil {
		return unauthorized(c)
	}

	post, err := h.postService.GetForPlan(id, user.Plan)
	if err != nil {
		if errors.Is(err, services.ErrBucketForbidden) {
			return forbidden(c, err.Error())
		}
		return notFound(c, "Post not found")
	}
	return c.JSON(fiber.Map{"post": post})
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	post, err := h.postService.Create(&req)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	post, err := h.postService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return notFound(c, "Post not found")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "Post updated successfully",
		"post":    post,
	})
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid post ID")
	}

	if err := h.postService.Delete(id); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return notFound(c, "Post not found")
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
