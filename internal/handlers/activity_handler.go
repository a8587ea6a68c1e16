package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tradeacademy/backend/internal/authctx"
	"github.com/tradeacademy/backend/internal/dto"
	"github.com/tradeacademy/backend/internal/presence"
	"github.com/tradeacademy/backend/internal/services"
)

// ActivityHandler exposes the heartbeat-based presence view. The tracker is
// in-memory only: every reported status resets on process restart.
type ActivityHandler struct {
	tracker     *presence.Tracker
	userService *services.UserService
}

func NewActivityHandler(tracker *presence.Tracker, userService *services.UserService) *ActivityHandler {
	return &ActivityHandler{tracker: tracker, userService: userService}
}

func (h *ActivityHandler) Heartbeat(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	seen := h.tracker.Heartbeat(userID)
	return c.JSON(dto.HeartbeatResponse{
		Message:   "Heartbeat recorded",
		Timestamp: seen.Unix(),
	})
}

func (h *ActivityHandler) Logout(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	h.tracker.Logout(userID)
	return c.JSON(fiber.Map{"message": "Logged out from activity tracking"})
}

// Status merges the account list with the tracker snapshot: every account
// appears exactly once, inactive with no timestamp when the tracker has
// never seen it.
func (h *ActivityHandler) Status(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return internalError(c)
	}

	statuses := h.tracker.Statuses()
	resp := dto.UserStatusListResponse{
		UserStatuses: make([]dto.UserStatusResponse, 0, len(users)),
		Timestamp:    time.Now().Unix(),
	}

	for i := range users {
		entry := dto.UserStatusResponse{
			UserID: users[i].ID,
			Name:   users[i].Name,
			Email:  users[i].Email,
		}
		if status, ok := statuses[users[i].ID]; ok {
			entry.IsActive = status.Active
			seen := status.LastSeen.Unix()
			formatted := status.LastSeen.Format("2006-01-02 15:04:05")
			entry.LastSeen = &seen
			entry.LastSeenFormatted = &formatted
		}
		resp.UserStatuses = append(resp.UserStatuses, entry)
	}

	return c.JSON(resp)
}
