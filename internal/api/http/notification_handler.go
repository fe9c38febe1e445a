package http

import (
	"net/http"

	"librental-backend/internal/service"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "not authenticated", Reason: "unauthenticated"})
		return
	}

	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	notes, total, err := h.notifications.List(r.Context(), actor, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notes)),
		Total:         total,
	}
	for i := range notes {
		resp.Notifications = append(resp.Notifications, toNotificationResponse(&notes[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}
