package response

import (
	"time"

	"barangay-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Items       []*NotificationResponse `json:"items"`
	UnreadCount int64                   `json:"unread_count"`
}

func FromNotifications(vs []*queries.NotificationView, unread int64) *NotificationListResponse {
	items := make([]*NotificationResponse, len(vs))
	for i, v := range vs {
		items[i] = &NotificationResponse{
			ID:        v.ID,
			Message:   v.Message,
			Link:      v.Link,
			IsRead:    v.IsRead,
			CreatedAt: v.CreatedAt,
		}
	}
	return &NotificationListResponse{Items: items, UnreadCount: unread}
}
