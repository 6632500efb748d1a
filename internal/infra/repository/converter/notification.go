package converter

import (
	"barangay-reservation/internal/domain/notification"
	"barangay-reservation/internal/infra/query"
	"barangay-reservation/internal/pkg/pgconv"
)

func NotificationToInsert(n *notification.Notification) query.Notification {
	return query.Notification{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Message:   n.Message(),
		Link:      n.Link(),
		IsRead:    n.IsRead(),
		CreatedAt: pgconv.TimeToPgtype(n.CreatedAt()),
	}
}
