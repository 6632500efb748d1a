package notification

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("notification message cannot be empty")

type Notification struct {
	id        uuid.UUID
	userID    uuid.UUID
	message   string
	link      string
	isRead    bool
	createdAt time.Time
}

func New(userID uuid.UUID, message, link string, now time.Time) (*Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	return &Notification{
		id:        uuid.New(),
		userID:    userID,
		message:   message,
		link:      link,
		createdAt: now,
	}, nil
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) UserID() uuid.UUID    { return n.userID }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Link() string         { return n.link }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// ReservationLink is the in-app path of a reservation's detail page.
func ReservationLink(reservationID uuid.UUID) string {
	return "/reservations/" + reservationID.String()
}
