package interfaces

import "rids_ngo/internal/domain/entities"

// INotifier hands notifications off to a background dispatcher.
//
// Enqueue must never block the request path and never surface delivery
// failures to the caller; a dropped or failed email is logged, nothing more.
type INotifier interface {
	Enqueue(n entities.Notification)
}
