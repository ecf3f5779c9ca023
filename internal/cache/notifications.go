package cache

import "time"

// Notification records a review-status change observed by the monitor.
type Notification struct {
	ID         int
	TemplateID string
	Title      string
	OldStatus  string
	NewStatus  string
	CreatedAt  int64
	Read       bool
}

// AddNotification stores a status-change notification.
func (d *DB) AddNotification(templateID, title, oldStatus, newStatus string) error {
	_, err := d.db.Exec(`INSERT INTO notifications (template_id, title, old_status, new_status, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		templateID, title, oldStatus, newStatus, time.Now().Unix())
	return err
}

// Notifications returns the most recent notifications, newest first.
func (d *DB) Notifications(limit int) []Notification {
	rows, err := d.db.Query(`SELECT id, template_id, title, old_status, new_status, created_at, read
		FROM notifications ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var result []Notification
	for rows.Next() {
		var n Notification
		var readInt int
		if err := rows.Scan(&n.ID, &n.TemplateID, &n.Title, &n.OldStatus, &n.NewStatus, &n.CreatedAt, &readInt); err != nil {
			continue
		}
		n.Read = readInt != 0
		result = append(result, n)
	}
	return result
}

// UnreadNotificationCount returns how many notifications are unread.
func (d *DB) UnreadNotificationCount() int {
	row := d.db.QueryRow(`SELECT COUNT(*) FROM notifications WHERE read = 0`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0
	}
	return count
}

// MarkNotificationRead marks one notification as read.
func (d *DB) MarkNotificationRead(id int) {
	d.db.Exec(`UPDATE notifications SET read = 1 WHERE id = ?`, id)
}
