package cache

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/talentwork128/mailvet/internal/api"
)

const supportList = "support"

// PutSupportMessages replaces the cached support message list.
func (d *DB) PutSupportMessages(msgs []api.SupportMessage) error {
	now := time.Now().Unix()
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ids = append(ids, m.ID)
		_, err := d.db.Exec(`INSERT OR REPLACE INTO support_messages
			(id, name, email, company, subject, message, priority, category, status, submitted_at, fetched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, nullStr(m.Name), nullStr(m.Email), nullStr(m.Company), nullStr(m.Subject),
			nullStr(m.Message), nullStr(m.Priority), nullStr(m.Category), nullStr(m.Status),
			m.SubmittedAt.Unix(), now)
		if err != nil {
			return err
		}
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(`INSERT OR REPLACE INTO lists (name, ids, fetched_at) VALUES (?, ?, ?)`,
		supportList, string(idsJSON), now)
	return err
}

// GetSupportMessages retrieves the cached support list in server order.
// Returns (messages, isFresh, error); messages is nil on cache miss.
func (d *DB) GetSupportMessages(ttl time.Duration) ([]api.SupportMessage, bool, error) {
	row := d.db.QueryRow(`SELECT ids, fetched_at FROM lists WHERE name = ?`, supportList)

	var idsJSON string
	var fetchedAt int64
	err := row.Scan(&idsJSON, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(idsJSON), &ids); err != nil {
		return nil, false, err
	}

	msgs := make([]api.SupportMessage, 0, len(ids))
	for _, id := range ids {
		m, err := d.getSupportMessage(id)
		if err != nil {
			return nil, false, err
		}
		if m != nil {
			msgs = append(msgs, *m)
		}
	}

	isFresh := time.Since(time.Unix(fetchedAt, 0)) < ttl
	return msgs, isFresh, nil
}

func (d *DB) getSupportMessage(id string) (*api.SupportMessage, error) {
	row := d.db.QueryRow(`SELECT id, name, email, company, subject, message, priority, category, status, submitted_at
		FROM support_messages WHERE id = ?`, id)

	var m api.SupportMessage
	var name, email, company, subject, message, priority, category, status sql.NullString
	var submittedAt int64

	err := row.Scan(&m.ID, &name, &email, &company, &subject, &message, &priority, &category, &status, &submittedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	m.Name = name.String
	m.Email = email.String
	m.Company = company.String
	m.Subject = subject.String
	m.Message = message.String
	m.Priority = priority.String
	m.Category = category.String
	m.Status = status.String
	m.SubmittedAt = time.Unix(submittedAt, 0).UTC()
	return &m, nil
}
