package cache

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/talentwork128/mailvet/internal/api"
)

const templateList = "templates"

// PutTemplates replaces the cached template list with the given one,
// preserving server ordering.
func (d *DB) PutTemplates(templates []api.Template) error {
	now := time.Now().Unix()
	ids := make([]string, 0, len(templates))
	for _, t := range templates {
		ids = append(ids, t.ID)
		if err := d.putTemplate(t, now); err != nil {
			return err
		}
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(`INSERT OR REPLACE INTO lists (name, ids, fetched_at) VALUES (?, ?, ?)`,
		templateList, string(idsJSON), now)
	return err
}

func (d *DB) putTemplate(t api.Template, now int64) error {
	var tags sql.NullString
	if len(t.Tags) > 0 {
		b, err := json.Marshal(t.Tags)
		if err != nil {
			return err
		}
		tags = sql.NullString{String: string(b), Valid: true}
	}
	_, err := d.db.Exec(`INSERT OR REPLACE INTO templates
		(id, title, subject, content, company_name, company_location, company_website,
		 contact_phone, category, tags, status, submitted_at, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, nullStr(t.Subject), nullStr(t.Content),
		nullStr(t.CompanyName), nullStr(t.CompanyLocation), nullStr(t.CompanyWebsite),
		nullStr(t.ContactPhone), nullStr(t.Category), tags,
		t.Status, t.SubmittedAt.Unix(), now)
	return err
}

// GetTemplates retrieves the cached template list in server order.
// Returns (templates, isFresh, error); templates is nil on cache miss.
func (d *DB) GetTemplates(ttl time.Duration) ([]api.Template, bool, error) {
	row := d.db.QueryRow(`SELECT ids, fetched_at FROM lists WHERE name = ?`, templateList)

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

	templates := make([]api.Template, 0, len(ids))
	for _, id := range ids {
		t, err := d.GetTemplate(id)
		if err != nil {
			return nil, false, err
		}
		if t != nil {
			templates = append(templates, *t)
		}
	}

	isFresh := time.Since(time.Unix(fetchedAt, 0)) < ttl
	return templates, isFresh, nil
}

// GetTemplate retrieves one cached template. Returns nil on a miss.
func (d *DB) GetTemplate(id string) (*api.Template, error) {
	row := d.db.QueryRow(`SELECT id, title, subject, content, company_name, company_location,
		company_website, contact_phone, category, tags, status, submitted_at
		FROM templates WHERE id = ?`, id)

	var t api.Template
	var subject, content, companyName, companyLocation, companyWebsite sql.NullString
	var contactPhone, category, tags sql.NullString
	var submittedAt int64

	err := row.Scan(&t.ID, &t.Title, &subject, &content, &companyName, &companyLocation,
		&companyWebsite, &contactPhone, &category, &tags, &t.Status, &submittedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t.Subject = subject.String
	t.Content = content.String
	t.CompanyName = companyName.String
	t.CompanyLocation = companyLocation.String
	t.CompanyWebsite = companyWebsite.String
	t.ContactPhone = contactPhone.String
	t.Category = category.String
	if tags.Valid && strings.TrimSpace(tags.String) != "" {
		_ = json.Unmarshal([]byte(tags.String), &t.Tags)
	}
	t.SubmittedAt = time.Unix(submittedAt, 0).UTC()
	return &t, nil
}

// InvalidateTemplates drops the cached list ordering so the next load
// refetches from the server. Row data stays for offline fallback.
func (d *DB) InvalidateTemplates() error {
	_, err := d.db.Exec(`DELETE FROM lists WHERE name = ?`, templateList)
	return err
}

// RemoveTemplate deletes a single template row, mirroring a server delete.
func (d *DB) RemoveTemplate(id string) error {
	_, err := d.db.Exec(`DELETE FROM templates WHERE id = ?`, id)
	return err
}
