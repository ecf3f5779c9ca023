package cache

import (
	"encoding/json"

	"github.com/talentwork128/mailvet/internal/api"
)

// Transient state keys carried between views and runs. Plain string/JSON
// values, no versioning.
const (
	KeyRedirectAfterLogin = "redirectAfterLogin"
	KeySelectedPlan       = "selectedPlan"
	KeyEditingTemplate    = "editingTemplate"
)

// GetState returns the value for a state key, or "" when unset.
func (d *DB) GetState(key string) string {
	row := d.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		return ""
	}
	return value
}

// SetState stores a state value.
func (d *DB) SetState(key, value string) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)`, key, value)
	return err
}

// ClearState removes a state key.
func (d *DB) ClearState(key string) error {
	_, err := d.db.Exec(`DELETE FROM state WHERE key = ?`, key)
	return err
}

// SetEditingTemplate snapshots a template for the edit-in-place flow.
func (d *DB) SetEditingTemplate(t api.Template) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return d.SetState(KeyEditingTemplate, string(data))
}

// EditingTemplate returns the snapshot stored for editing, or nil when the
// flow is not active.
func (d *DB) EditingTemplate() *api.Template {
	raw := d.GetState(KeyEditingTemplate)
	if raw == "" {
		return nil
	}
	var t api.Template
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		return nil
	}
	return &t
}
