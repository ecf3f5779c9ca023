package api

import "time"

// User is the authenticated account as reported by the service.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
}

// Template review statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Template is an email template submitted for review. The server owns the
// lifecycle; clients only mirror the last fetched state.
type Template struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Subject         string    `json:"subject"`
	Content         string    `json:"content"`
	CompanyName     string    `json:"companyName"`
	CompanyLocation string    `json:"companyLocation"`
	CompanyWebsite  string    `json:"companyWebsite"`
	ContactPhone    string    `json:"contactPhone"`
	Category        string    `json:"category,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	Status          string    `json:"status"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

// SupportMessage is a contact/support request and its handling state.
type SupportMessage struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `json:"message"`
	Priority    string    `json:"priority,omitempty"`
	Category    string    `json:"category,omitempty"`
	Status      string    `json:"status,omitempty"`
	AssignedTo  string    `json:"assignedTo,omitempty"`
	Responses   []string  `json:"responses,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// StatusResponse is the generic success envelope for calls that return no data.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is the payload of a successful login or email verification.
type AuthResponse struct {
	Success bool `json:"success"`
	Data    struct {
		User  User   `json:"user"`
		Token string `json:"token"`
	} `json:"data"`
}

// ProfileResponse is the payload of GET /auth/me.
type ProfileResponse struct {
	Success bool `json:"success"`
	Data    struct {
		User User `json:"user"`
	} `json:"data"`
}
