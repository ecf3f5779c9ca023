package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// SupportDraft is a new support/contact message.
type SupportDraft struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Company  string `json:"company,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Message  string `json:"message" validate:"required"`
	Priority string `json:"priority,omitempty"`
	Category string `json:"category,omitempty"`
}

// SupportListOptions filters a support message listing.
type SupportListOptions struct {
	Page     int
	Limit    int
	Status   string
	Priority string
	Category string
	Search   string
}

func (o SupportListOptions) encode() string {
	q := url.Values{}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Status != "" {
		q.Set("status", o.Status)
	}
	if o.Priority != "" {
		q.Set("priority", o.Priority)
	}
	if o.Category != "" {
		q.Set("category", o.Category)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// SupportListResponse is the paginated support listing payload.
type SupportListResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Messages []SupportMessage `json:"messages"`
		Total    int              `json:"total"`
		Page     int              `json:"page"`
		Pages    int              `json:"pages"`
	} `json:"data"`
}

// SupportMessageResponse wraps a single support message.
type SupportMessageResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Message SupportMessage `json:"message"`
	} `json:"data"`
}

// SupportStats summarizes the support queue.
type SupportStats struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
}

// SupportStatsResponse wraps queue statistics.
type SupportStatsResponse struct {
	Success bool         `json:"success"`
	Data    SupportStats `json:"data"`
}

type respondRequest struct {
	Message string `json:"message"`
}

type statusUpdateRequest struct {
	Status     string `json:"status"`
	AssignedTo string `json:"assignedTo,omitempty"`
}

// SubmitSupportMessage files a new support message.
func (c *Client) SubmitSupportMessage(ctx context.Context, draft SupportDraft) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodPost, "/support/message", draft, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSupportMessages fetches support messages matching the filter.
func (c *Client) ListSupportMessages(ctx context.Context, opts SupportListOptions) (*SupportListResponse, error) {
	var out SupportListResponse
	if err := c.do(ctx, http.MethodGet, "/support/messages"+opts.encode(), nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSupportMessage fetches one support message by id.
func (c *Client) GetSupportMessage(ctx context.Context, id string) (*SupportMessageResponse, error) {
	var out SupportMessageResponse
	if err := c.do(ctx, http.MethodGet, "/support/message/"+id, nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RespondSupportMessage adds a response to a support thread.
func (c *Client) RespondSupportMessage(ctx context.Context, id, message string) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodPost, "/support/message/"+id+"/respond", respondRequest{Message: message}, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSupportStatus moves a support message through its workflow.
func (c *Client) UpdateSupportStatus(ctx context.Context, id, status, assignedTo string) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodPut, "/support/message/"+id+"/status", statusUpdateRequest{Status: status, AssignedTo: assignedTo}, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSupportStats fetches queue statistics.
func (c *Client) GetSupportStats(ctx context.Context) (*SupportStatsResponse, error) {
	var out SupportStatsResponse
	if err := c.do(ctx, http.MethodGet, "/support/stats", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
