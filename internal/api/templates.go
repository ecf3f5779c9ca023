package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"
)

const maxConcurrent = 10

// TemplateDraft is the writable portion of a template, used for both
// submission and update.
type TemplateDraft struct {
	Title           string   `json:"title" validate:"required"`
	Subject         string   `json:"subject" validate:"required"`
	Content         string   `json:"content" validate:"required"`
	CompanyName     string   `json:"companyName" validate:"required"`
	CompanyLocation string   `json:"companyLocation" validate:"required"`
	CompanyWebsite  string   `json:"companyWebsite" validate:"required,url"`
	ContactPhone    string   `json:"contactPhone" validate:"required"`
	Category        string   `json:"category,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}

// ListOptions narrows and orders a template listing. Zero values are omitted
// from the query string.
type ListOptions struct {
	Page      int
	Limit     int
	Status    string
	Search    string
	SortBy    string
	SortOrder string
}

func (o ListOptions) encode() string {
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
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.SortBy != "" {
		q.Set("sortBy", o.SortBy)
	}
	if o.SortOrder != "" {
		q.Set("sortOrder", o.SortOrder)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// TemplateListResponse is the paginated listing payload.
type TemplateListResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Templates []Template `json:"templates"`
		Total     int        `json:"total"`
		Page      int        `json:"page"`
		Pages     int        `json:"pages"`
	} `json:"data"`
}

// TemplateResponse wraps a single template.
type TemplateResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Template Template `json:"template"`
	} `json:"data"`
}

// SubmitTemplate sends a new template for review.
func (c *Client) SubmitTemplate(ctx context.Context, draft TemplateDraft) (*TemplateResponse, error) {
	var out TemplateResponse
	if err := c.do(ctx, http.MethodPost, "/template/submit", draft, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTemplates fetches the caller's templates.
func (c *Client) ListTemplates(ctx context.Context, opts ListOptions) (*TemplateListResponse, error) {
	var out TemplateListResponse
	if err := c.do(ctx, http.MethodGet, "/template/list"+opts.encode(), nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTemplate fetches one template by id.
func (c *Client) GetTemplate(ctx context.Context, id string) (*TemplateResponse, error) {
	var out TemplateResponse
	if err := c.do(ctx, http.MethodGet, "/template/"+id, nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTemplate replaces the writable fields of an existing template.
func (c *Client) UpdateTemplate(ctx context.Context, id string, draft TemplateDraft) (*TemplateResponse, error) {
	var out TemplateResponse
	if err := c.do(ctx, http.MethodPut, "/template/"+id, draft, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTemplate removes a template.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/template/"+id, nil, true, nil)
}

// DuplicateTemplate creates a pending copy of an existing template.
func (c *Client) DuplicateTemplate(ctx context.Context, id string) (*TemplateResponse, error) {
	var out TemplateResponse
	if err := c.do(ctx, http.MethodPost, "/template/"+id+"/duplicate", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BatchGetTemplates fetches multiple templates concurrently with a
// concurrency limit. Results keep input order; failed fetches are nil.
func (c *Client) BatchGetTemplates(ctx context.Context, ids []string) ([]*Template, error) {
	results := make([]*Template, len(ids))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, id := range ids {
		g.Go(func() error {
			resp, err := c.GetTemplate(ctx, id)
			if err != nil {
				// Non-fatal: individual templates can fail.
				return nil
			}
			mu.Lock()
			results[i] = &resp.Data.Template
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
