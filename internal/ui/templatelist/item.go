package templatelist

import "github.com/talentwork128/mailvet/internal/api"

// TemplateItem wraps a template for the bubbles list.
type TemplateItem struct {
	api.Template
	Index int
}

func (t TemplateItem) ItemTitle() string {
	return t.Template.Title
}

func (t TemplateItem) FilterValue() string {
	return t.Template.Title + " " + t.Subject + " " + t.CompanyName
}
