package input

import "ghsearch/internal/domain"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Items    []domain.RepositoryItem
	Selected int
	Page     int
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.Selected
}

// TotalItems returns the number of listed repositories
func (c *ModelContext) TotalItems() int {
	return len(c.Items)
}

// CurrentURL returns the URL of the repository under the cursor
func (c *ModelContext) CurrentURL() string {
	if c.Selected < 0 || c.Selected >= len(c.Items) {
		return ""
	}
	return c.Items[c.Selected].URL
}

// PageSize returns how many rows a page move skips
func (c *ModelContext) PageSize() int {
	if c.Page < 1 {
		return 1
	}
	return c.Page
}
