package github

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ghsearch/internal/domain"
)

type rawOwner struct {
	Login string `json:"login"`
	URL   string `json:"url"`
}

// rawRepository holds only the documented fields; anything else in the payload is ignored
type rawRepository struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	HTMLURL         string   `json:"html_url"`
	Owner           rawOwner `json:"owner"`
	StargazersCount int      `json:"stargazers_count"`
	Forks           *int     `json:"forks"`
	ForksCount      *int     `json:"forks_count"`
	Watchers        *int     `json:"watchers"`
	WatchersCount   *int     `json:"watchers_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
}

var jsonNull = []byte("null")

// Normalize maps a raw search payload to a SearchResult.
// It fails with a MalformedPayloadError when the body is not a JSON object,
// when total_count is missing or not a non-negative integer, or when items is
// missing or not an array of objects.
func Normalize(body []byte) (domain.SearchResult, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return domain.SearchResult{}, &domain.MalformedPayloadError{Reason: "invalid json", Err: err}
	}
	if top == nil {
		return domain.SearchResult{}, &domain.MalformedPayloadError{Reason: "payload is not an object"}
	}

	rawTotal, ok := top["total_count"]
	if !ok || bytes.Equal(bytes.TrimSpace(rawTotal), jsonNull) {
		return domain.SearchResult{}, &domain.MalformedPayloadError{Reason: "missing total_count"}
	}
	var total int
	if err := json.Unmarshal(rawTotal, &total); err != nil {
		return domain.SearchResult{}, &domain.MalformedPayloadError{Reason: "total_count is not an integer", Err: err}
	}
	if total < 0 {
		return domain.SearchResult{}, &domain.MalformedPayloadError{Reason: fmt.Sprintf("negative total_count %d", total)}
	}

	rawItems, ok := top["items"]
	if !ok || bytes.Equal(bytes.TrimSpace(rawItems), jsonNull) {
		return domain.SearchResult{}, &domain.MalformedPayloadError{Reason: "missing items"}
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(rawItems, &elems); err != nil {
		return domain.SearchResult{}, &domain.MalformedPayloadError{Reason: "items is not an array", Err: err}
	}

	items := make([]domain.RepositoryItem, 0, len(elems))
	for i, elem := range elems {
		trimmed := bytes.TrimSpace(elem)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return domain.SearchResult{}, &domain.MalformedPayloadError{Reason: fmt.Sprintf("item %d is not an object", i)}
		}
		var r rawRepository
		if err := json.Unmarshal(trimmed, &r); err != nil {
			return domain.SearchResult{}, &domain.MalformedPayloadError{Reason: fmt.Sprintf("item %d", i), Err: err}
		}
		items = append(items, r.toItem())
	}

	return domain.SearchResult{Total: total, Items: items}, nil
}

func (r rawRepository) toItem() domain.RepositoryItem {
	return domain.RepositoryItem{
		ID:   r.ID,
		Name: r.Name,
		URL:  r.HTMLURL,
		Owner: domain.Owner{
			Login: r.Owner.Login,
			URL:   r.Owner.URL,
		},
		StarCount:      r.StargazersCount,
		ForkCount:      firstSet(r.ForksCount, r.Forks),
		OpenIssueCount: r.OpenIssuesCount,
		WatcherCount:   firstSet(r.WatchersCount, r.Watchers),
	}
}

func firstSet(vals ...*int) int {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}
