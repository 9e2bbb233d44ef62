package github

import (
	"net/url"
	"strings"

	"ghsearch/internal/domain"
)

// QueryOptions are the fixed clauses appended to every search term
type QueryOptions struct {
	Language string
	Sort     string
}

// EncodeTerm turns a query into the q= value: spaces become '+', everything else is query-escaped
func EncodeTerm(q domain.Query) string {
	// QueryEscape already encodes ' ' as '+'
	return url.QueryEscape(q.String())
}

// SearchURL builds base?q=<term>+language:<lang>&sort=<sort>
func SearchURL(base string, q domain.Query, opts QueryOptions) string {
	var b strings.Builder
	b.WriteString(base)
	if strings.Contains(base, "?") {
		b.WriteByte('&')
	} else {
		b.WriteByte('?')
	}
	b.WriteString("q=")
	b.WriteString(EncodeTerm(q))
	if opts.Language != "" {
		b.WriteString("+language:")
		b.WriteString(url.QueryEscape(opts.Language))
	}
	if opts.Sort != "" {
		b.WriteString("&sort=")
		b.WriteString(url.QueryEscape(opts.Sort))
	}
	return b.String()
}
