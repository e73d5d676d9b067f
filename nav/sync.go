// Package nav binds the catalog filter controls to address-bar query
// parameters: q and cat travel in the URL, the remaining filter fields are
// read when present but only written back on explicit search submission.
package nav

import (
	"net/url"
	"strconv"

	"github.com/everscale-dev/storefront-api/catalog"
	"github.com/everscale-dev/storefront-api/models"
)

// ParseQuery reads filter criteria from query parameters. Missing cat means
// "All"; unparseable numbers are treated as unset.
func ParseQuery(values url.Values) catalog.Criteria {
	crit := catalog.Criteria{
		Term:     values.Get("q"),
		Category: values.Get("cat"),
		Sort:     values.Get("sort"),
	}
	if crit.Category == "" {
		crit.Category = models.CategoryAll
	}
	if crit.Sort == "" {
		crit.Sort = catalog.SortRelevance
	}
	if v, err := strconv.ParseFloat(values.Get("min_price"), 64); err == nil {
		crit.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(values.Get("max_price"), 64); err == nil {
		crit.MaxPrice = &v
	}
	if v, err := strconv.ParseFloat(values.Get("min_rating"), 64); err == nil {
		crit.MinRating = v
	}
	return crit
}

// BuildQuery produces the canonical catalog query string for an explicit
// search submission: q always, cat only when it narrows ("All" is omitted).
// The result has no leading "?" and is empty when nothing is set.
func BuildQuery(term, category string) string {
	values := url.Values{}
	if term != "" {
		values.Set("q", term)
	}
	if category != "" && category != models.CategoryAll {
		values.Set("cat", category)
	}
	return values.Encode()
}
