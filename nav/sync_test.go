package nav

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/everscale-dev/storefront-api/catalog"
	"github.com/everscale-dev/storefront-api/models"
)

func TestParseQueryDefaults(t *testing.T) {
	crit := ParseQuery(url.Values{})

	assert.Equal(t, "", crit.Term)
	assert.Equal(t, models.CategoryAll, crit.Category)
	assert.Equal(t, catalog.SortRelevance, crit.Sort)
	assert.Nil(t, crit.MinPrice)
	assert.Nil(t, crit.MaxPrice)
	assert.Equal(t, 0.0, crit.MinRating)
}

func TestParseQueryFullCriteria(t *testing.T) {
	values := url.Values{}
	values.Set("q", "lamp")
	values.Set("cat", models.CategoryHome)
	values.Set("min_price", "10.5")
	values.Set("max_price", "99")
	values.Set("min_rating", "4")
	values.Set("sort", catalog.SortPriceAsc)

	crit := ParseQuery(values)

	assert.Equal(t, "lamp", crit.Term)
	assert.Equal(t, models.CategoryHome, crit.Category)
	require.NotNil(t, crit.MinPrice)
	assert.Equal(t, 10.5, *crit.MinPrice)
	require.NotNil(t, crit.MaxPrice)
	assert.Equal(t, 99.0, *crit.MaxPrice)
	assert.Equal(t, 4.0, crit.MinRating)
	assert.Equal(t, catalog.SortPriceAsc, crit.Sort)
}

func TestParseQueryIgnoresGarbageNumbers(t *testing.T) {
	values := url.Values{}
	values.Set("min_price", "cheap")
	values.Set("max_price", "")

	crit := ParseQuery(values)
	assert.Nil(t, crit.MinPrice)
	assert.Nil(t, crit.MaxPrice)
}

func TestBuildQueryOmitsAllSentinel(t *testing.T) {
	assert.Equal(t, "q=lamp", BuildQuery("lamp", models.CategoryAll))
	assert.Equal(t, "q=lamp", BuildQuery("lamp", ""))
	assert.Equal(t, "", BuildQuery("", models.CategoryAll))
}

func TestBuildQueryRoundtrip(t *testing.T) {
	raw := BuildQuery("desk lamp", models.CategoryHome)
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)

	crit := ParseQuery(values)
	assert.Equal(t, "desk lamp", crit.Term)
	assert.Equal(t, models.CategoryHome, crit.Category)
}
