package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/everscale-dev/storefront-api/models"
)

// priceMultiplier rescales remote catalog prices into store currency.
const priceMultiplier = 80.0

// remoteProduct is the shape of the external products endpoint.
type remoteProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

// EnrichFromRemote fetches the supplementary collection once and prepends
// the mapped products. One shot: on any failure the seed collection is left
// untouched and there is no retry.
func (s *Store) EnrichFromRemote(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach product API: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("product API error (%d): %s", resp.StatusCode, string(body))
	}

	var remote []remoteProduct
	if err := json.Unmarshal(body, &remote); err != nil {
		return fmt.Errorf("failed to parse product API response: %v", err)
	}

	mapped := make([]models.Product, 0, len(remote))
	for _, r := range remote {
		mapped = append(mapped, mapRemote(r))
	}
	s.Prepend(mapped)

	log.Printf("✅ Catalog enriched with %d remote products", len(mapped))
	return nil
}

func mapRemote(r remoteProduct) models.Product {
	rating := plausibleRating()
	if r.Rating != nil {
		rating = r.Rating.Rate
	}
	category := mapRemoteCategory(r.Category)
	return models.Product{
		ID:          strconv.Itoa(r.ID),
		Name:        r.Title,
		Category:    category,
		Price:       float64(int(r.Price*priceMultiplier*100)) / 100,
		Rating:      rating,
		Description: r.Description,
		ImageURL:    r.Image,
	}
}

// mapRemoteCategory folds the remote API's free-form categories into the
// fixed store set.
func mapRemoteCategory(remote string) string {
	switch remote {
	case "electronics":
		return models.CategoryElectronics
	case "jewelery", "men's clothing", "women's clothing":
		return models.CategoryFashion
	default:
		if models.ValidCategory(remote) {
			return remote
		}
		return models.CategoryHome
	}
}
