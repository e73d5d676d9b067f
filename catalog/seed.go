package catalog

import (
	"fmt"
	"math/rand"

	"github.com/everscale-dev/storefront-api/models"
)

// seedCount is fixed: the seed collection always has the same shape, only
// price/rating/image vary run to run.
const seedCount = 12

var seedNames = []struct {
	name     string
	category string
	desc     string
}{
	{"Wireless Headphones", models.CategoryElectronics, "Noise-cancelling over-ear headphones with 24-hour battery life."},
	{"Smartwatch", models.CategoryElectronics, "Track your fitness, heart rate, and notifications from your wrist."},
	{"Mechanical Keyboard", models.CategoryElectronics, "Tactile switches and customizable RGB backlighting."},
	{"4K Monitor", models.CategoryElectronics, "27-inch UHD display with vibrant colors and high refresh rate."},
	{"Running Shoes", models.CategorySports, "Lightweight trainers with responsive cushioning."},
	{"Yoga Mat", models.CategorySports, "Non-slip mat with alignment guides."},
	{"Denim Jacket", models.CategoryFashion, "Classic fit jacket in washed indigo."},
	{"Leather Wallet", models.CategoryFashion, "Slim bifold wallet with RFID blocking."},
	{"Ceramic Mug Set", models.CategoryHome, "Set of four stoneware mugs, dishwasher safe."},
	{"Desk Lamp", models.CategoryHome, "Adjustable LED lamp with three color temperatures."},
	{"Sci-Fi Anthology", models.CategoryBooks, "Twelve award-winning short stories in one volume."},
	{"Cookbook: Weeknights", models.CategoryBooks, "Ninety dinners you can cook in under thirty minutes."},
}

// Seed builds the startup collection: stable count and names, pseudo-random
// price, rating and image per entry.
func Seed() []models.Product {
	products := make([]models.Product, 0, seedCount)
	for i, s := range seedNames[:seedCount] {
		price := 10 + rand.Float64()*490 // 10.00 .. 500.00
		products = append(products, models.Product{
			ID:          fmt.Sprintf("seed-%d", i+1),
			Name:        s.name,
			Category:    s.category,
			Price:       float64(int(price*100)) / 100,
			Rating:      plausibleRating(),
			Description: s.desc,
			ImageURL:    fmt.Sprintf("https://placehold.co/400x300?text=%s&n=%d", s.category, rand.Intn(1000)),
		})
	}
	return products
}

// plausibleRating picks a believable rating in [3.5, 5.0].
func plausibleRating() float64 {
	r := 3.5 + rand.Float64()*1.5
	return float64(int(r*10)) / 10
}
