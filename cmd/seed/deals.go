package main

import (
	"time"

	"dealwish-backend/models"
)

const day = 24 * time.Hour

// sampleDeals returns the demo catalogue. Expiry dates are relative to now so
// a fresh seed always has a mix of live, disabled and expired deals.
func sampleDeals(now time.Time) []*models.Deal {
	in := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}
	img := func(s string) *string { return &s }

	return []*models.Deal{
		{
			Title:              "Sony WH-1000XM5 Wireless Noise Cancelling Headphones",
			Description:        "Industry-leading noise cancellation with premium sound quality. 30-hour battery life and multipoint connection.",
			OriginalPrice:      "399.99",
			CurrentPrice:       "279.99",
			DiscountPercentage: 30,
			ImageURL:           img("https://images.unsplash.com/photo-1546435770-a3e426bf472b?w=800"),
			MerchantName:       "Amazon",
			MerchantURL:        "https://amazon.com",
			Category:           "Electronics",
			IsActive:           true,
			ExpiresAt:          in(7 * day),
		},
		{
			Title:              "Apple MacBook Air M2 13-inch",
			Description:        "Supercharged by M2 chip. 8-core CPU, 10-core GPU, 16GB RAM, 512GB SSD. Stunning Retina display.",
			OriginalPrice:      "1499.99",
			CurrentPrice:       "1099.99",
			DiscountPercentage: 27,
			ImageURL:           img("https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=800"),
			MerchantName:       "Best Buy",
			MerchantURL:        "https://bestbuy.com",
			Category:           "Electronics",
			IsActive:           true,
			ExpiresAt:          in(5 * day),
		},
		{
			Title:              "Nike Air Max 270 Running Shoes",
			Description:        "Comfortable cushioning meets bold style. Max Air unit provides exceptional impact absorption.",
			OriginalPrice:      "150.00",
			CurrentPrice:       "89.99",
			DiscountPercentage: 40,
			ImageURL:           img("https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800"),
			MerchantName:       "Nike",
			MerchantURL:        "https://nike.com",
			Category:           "Fashion",
			IsActive:           true,
			ExpiresAt:          in(3 * day),
		},
		{
			Title:              `Samsung 65" QLED 4K Smart TV`,
			Description:        "Quantum Dot technology delivers stunning color and brightness. Smart TV with built-in Alexa.",
			OriginalPrice:      "1299.99",
			CurrentPrice:       "899.99",
			DiscountPercentage: 31,
			ImageURL:           img("https://images.unsplash.com/photo-1593359677879-a4bb92f829d1?w=800"),
			MerchantName:       "Target",
			MerchantURL:        "https://target.com",
			Category:           "Electronics",
			IsActive:           true,
			ExpiresAt:          in(10 * day),
		},
		{
			Title:              "Dyson V15 Detect Cordless Vacuum",
			Description:        "Powerful suction with laser detect technology. Up to 60 minutes of runtime.",
			OriginalPrice:      "749.99",
			CurrentPrice:       "549.99",
			DiscountPercentage: 27,
			ImageURL:           img("https://images.unsplash.com/photo-1558317374-067fb5f30001?w=800"),
			MerchantName:       "Dyson",
			MerchantURL:        "https://dyson.com",
			Category:           "Home & Garden",
			IsActive:           true,
			ExpiresAt:          in(14 * day),
		},
		{
			Title:              "Instant Pot Duo 7-in-1 Electric Pressure Cooker",
			Description:        "6 Quart capacity. Pressure cooker, slow cooker, rice cooker, steamer, and more.",
			OriginalPrice:      "119.99",
			CurrentPrice:       "69.99",
			DiscountPercentage: 42,
			ImageURL:           img("https://images.unsplash.com/photo-1585515320310-259814833e62?w=800"),
			MerchantName:       "Walmart",
			MerchantURL:        "https://walmart.com",
			Category:           "Home & Kitchen",
			IsActive:           false,
		},
		{
			Title:              "Levi's 501 Original Fit Jeans",
			Description:        "Classic straight fit jeans. Authentic style that never goes out of fashion.",
			OriginalPrice:      "69.99",
			CurrentPrice:       "39.99",
			DiscountPercentage: 43,
			ImageURL:           img("https://images.unsplash.com/photo-1542272604-787c3835535d?w=800"),
			MerchantName:       "Levi's",
			MerchantURL:        "https://levis.com",
			Category:           "Fashion",
			IsActive:           true,
			IsExpired:          true,
			ExpiresAt:          in(-2 * day),
		},
		{
			Title:              "KitchenAid Stand Mixer",
			Description:        "5 Quart capacity with 10 speeds. Includes dough hook, flat beater, and wire whip.",
			OriginalPrice:      "449.99",
			CurrentPrice:       "299.99",
			DiscountPercentage: 33,
			ImageURL:           img("https://images.unsplash.com/photo-1578269174936-2709b6aeb913?w=800"),
			MerchantName:       "Williams Sonoma",
			MerchantURL:        "https://williams-sonoma.com",
			Category:           "Home & Kitchen",
			IsActive:           true,
			ExpiresAt:          in(20 * day),
		},
	}
}
