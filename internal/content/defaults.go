package content

import "github.com/dhanamorganics/storefront/internal/models"

// Defaults returns the editable page sections the store is seeded with.
func Defaults() []models.ContentSection {
	return []models.ContentSection{
		{
			ID:    "hero",
			Label: "Hero Section",
			Fields: []models.ContentField{
				{Key: "badge", Label: "Badge Text", Value: "100% Certified Organic"},
				{Key: "title1", Label: "Title Line 1", Value: "Pure & Natural"},
				{Key: "title2", Label: "Title Line 2 (Highlight)", Value: "Traditional Foods"},
				{Key: "title3", Label: "Title Line 3", Value: "For Your Health"},
				{Key: "tamilText", Label: "Tamil Tagline", Value: "பாரம்பரிய உணவை நோக்கிய பயணம்"},
				{Key: "description", Label: "Description", Value: "Discover the finest organic produce from Dhanam Organics. Pure, fresh, and delivered with care to nourish your family with traditional goodness."},
			},
		},
		{
			ID:    "about",
			Label: "About Section",
			Fields: []models.ContentField{
				{Key: "subtitle", Label: "Subtitle", Value: "Our Story"},
				{Key: "title1", Label: "Title Line 1", Value: "Rooted in Tradition,"},
				{Key: "title2", Label: "Title Line 2 (Highlight)", Value: "Grown with Love"},
				{Key: "since", Label: "Since Year", Value: "Since 2018"},
				{Key: "heading", Label: "Section Heading", Value: "From Our Farms to Your Family's Table"},
			},
		},
		{
			ID:    "newsletter",
			Label: "Newsletter Section",
			Fields: []models.ContentField{
				{Key: "title", Label: "Title", Value: "Join Dhanam Family"},
				{Key: "description", Label: "Description", Value: "Subscribe to receive exclusive offers, traditional recipes, and 15% off your first order"},
				{Key: "disclaimer", Label: "Disclaimer", Value: "No spam, unsubscribe anytime. We respect your privacy."},
			},
		},
		{
			ID:    "footer",
			Label: "Footer",
			Fields: []models.ContentField{
				{Key: "brandName", Label: "Brand Name", Value: "Dhanam Organics"},
				{Key: "tamilTagline", Label: "Tamil Tagline", Value: "பாரம்பரிய உணவை நோக்கிய பயணம்"},
				{Key: "description", Label: "Description", Value: "Bringing nature's finest organic produce from sustainable farms directly to your doorstep. A journey towards traditional food."},
				{Key: "copyright", Label: "Copyright", Value: "© 2026 Dhanam Organics. All rights reserved."},
			},
		},
	}
}
