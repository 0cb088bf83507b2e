package catalog

import "github.com/dhanamorganics/storefront/internal/models"

func ptr(v float64) *float64 { return &v }

// Seed returns the static catalog the store starts with.
func Seed() []models.Product {
	return []models.Product{
		{
			ID:                    "cold-pressed-sesame-oil",
			Name:                  "Cold Pressed Sesame Oil",
			NameTranslated:        "நல்லெண்ணெய்",
			Price:                 380,
			OriginalPrice:         ptr(450),
			Image:                 "/images/products/sesame-oil.jpg",
			Category:              "Oils",
			Rating:                4.8,
			Description:           "Wood-pressed sesame oil extracted the traditional way, rich in natural antioxidants.",
			DescriptionTranslated: "மரச்செக்கில் ஆட்டிய நல்லெண்ணெய்",
			Ingredients:           []string{"Organic sesame seeds"},
			IsOrganic:             true,
		},
		{
			ID:                    "country-sugar",
			Name:                  "Country Sugar",
			NameTranslated:        "நாட்டுச் சர்க்கரை",
			Price:                 120,
			Image:                 "/images/products/country-sugar.jpg",
			Category:              "Sweeteners",
			Rating:                4.6,
			Description:           "Unrefined cane sugar with its minerals intact, a wholesome alternative to white sugar.",
			DescriptionTranslated: "சுத்திகரிக்கப்படாத நாட்டுச் சர்க்கரை",
			Ingredients:           []string{"Sugarcane juice"},
			IsOrganic:             true,
		},
		{
			ID:                    "palm-jaggery",
			Name:                  "Palm Jaggery",
			NameTranslated:        "கருப்பட்டி",
			Price:                 260,
			OriginalPrice:         ptr(300),
			Image:                 "/images/products/palm-jaggery.jpg",
			Category:              "Sweeteners",
			Rating:                4.9,
			Description:           "Karupatti made from palm sap, slow-cooked in small batches.",
			DescriptionTranslated: "பனை வெல்லத்தில் செய்த கருப்பட்டி",
			Ingredients:           []string{"Palmyra palm sap"},
			IsOrganic:             true,
		},
		{
			ID:                    "turmeric-powder",
			Name:                  "Turmeric Powder",
			NameTranslated:        "மஞ்சள் தூள்",
			Price:                 95,
			Image:                 "/images/products/turmeric.jpg",
			Category:              "Spices",
			Rating:                4.7,
			Description:           "Sun-dried Erode turmeric, stone-ground to preserve its curcumin.",
			DescriptionTranslated: "ஈரோடு மஞ்சள் தூள்",
			Ingredients:           []string{"Organic turmeric rhizomes"},
			IsOrganic:             true,
		},
		{
			ID:                    "moringa-powder",
			Name:                  "Moringa Leaf Powder",
			NameTranslated:        "முருங்கை இலை பொடி",
			Price:                 180,
			Image:                 "/images/products/moringa.jpg",
			Category:              "Health Mixes",
			Rating:                4.5,
			Description:           "Shade-dried moringa leaves, powdered fresh every week.",
			DescriptionTranslated: "நிழலில் உலர்த்திய முருங்கை இலை",
			Ingredients:           []string{"Moringa leaves"},
			IsOrganic:             true,
		},
		{
			ID:                    "red-rice",
			Name:                  "Traditional Red Rice",
			NameTranslated:        "சிவப்பு அரிசி",
			Price:                 140,
			Image:                 "/images/products/red-rice.jpg",
			Category:              "Grains",
			Rating:                4.6,
			Description:           "Heirloom red rice grown without chemical fertilizers, hand-pounded.",
			DescriptionTranslated: "பாரம்பரிய சிவப்பு அரிசி",
			Ingredients:           []string{"Red rice paddy"},
			IsOrganic:             true,
		},
		{
			ID:                    "forest-honey",
			Name:                  "Wild Forest Honey",
			NameTranslated:        "காட்டுத் தேன்",
			Price:                 420,
			OriginalPrice:         ptr(480),
			Image:                 "/images/products/forest-honey.jpg",
			Category:              "Health Mixes",
			Rating:                4.9,
			Description:           "Raw, unfiltered honey collected from forest hives in the Western Ghats.",
			DescriptionTranslated: "மேற்குத் தொடர்ச்சி மலை காட்டுத் தேன்",
			Ingredients:           []string{"Wild honey"},
			IsOrganic:             true,
		},
		{
			ID:                    "desi-ghee",
			Name:                  "Desi Cow Ghee",
			NameTranslated:        "நாட்டு பசு நெய்",
			Price:                 650,
			Image:                 "/images/products/ghee.jpg",
			Category:              "Dairy",
			Rating:                4.8,
			Description:           "Bilona-method ghee from grass-fed country cows, churned from curd.",
			DescriptionTranslated: "நாட்டு பசும்பால் நெய்",
			Ingredients:           []string{"Cow milk curd"},
			IsOrganic:             true,
		},
	}
}
