package signals

// Category weight bounds. Weights scale normalized velocity into the
// monetization product and must stay within this range.
const (
	MinCategoryWeight = 0.5
	MaxCategoryWeight = 1.5
)

// categoryWeights maps platform category ids to monetization multipliers.
// The values are fixed constants: changing them changes ranking outcomes,
// so any adjustment must be versioned with the module.
var categoryWeights = map[string]float64{
	"0":  1.0, // All
	"1":  1.0, // Film & Animation
	"2":  1.1, // Autos & Vehicles
	"10": 0.7, // Music
	"17": 0.9, // Sports
	"20": 0.8, // Gaming
	"22": 0.9, // People & Blogs
	"23": 0.8, // Comedy
	"24": 0.9, // Entertainment
	"25": 1.1, // News & Politics
	"26": 1.3, // Howto & Style
	"27": 1.2, // Education
	"28": 1.4, // Science & Technology
}

// categoryLabels maps platform category ids to display names, matching the
// category selector exposed by the request collaborator.
var categoryLabels = map[string]string{
	"0":  "All",
	"1":  "Film & Animation",
	"2":  "Autos & Vehicles",
	"10": "Music",
	"17": "Sports",
	"20": "Gaming",
	"22": "People & Blogs",
	"23": "Comedy",
	"24": "Entertainment",
	"25": "News & Politics",
	"26": "Howto & Style",
	"27": "Education",
	"28": "Science & Technology",
}

// CategoryWeight returns the monetization multiplier for a category id.
// Unknown categories get a neutral 1.0.
func CategoryWeight(categoryID string) float64 {
	if w, ok := categoryWeights[categoryID]; ok {
		return w
	}
	return 1.0
}

// CategoryLabel returns the display name for a category id, or the id
// itself when no label is known.
func CategoryLabel(categoryID string) string {
	if label, ok := categoryLabels[categoryID]; ok {
		return label
	}
	return categoryID
}
