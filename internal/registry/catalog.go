// Achievement catalogs: the fixed name/description/URI triples issued for
// known type tags. Unknown tags degrade to the generic entry of their
// catalog instead of erroring.
package registry

import "github.com/offerhub/go-reputation-registry/internal/domain"

// catalogEntry is one issuable name/description/URI triple.
type catalogEntry struct {
	name        string
	description string
	uri         string
}

func (e catalogEntry) metadata(c domain.Category) domain.Metadata {
	return domain.Metadata{
		Name:        e.name,
		Description: e.description,
		URI:         e.uri,
		Category:    c,
	}
}

// Named achievement tags accepted by MintAchievement.
const (
	TagTenContracts = "tencontr"
	TagFiveStars5x  = "5stars5x"
	TagTopRated     = "toprated"
)

var namedCatalog = map[string]catalogEntry{
	TagTenContracts: {
		name:        "10 Completed Contracts",
		description: "Awarded for completing 10 contracts successfully.",
		uri:         "ipfs://10-completed-contracts",
	},
	TagFiveStars5x: {
		name:        "5 Stars 5 Times",
		description: "Awarded for receiving five 5-star reviews.",
		uri:         "ipfs://5-stars-5-times",
	},
	TagTopRated: {
		name:        "Top Rated Freelancer",
		description: "Awarded for being a top-rated freelancer.",
		uri:         "ipfs://top-rated-freelancer",
	},
}

var namedGeneric = catalogEntry{
	name:        "Special Achievement",
	description: "Awarded for a special achievement.",
	uri:         "ipfs://achievement-generic",
}

func namedAchievement(tag string) catalogEntry {
	if e, ok := namedCatalog[tag]; ok {
		return e
	}
	return namedGeneric
}

// Rating achievement tags accepted by MintRatingAchievement.
const (
	TagFirstFiveStar    = "first_five_star"
	TagTenRatings       = "ten_ratings"
	TagTopRatedPro      = "top_rated_professional"
	TagRatingConsistent = "rating_consistency"
)

var ratingCatalog = map[string]catalogEntry{
	TagFirstFiveStar: {
		name:        "First Five Star Rating",
		description: "Awarded for receiving first 5-star rating",
		uri:         "ipfs://first-five-star",
	},
	TagTenRatings: {
		name:        "Ten Ratings Milestone",
		description: "Awarded for receiving 10 ratings",
		uri:         "ipfs://ten-ratings",
	},
	TagTopRatedPro: {
		name:        "Top Rated Professional",
		description: "Awarded for maintaining excellent ratings",
		uri:         "ipfs://top-rated-pro",
	},
	TagRatingConsistent: {
		name:        "Consistency Master",
		description: "Awarded for consistent high-quality ratings",
		uri:         "ipfs://consistency-master",
	},
}

var ratingGeneric = catalogEntry{
	name:        "Rating Achievement",
	description: "Special rating-based achievement",
	uri:         "ipfs://rating-achievement",
}

func ratingAchievement(tag string) catalogEntry {
	if e, ok := ratingCatalog[tag]; ok {
		return e
	}
	return ratingGeneric
}

// Milestone tags auto-issued by the reputation engine.
const (
	MilestoneTenExcellent = "ten_excellent"
	MilestoneTopRatedPro  = "top_rated_pro"
	MilestoneVeteranPro   = "veteran_pro"
)

var milestoneCatalog = map[string]catalogEntry{
	MilestoneTenExcellent: {
		name:        "Excellence Milestone",
		description: "Awarded for 10+ excellent ratings",
		uri:         "ipfs://excellence-milestone",
	},
	MilestoneTopRatedPro: {
		name:        "Top Rated Professional",
		description: "Awarded for exceptional rating performance",
		uri:         "ipfs://top-rated-professional",
	},
	MilestoneVeteranPro: {
		name:        "Veteran Professional",
		description: "Awarded for long-term excellent performance",
		uri:         "ipfs://veteran-professional",
	},
}
