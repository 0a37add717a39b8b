// Package domain defines the core types of the achievement registry: record
// identifiers, categories, metadata, and reputation scores. These types are
// persisted as JSON values in the key/value substrate and returned verbatim
// by the HTTP layer.
package domain

// RecordID uniquely identifies an achievement record. IDs are assigned from a
// persistent counter starting at 1 and are never reused, not even after the
// record is destroyed. 0 is never a valid RecordID.
type RecordID uint64

// Category classifies a record at issuance time. The set is closed and the
// category is immutable for the lifetime of the record; it governs
// transferability and which statistics bucket the issuance is counted in.
type Category string

const (
	// CategoryStandard is a regular record; transferable.
	CategoryStandard Category = "standard"
	// CategoryReputation marks reputation-based records; non-transferable.
	CategoryReputation Category = "reputation"
	// CategoryProjectMilestone marks project milestones; non-transferable.
	CategoryProjectMilestone Category = "project_milestone"
	// CategoryRatingMilestone marks rating milestones (including the ones
	// auto-issued by the reputation engine); non-transferable.
	CategoryRatingMilestone Category = "rating_milestone"
	// CategoryCustomAchievement is a custom achievement; transferable.
	CategoryCustomAchievement Category = "custom_achievement"
)

// Transferable reports whether ownership of a record with this category may
// change hands. Only Standard and CustomAchievement records transfer; every
// other category is soul-bound to the principal it was issued to.
func (c Category) Transferable() bool {
	switch c {
	case CategoryStandard, CategoryCustomAchievement:
		return true
	default:
		return false
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryStandard, CategoryReputation, CategoryProjectMilestone,
		CategoryRatingMilestone, CategoryCustomAchievement:
		return true
	default:
		return false
	}
}

// Metadata is the descriptive payload of a record. It exists iff the owner
// entry exists, and may be overwritten in place without changing ownership.
type Metadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URI         string   `json:"uri"`
	Category    Category `json:"category"`
}

// ReputationScore is the latest tracked reputation snapshot for a principal.
// Each update fully overwrites the previous row. RatingAverage is scaled by
// 100 (a 4.80 average is stored as 480) so threshold rules compare integers.
type ReputationScore struct {
	RatingAverage uint32 `json:"rating_average"`
	TotalRatings  uint32 `json:"total_ratings"`
	UpdatedAt     int64  `json:"updated_at"` // unix seconds, from the clock collaborator
}

// Record bundles a record's owner and metadata for read endpoints.
type Record struct {
	ID       RecordID `json:"id"`
	Owner    string   `json:"owner"`
	Metadata Metadata `json:"metadata"`
}
