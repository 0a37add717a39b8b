// Achievement index & leaderboard.
//
// Three denormalized views live here:
//   - per-owner ordered record-id lists (insertion order, append-only adds)
//   - category → issuance counters (monotonic, never decremented, not even
//     on burn: a historical audit count, not a live-ownership count)
//   - owner → leaderboard value, a snapshot of the index length taken only
//     when a mutation explicitly asks for a recompute. Plain issuance does
//     not refresh it; transfer and reputation updates do.
package registry

import (
	"context"

	"github.com/offerhub/go-reputation-registry/internal/domain"
	"github.com/offerhub/go-reputation-registry/internal/keys"
)

// indexAdd appends id to owner's index list. Append-only semantics: calling
// it twice for one id produces a duplicate entry, which indexRemove purges
// wholesale.
func (r *Registry) indexAdd(ctx context.Context, owner string, id domain.RecordID) error {
	key := keys.ForPrincipal(keys.NSUserIndex, owner)
	var list []domain.RecordID
	if _, err := r.getJSON(ctx, key, &list); err != nil {
		return err
	}
	list = append(list, id)
	return r.setJSON(ctx, key, list)
}

// indexRemove rebuilds owner's index list excluding every occurrence of id.
func (r *Registry) indexRemove(ctx context.Context, owner string, id domain.RecordID) error {
	key := keys.ForPrincipal(keys.NSUserIndex, owner)
	var list []domain.RecordID
	ok, err := r.getJSON(ctx, key, &list)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	kept := make([]domain.RecordID, 0, len(list))
	for _, v := range list {
		if v != id {
			kept = append(kept, v)
		}
	}
	return r.setJSON(ctx, key, kept)
}

// UserRecords returns the ordered record ids currently attributed to owner.
// A principal that was never indexed yields an empty slice, not an error.
func (r *Registry) UserRecords(ctx context.Context, owner string) ([]domain.RecordID, error) {
	var list []domain.RecordID
	if _, err := r.getJSON(ctx, keys.ForPrincipal(keys.NSUserIndex, owner), &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.RecordID{}
	}
	return list, nil
}

// bumpStat increments the issuance counter for category by one.
func (r *Registry) bumpStat(ctx context.Context, category domain.Category) error {
	key := keys.Singleton(keys.NSStats)
	stats := make(map[domain.Category]uint64)
	if _, err := r.getJSON(ctx, key, &stats); err != nil {
		return err
	}
	stats[category]++
	return r.setJSON(ctx, key, stats)
}

// Stats returns the category → issuance count mapping. Categories with no
// issuances are absent from the map.
func (r *Registry) Stats(ctx context.Context) (map[domain.Category]uint64, error) {
	stats := make(map[domain.Category]uint64)
	if _, err := r.getJSON(ctx, keys.Singleton(keys.NSStats), &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// recomputeLeaderboard snapshots owner's current index length into the
// leaderboard. Callers decide when the leaderboard is allowed to go fresh;
// the view is stale by design between recomputations.
func (r *Registry) recomputeLeaderboard(ctx context.Context, owner string) error {
	list, err := r.UserRecords(ctx, owner)
	if err != nil {
		return err
	}
	key := keys.Singleton(keys.NSLeaderboard)
	lb := make(map[string]uint64)
	if _, err := r.getJSON(ctx, key, &lb); err != nil {
		return err
	}
	lb[owner] = uint64(len(list))
	return r.setJSON(ctx, key, lb)
}

// Leaderboard returns the principal → count mapping as of each principal's
// last recomputation.
func (r *Registry) Leaderboard(ctx context.Context) (map[string]uint64, error) {
	lb := make(map[string]uint64)
	if _, err := r.getJSON(ctx, keys.Singleton(keys.NSLeaderboard), &lb); err != nil {
		return nil, err
	}
	return lb, nil
}

// Rank returns owner's 1-based rank: 1 plus the number of principals whose
// leaderboard value strictly exceeds owner's. Ties share a rank; a principal
// absent from the leaderboard compares as 0 and still receives a rank.
func (r *Registry) Rank(ctx context.Context, owner string) (uint64, error) {
	lb, err := r.Leaderboard(ctx)
	if err != nil {
		return 0, err
	}
	score := lb[owner]
	rank := uint64(1)
	for _, v := range lb {
		if v > score {
			rank++
		}
	}
	return rank, nil
}
