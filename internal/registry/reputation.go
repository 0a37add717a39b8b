// Reputation tracking & auto-issuance.
//
// UpdateScore overwrites the subject's reputation snapshot, then evaluates
// three independent threshold rules against the NEW values and auto-issues a
// RatingMilestone record for every rule that matches. The rules carry no
// "already awarded" guard: a repeated call with total_ratings == 10 re-fires
// rule one every time. That non-idempotence is observed source behavior and
// is kept deliberately (see DESIGN.md); tests document the double award.
package registry

import (
	"context"

	"github.com/offerhub/go-reputation-registry/internal/domain"
	"github.com/offerhub/go-reputation-registry/internal/keys"
)

// UpdateScore stores the subject's latest reputation values (stamped with
// the clock collaborator), drives milestone auto-issuance, and finally
// recomputes the subject's leaderboard entry. Requires mint authorization
// for caller. ratingAverage is scaled by 100 (480 = 4.80 stars).
func (r *Registry) UpdateScore(ctx context.Context, caller, subject string, ratingAverage, totalRatings uint32) error {
	if err := r.requireMinter(ctx, caller); err != nil {
		return err
	}

	score := domain.ReputationScore{
		RatingAverage: ratingAverage,
		TotalRatings:  totalRatings,
		UpdatedAt:     r.now().UTC().Unix(),
	}
	if err := r.setJSON(ctx, keys.ForPrincipal(keys.NSReputation, subject), score); err != nil {
		return err
	}

	if err := r.awardMilestones(ctx, subject, ratingAverage, totalRatings); err != nil {
		return err
	}

	return r.recomputeLeaderboard(ctx, subject)
}

// Score returns the stored reputation snapshot for p. ok=false when the
// principal has never been scored.
func (r *Registry) Score(ctx context.Context, p string) (domain.ReputationScore, bool, error) {
	var score domain.ReputationScore
	ok, err := r.getJSON(ctx, keys.ForPrincipal(keys.NSReputation, p), &score)
	if err != nil {
		return domain.ReputationScore{}, false, err
	}
	return score, ok, nil
}

// awardMilestones evaluates the threshold rules. The rules are independent
// and non-exclusive: a single update can issue zero, one, two, or all three
// milestones. Rule one compares the count with strict equality, so it only
// fires while total_ratings is exactly 10.
func (r *Registry) awardMilestones(ctx context.Context, subject string, ratingAverage, totalRatings uint32) error {
	if totalRatings == 10 && ratingAverage >= 400 {
		if err := r.mintMilestone(ctx, subject, MilestoneTenExcellent); err != nil {
			return err
		}
	}
	if ratingAverage >= 480 && totalRatings >= 20 {
		if err := r.mintMilestone(ctx, subject, MilestoneTopRatedPro); err != nil {
			return err
		}
	}
	if totalRatings >= 50 && ratingAverage >= 450 {
		if err := r.mintMilestone(ctx, subject, MilestoneVeteranPro); err != nil {
			return err
		}
	}
	return nil
}

// mintMilestone issues one auto-id RatingMilestone record from the milestone
// catalog. Unknown milestone tags are skipped silently.
func (r *Registry) mintMilestone(ctx context.Context, subject, tag string) error {
	entry, ok := milestoneCatalog[tag]
	if !ok {
		return nil
	}
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	if err := r.issue(ctx, id, subject, entry.metadata(domain.CategoryRatingMilestone)); err != nil {
		return err
	}
	if err := r.indexAdd(ctx, subject, id); err != nil {
		return err
	}
	if err := r.bumpStat(ctx, domain.CategoryRatingMilestone); err != nil {
		return err
	}
	r.emit.Minted(subject, id)
	return nil
}
