package registry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/offerhub/go-reputation-registry/internal/domain"
)

func fixedClock(sec int64) func() time.Time {
	return func() time.Time { return time.Unix(sec, 0).UTC() }
}

func TestUpdateScore_RequiresMintAuthorization(t *testing.T) {
	r := newTestRegistry(t)
	err := r.UpdateScore(context.Background(), "rando", "u1", 400, 10)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateScore_OverwritesSnapshot(t *testing.T) {
	r := newTestRegistry(t, WithClock(fixedClock(1000)))
	ctx := context.Background()

	if err := r.UpdateScore(ctx, "admin", "u1", 350, 4); err != nil {
		t.Fatalf("update: %v", err)
	}
	score, ok, err := r.Score(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("Score: ok=%v err=%v", ok, err)
	}
	if score.RatingAverage != 350 || score.TotalRatings != 4 || score.UpdatedAt != 1000 {
		t.Fatalf("score = %+v", score)
	}

	if err := r.UpdateScore(ctx, "admin", "u1", 420, 5); err != nil {
		t.Fatalf("update: %v", err)
	}
	score, _, _ = r.Score(ctx, "u1")
	if score.RatingAverage != 420 || score.TotalRatings != 5 {
		t.Fatalf("snapshot not fully overwritten: %+v", score)
	}
}

func TestScore_NeverTracked(t *testing.T) {
	r := newTestRegistry(t)
	_, ok, err := r.Score(context.Background(), "nobody")
	if err != nil || ok {
		t.Fatalf("Score(nobody) = ok=%v err=%v, want absent", ok, err)
	}
}

func TestUpdateScore_NoRuleMatches(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	if err := r.UpdateScore(ctx, "admin", "u1", 399, 10); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, _ := r.UserRecords(ctx, "u1")
	if len(list) != 0 {
		t.Fatalf("milestones issued below threshold: %v", list)
	}
	// The leaderboard entry is still recomputed.
	lb, _ := r.Leaderboard(ctx)
	if v, present := lb["u1"]; !present || v != 0 {
		t.Fatalf("leaderboard = %v, want u1 present at 0", lb)
	}
}

func TestUpdateScore_SingleRule(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	// Exactly rule one: count == 10, average >= 400.
	if err := r.UpdateScore(ctx, "admin", "u1", 400, 10); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, _ := r.UserRecords(ctx, "u1")
	if len(list) != 1 {
		t.Fatalf("records = %v, want exactly one milestone", list)
	}
	md, _ := r.Metadata(ctx, list[0])
	if md.Category != domain.CategoryRatingMilestone || md.Name != "Excellence Milestone" {
		t.Fatalf("metadata = %+v", md)
	}
	lb, _ := r.Leaderboard(ctx)
	if lb["u1"] != 1 {
		t.Fatalf("leaderboard = %v", lb)
	}
}

func TestUpdateScore_RulesAreIndependent(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	// average 480, count 50: rules two and three match, rule one does not.
	if err := r.UpdateScore(ctx, "admin", "u1", 480, 50); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, _ := r.UserRecords(ctx, "u1")
	if len(list) != 2 {
		t.Fatalf("records = %v, want two milestones", list)
	}
	names := map[string]bool{}
	for _, id := range list {
		md, _ := r.Metadata(ctx, id)
		names[md.Name] = true
	}
	if !names["Top Rated Professional"] || !names["Veteran Professional"] {
		t.Fatalf("milestones = %v", names)
	}
}

func TestUpdateScore_RepeatReFires(t *testing.T) {
	// Documented non-idempotence: identical arguments with count == 10
	// award the milestone again on every call.
	r := newTestRegistry(t)
	ctx := context.Background()

	if err := r.UpdateScore(ctx, "admin", "u1", 400, 10); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if err := r.UpdateScore(ctx, "admin", "u1", 400, 10); err != nil {
		t.Fatalf("second update: %v", err)
	}
	list, _ := r.UserRecords(ctx, "u1")
	if len(list) != 2 {
		t.Fatalf("records = %v, want two (double-issued) milestones", list)
	}
	if list[0] == list[1] {
		t.Fatalf("double issue reused an id: %v", list)
	}
	stats, _ := r.Stats(ctx)
	if stats[domain.CategoryRatingMilestone] != 2 {
		t.Fatalf("stats = %v", stats)
	}
}

func TestUpdateScore_MinterCanDrive(t *testing.T) {
	r := newTestRegistry(t)
	ctx := context.Background()

	if err := r.AddMinter(ctx, "admin", "oracle"); err != nil {
		t.Fatalf("add minter: %v", err)
	}
	if err := r.UpdateScore(ctx, "oracle", "u1", 500, 20); err != nil {
		t.Fatalf("minter update: %v", err)
	}
	list, _ := r.UserRecords(ctx, "u1")
	if len(list) != 1 {
		t.Fatalf("records = %v, want one (rule two) milestone", list)
	}
}
