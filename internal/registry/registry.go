// Package registry implements the achievement registry engine: ownership and
// metadata bookkeeping, role-based authorization, per-owner indices with an
// aggregate leaderboard, and threshold-driven auto-issuance of rating
// milestones. The engine keeps every denormalized view consistent under each
// mutation and persists all state through the key/value substrate in
// internal/store.
//
// The engine assumes the host serializes invocations: each operation is a
// plain read-modify-write sequence with no internal locking. The HTTP layer
// provides that serialization for mutating calls.
package registry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/offerhub/go-reputation-registry/internal/domain"
	"github.com/offerhub/go-reputation-registry/internal/keys"
	"github.com/offerhub/go-reputation-registry/internal/store"
)

// Authenticator is the external caller-identity collaborator. Confirm returns
// nil when principal is the authenticated originator of the current call.
// The engine trusts the answer; it never inspects credentials itself.
type Authenticator interface {
	Confirm(ctx context.Context, principal string) error
}

// TrustAll is an Authenticator that accepts every principal. It is the
// default for embedded use where the transport has already authenticated the
// caller.
type TrustAll struct{}

// Confirm implements Authenticator.
func (TrustAll) Confirm(context.Context, string) error { return nil }

// Registry is the engine facade. Construct it with New; the zero value is
// not usable.
type Registry struct {
	kv   store.KV
	auth Authenticator
	now  func() time.Time
	emit Emitter
}

// Option customizes a Registry at construction time.
type Option func(*Registry)

// WithAuthenticator replaces the caller-identity collaborator.
func WithAuthenticator(a Authenticator) Option { return func(r *Registry) { r.auth = a } }

// WithClock replaces the timestamp source used for reputation records.
func WithClock(now func() time.Time) Option { return func(r *Registry) { r.now = now } }

// WithEmitter replaces the event-emission collaborator.
func WithEmitter(e Emitter) Option { return func(r *Registry) { r.emit = e } }

// New builds a Registry on top of kv. Defaults: TrustAll authenticator,
// time.Now clock, NopEmitter.
func New(kv store.KV, opts ...Option) *Registry {
	r := &Registry{
		kv:   kv,
		auth: TrustAll{},
		now:  time.Now,
		emit: NopEmitter{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mint issues a record with a caller-chosen id to `to` with Standard
// category. It fails with ErrUnauthorized unless caller is the administrator
// or a minter, and with ErrRecordExists when the id is already occupied.
func (r *Registry) Mint(ctx context.Context, caller, to string, id domain.RecordID, name, description, uri string) error {
	if err := r.requireMinter(ctx, caller); err != nil {
		return err
	}
	md := domain.Metadata{
		Name:        name,
		Description: description,
		URI:         uri,
		Category:    domain.CategoryStandard,
	}
	if err := r.issue(ctx, id, to, md); err != nil {
		return err
	}
	if err := r.indexAdd(ctx, to, id); err != nil {
		return err
	}
	if err := r.bumpStat(ctx, domain.CategoryStandard); err != nil {
		return err
	}
	r.emit.Minted(to, id)
	return nil
}

// MintAchievement issues a named ProjectMilestone achievement with an
// auto-assigned id. Unknown type tags fall back to generic catalog metadata
// rather than failing.
func (r *Registry) MintAchievement(ctx context.Context, caller, to, typeTag string) error {
	if err := r.requireMinter(ctx, caller); err != nil {
		return err
	}
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	md := namedAchievement(typeTag).metadata(domain.CategoryProjectMilestone)
	if err := r.issue(ctx, id, to, md); err != nil {
		return err
	}
	if err := r.indexAdd(ctx, to, id); err != nil {
		return err
	}
	if err := r.bumpStat(ctx, domain.CategoryProjectMilestone); err != nil {
		return err
	}
	r.emit.AchievementMinted(to, typeTag, id)
	return nil
}

// MintRatingAchievement issues a rating-based RatingMilestone achievement
// with an auto-assigned id. The extra argument carries opaque rating context
// from the caller and is not interpreted by the engine.
func (r *Registry) MintRatingAchievement(ctx context.Context, caller, to, typeTag, extra string) error {
	_ = extra
	if err := r.requireMinter(ctx, caller); err != nil {
		return err
	}
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	md := ratingAchievement(typeTag).metadata(domain.CategoryRatingMilestone)
	if err := r.issue(ctx, id, to, md); err != nil {
		return err
	}
	if err := r.indexAdd(ctx, to, id); err != nil {
		return err
	}
	if err := r.bumpStat(ctx, domain.CategoryRatingMilestone); err != nil {
		return err
	}
	r.emit.AchievementMinted(to, typeTag, id)
	return nil
}

// BatchMint issues one Standard record per recipient with auto-assigned ids,
// strictly in order. A length mismatch between the argument slices aborts
// before any entry is processed and reports ErrUnauthorized (caller-error
// signaling kept from the wire contract). The batch is NOT atomic: entries
// committed before a storage fault stay committed.
func (r *Registry) BatchMint(ctx context.Context, caller string, tos, names, descriptions, uris []string) error {
	if err := r.requireMinter(ctx, caller); err != nil {
		return err
	}
	n := len(tos)
	if len(names) != n || len(descriptions) != n || len(uris) != n {
		return domain.ErrUnauthorized
	}
	for i := 0; i < n; i++ {
		id, err := r.nextID(ctx)
		if err != nil {
			return err
		}
		md := domain.Metadata{
			Name:        names[i],
			Description: descriptions[i],
			URI:         uris[i],
			Category:    domain.CategoryStandard,
		}
		if err := r.issue(ctx, id, tos[i], md); err != nil {
			return err
		}
		if err := r.indexAdd(ctx, tos[i], id); err != nil {
			return err
		}
		if err := r.bumpStat(ctx, domain.CategoryStandard); err != nil {
			return err
		}
		r.emit.Minted(tos[i], id)
	}
	return nil
}

// Transfer moves record id from `from` to `to`.
//
// Failure modes, in check order:
//   - ErrRecordNotFound when the id has no owner entry
//   - ErrUnauthorized when `from` is not the current owner, or the
//     authentication collaborator does not confirm `from` as the caller
//   - ErrNonTransferable when the record's category forbids transfer
//
// On success the owner entry is overwritten, the id is purged from the old
// owner's index (every occurrence), appended to the new owner's index, and
// both leaderboard entries are recomputed.
func (r *Registry) Transfer(ctx context.Context, from, to string, id domain.RecordID) error {
	owner, err := r.ownerOf(ctx, id)
	if err != nil {
		return err
	}
	if owner != from {
		return domain.ErrUnauthorized
	}
	if err := r.auth.Confirm(ctx, from); err != nil {
		return domain.ErrUnauthorized
	}

	md, err := r.metadataOf(ctx, id)
	if err != nil {
		return err
	}
	if !md.Category.Transferable() {
		return domain.ErrNonTransferable
	}

	if err := r.saveOwner(ctx, id, to); err != nil {
		return err
	}
	if err := r.indexRemove(ctx, from, id); err != nil {
		return err
	}
	if err := r.indexAdd(ctx, to, id); err != nil {
		return err
	}
	if err := r.recomputeLeaderboard(ctx, from); err != nil {
		return err
	}
	if err := r.recomputeLeaderboard(ctx, to); err != nil {
		return err
	}
	r.emit.Transferred(from, to, id)
	return nil
}

// Burn permanently destroys record id. Only the administrator or a minter
// may burn. The previous owner's index is purged before the owner and
// metadata entries are removed; the id is never reissued.
func (r *Registry) Burn(ctx context.Context, caller string, id domain.RecordID) error {
	if err := r.requireMinter(ctx, caller); err != nil {
		return err
	}
	owner, err := r.ownerOf(ctx, id)
	if err != nil {
		return err
	}
	if err := r.indexRemove(ctx, owner, id); err != nil {
		return err
	}
	if err := r.removeRecord(ctx, id); err != nil {
		return err
	}
	r.emit.Burned(owner, id)
	return nil
}

// ReissueMetadata refreshes the name, description, and URI of an existing
// record in place. Ownership and category are untouched; the category is
// immutable for the record's lifetime. Requires mint authorization.
func (r *Registry) ReissueMetadata(ctx context.Context, caller string, id domain.RecordID, name, description, uri string) error {
	if err := r.requireMinter(ctx, caller); err != nil {
		return err
	}
	md, err := r.metadataOf(ctx, id)
	if err != nil {
		return err
	}
	md.Name = name
	md.Description = description
	md.URI = uri
	return r.reissueMetadata(ctx, id, md)
}

// Owner returns the principal owning record id, or ErrRecordNotFound.
func (r *Registry) Owner(ctx context.Context, id domain.RecordID) (string, error) {
	return r.ownerOf(ctx, id)
}

// Metadata returns the metadata of record id, or ErrRecordNotFound.
func (r *Registry) Metadata(ctx context.Context, id domain.RecordID) (domain.Metadata, error) {
	return r.metadataOf(ctx, id)
}

// Record returns the owner and metadata of record id together.
func (r *Registry) Record(ctx context.Context, id domain.RecordID) (domain.Record, error) {
	owner, err := r.ownerOf(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	md, err := r.metadataOf(ctx, id)
	if err != nil {
		return domain.Record{}, err
	}
	return domain.Record{ID: id, Owner: owner, Metadata: md}, nil
}

// --- JSON value codec over the KV substrate ---

// getJSON loads and decodes the value under key into out. ok=false when the
// key is absent; out is left untouched in that case.
func (r *Registry) getJSON(ctx context.Context, key keys.Key, out any) (bool, error) {
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

// setJSON encodes v and stores it under key.
func (r *Registry) setJSON(ctx context.Context, key keys.Key, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, key, raw)
}
