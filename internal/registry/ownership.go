// Ownership & metadata store: record-id → owner, record-id → metadata, and
// the persistent id counter. A record exists iff its owner entry exists;
// every creation writes metadata before the owner entry and every removal
// deletes the owner entry before the metadata, so a fault mid-pair never
// yields an owned record without metadata.
package registry

import (
	"context"

	"github.com/offerhub/go-reputation-registry/internal/domain"
	"github.com/offerhub/go-reputation-registry/internal/keys"
)

// nextID reads the persistent counter, increments it, persists the new
// value, and returns it. The first id is 1; 0 is never returned.
func (r *Registry) nextID(ctx context.Context) (domain.RecordID, error) {
	key := keys.Singleton(keys.NSCounter)
	var counter uint64
	if _, err := r.getJSON(ctx, key, &counter); err != nil {
		return 0, err
	}
	counter++
	if err := r.setJSON(ctx, key, counter); err != nil {
		return 0, err
	}
	return domain.RecordID(counter), nil
}

// issue writes the owner/metadata pair for a new record. It fails with
// ErrRecordExists when an owner entry for id is already present. Re-issuing
// metadata for an id whose creation half-failed overwrites the stale value.
func (r *Registry) issue(ctx context.Context, id domain.RecordID, owner string, md domain.Metadata) error {
	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrRecordExists
	}
	if err := r.saveMetadata(ctx, id, md); err != nil {
		return err
	}
	return r.saveOwner(ctx, id, owner)
}

// reissueMetadata overwrites the metadata of an existing record without
// touching ownership. The caller is responsible for any existence check.
func (r *Registry) reissueMetadata(ctx context.Context, id domain.RecordID, md domain.Metadata) error {
	return r.saveMetadata(ctx, id, md)
}

// exists reports whether an owner entry is present for id.
func (r *Registry) exists(ctx context.Context, id domain.RecordID) (bool, error) {
	return r.kv.Has(ctx, keys.ForID(keys.NSOwner, uint64(id)))
}

// ownerOf returns the owner of id, or ErrRecordNotFound.
func (r *Registry) ownerOf(ctx context.Context, id domain.RecordID) (string, error) {
	var owner string
	ok, err := r.getJSON(ctx, keys.ForID(keys.NSOwner, uint64(id)), &owner)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrRecordNotFound
	}
	return owner, nil
}

// metadataOf returns the metadata of id, or ErrRecordNotFound.
func (r *Registry) metadataOf(ctx context.Context, id domain.RecordID) (domain.Metadata, error) {
	var md domain.Metadata
	ok, err := r.getJSON(ctx, keys.ForID(keys.NSMetadata, uint64(id)), &md)
	if err != nil {
		return domain.Metadata{}, err
	}
	if !ok {
		return domain.Metadata{}, domain.ErrRecordNotFound
	}
	return md, nil
}

// saveOwner overwrites the owner entry for id. Used by issuance and by
// transfer (unconditional overwrite).
func (r *Registry) saveOwner(ctx context.Context, id domain.RecordID, owner string) error {
	return r.setJSON(ctx, keys.ForID(keys.NSOwner, uint64(id)), owner)
}

// saveMetadata overwrites the metadata entry for id.
func (r *Registry) saveMetadata(ctx context.Context, id domain.RecordID, md domain.Metadata) error {
	return r.setJSON(ctx, keys.ForID(keys.NSMetadata, uint64(id)), md)
}

// removeRecord deletes both halves of the record pair, owner entry first.
func (r *Registry) removeRecord(ctx context.Context, id domain.RecordID) error {
	if err := r.kv.Remove(ctx, keys.ForID(keys.NSOwner, uint64(id))); err != nil {
		return err
	}
	return r.kv.Remove(ctx, keys.ForID(keys.NSMetadata, uint64(id)))
}
