// Authorization gate: the single administrator principal and the minter set.
//
// The administrator bypass is a deliberate design rule: the administrator
// always passes minter checks, even when absent from the minter set.
// Add/remove minter are idempotent; strict AlreadyMinter/NotMinter kinds
// exist in the domain package but are not enforced here.
package registry

import (
	"context"
	"errors"

	"github.com/offerhub/go-reputation-registry/internal/domain"
	"github.com/offerhub/go-reputation-registry/internal/keys"
)

// Init sets the administrator principal. It may be called exactly once;
// a second call returns ErrAlreadyInitialized regardless of the caller.
func (r *Registry) Init(ctx context.Context, admin string) error {
	key := keys.Singleton(keys.NSAdmin)
	ok, err := r.kv.Has(ctx, key)
	if err != nil {
		return err
	}
	if ok {
		return domain.ErrAlreadyInitialized
	}
	return r.setJSON(ctx, key, admin)
}

// Initialized reports whether an administrator has been configured.
func (r *Registry) Initialized(ctx context.Context) (bool, error) {
	return r.kv.Has(ctx, keys.Singleton(keys.NSAdmin))
}

// Admin returns the current administrator, or ErrNotInitialized.
func (r *Registry) Admin(ctx context.Context) (string, error) {
	var admin string
	ok, err := r.getJSON(ctx, keys.Singleton(keys.NSAdmin), &admin)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrNotInitialized
	}
	return admin, nil
}

// IsAdmin reports whether p is the administrator. An uninitialized registry
// has no administrator, so every principal fails the check.
func (r *Registry) IsAdmin(ctx context.Context, p string) (bool, error) {
	admin, err := r.Admin(ctx)
	if errors.Is(err, domain.ErrNotInitialized) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return admin == p, nil
}

// IsMinter reports whether p is in the minter set. The administrator is NOT
// implicitly reported here; the bypass applies to authorization checks, not
// to set membership.
func (r *Registry) IsMinter(ctx context.Context, p string) (bool, error) {
	minters, err := r.minters(ctx)
	if err != nil {
		return false, err
	}
	return minters[p], nil
}

// AddMinter adds target to the minter set. Administrator only. Adding an
// existing minter is a no-op.
func (r *Registry) AddMinter(ctx context.Context, caller, target string) error {
	if err := r.requireAdmin(ctx, caller); err != nil {
		return err
	}
	minters, err := r.minters(ctx)
	if err != nil {
		return err
	}
	minters[target] = true
	return r.setJSON(ctx, keys.Singleton(keys.NSMinters), minters)
}

// RemoveMinter removes target from the minter set. Administrator only.
// Removing an absent minter is a no-op.
func (r *Registry) RemoveMinter(ctx context.Context, caller, target string) error {
	if err := r.requireAdmin(ctx, caller); err != nil {
		return err
	}
	minters, err := r.minters(ctx)
	if err != nil {
		return err
	}
	delete(minters, target)
	return r.setJSON(ctx, keys.Singleton(keys.NSMinters), minters)
}

// TransferAdmin replaces the administrator. Administrator only. The previous
// administrator keeps nothing: the value is a single overwritten slot.
func (r *Registry) TransferAdmin(ctx context.Context, caller, newAdmin string) error {
	if err := r.requireAdmin(ctx, caller); err != nil {
		return err
	}
	return r.setJSON(ctx, keys.Singleton(keys.NSAdmin), newAdmin)
}

// requireAdmin fails with ErrUnauthorized unless caller is the administrator.
func (r *Registry) requireAdmin(ctx context.Context, caller string) error {
	ok, err := r.IsAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnauthorized
	}
	return nil
}

// requireMinter fails with ErrUnauthorized unless caller is the
// administrator or a registered minter.
func (r *Registry) requireMinter(ctx context.Context, caller string) error {
	if ok, err := r.IsAdmin(ctx, caller); err != nil {
		return err
	} else if ok {
		return nil
	}
	if ok, err := r.IsMinter(ctx, caller); err != nil {
		return err
	} else if ok {
		return nil
	}
	return domain.ErrUnauthorized
}

// minters loads the minter set, defaulting to an empty set.
func (r *Registry) minters(ctx context.Context) (map[string]bool, error) {
	m := make(map[string]bool)
	if _, err := r.getJSON(ctx, keys.Singleton(keys.NSMinters), &m); err != nil {
		return nil, err
	}
	return m, nil
}
