// Package domain – error values.
//
// This file centralizes the registry's error kinds so that they can be
// consistently returned by the engine and checked by callers with errors.Is.
// Translation into HTTP status codes happens at the handler layer; the kind
// itself is the contract surface, not the message text.
package domain

import "errors"

var (
	// ErrUnauthorized indicates the caller lacks the administrator, minter,
	// or owner privilege required by the operation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRecordNotFound indicates a lookup on an id with no owner entry.
	ErrRecordNotFound = errors.New("record does not exist")

	// ErrRecordExists indicates an issuance targeting an already occupied id.
	ErrRecordExists = errors.New("record already exists")

	// ErrNonTransferable indicates a transfer attempt on a record whose
	// category forbids ownership changes.
	ErrNonTransferable = errors.New("record is non-transferable")

	// ErrAlreadyInitialized indicates a second initialization attempt after
	// the administrator has been set.
	ErrAlreadyInitialized = errors.New("registry already initialized")

	// ErrNotInitialized indicates an operation that needs an administrator
	// before one has been configured.
	ErrNotInitialized = errors.New("registry not initialized")

	// ErrAlreadyMinter and ErrNotMinter are reserved: add/remove minter are
	// idempotent and never return them. Kept so callers that want strict
	// semantics have a stable kind to adopt.
	ErrAlreadyMinter = errors.New("principal is already a minter")
	ErrNotMinter     = errors.New("principal is not a minter")

	// ErrInvalidAchievementType is reserved: unknown achievement type tags
	// currently degrade to generic catalog metadata instead of erroring.
	ErrInvalidAchievementType = errors.New("invalid achievement type")
)
