package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every service error wraps exactly one of these so handlers
// can pick a status code with errors.Is without matching message strings.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvariant       = errors.New("invariant violated")
)

var (
	ErrCartNotFound     = fmt.Errorf("%w: cart", ErrNotFound)
	ErrCartItemNotFound = fmt.Errorf("%w: cart item", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("%w: product", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("%w: user", ErrNotFound)

	ErrActiveCartExists  = fmt.Errorf("%w: user already has an active cart", ErrConflict)
	ErrNotProductOwner   = fmt.Errorf("%w: user does not own this product", ErrConflict)
	ErrInsufficientStock = fmt.Errorf("%w: insufficient stock", ErrConflict)

	ErrInvalidQuantity       = fmt.Errorf("%w: quantity must be a positive integer", ErrInvalidArgument)
	ErrRemoveExceedsQuantity = fmt.Errorf("%w: cannot remove more than the cart holds", ErrInvalidArgument)

	// A user who has interacted with the cart engine always owns at least
	// one cart, so an empty history is a consistency failure, not a 404.
	ErrUserHasNoCarts = fmt.Errorf("%w: user has no carts", ErrInvariant)
)
