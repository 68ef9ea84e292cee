package game

import "errors"

// Transaction errors. None of these are fatal: a rejected action leaves
// the published snapshot untouched.
var (
	// ErrInsufficientFunds rejects any purchase the balance cannot cover.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrCapacity rejects actions blocked by a full warehouse, an exhausted
	// facility limit or a full destination.
	ErrCapacity = errors.New("capacity exceeded")

	// ErrPrecondition rejects actions whose prerequisites do not hold:
	// missing warehouse, missing road, non-adjacent countries, locked
	// country, unknown ids.
	ErrPrecondition = errors.New("precondition failed")

	// ErrFacilityWarning is the advisory rejection for unlocking further
	// countries while owning zero production facilities. Distinct from
	// ErrPrecondition so the UI can explain the rule.
	ErrFacilityWarning = errors.New("build a production facility before unlocking more countries")
)
