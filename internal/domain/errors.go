package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Spend errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Identifier errors
	ErrMsgUnknownUpgrade = "unknown upgrade"
	ErrMsgUnknownPass    = "unknown gamepass"
	ErrMsgUnknownEggTier = "unknown egg tier"
	ErrMsgUnknownBlock   = "unknown lucky block"
	ErrMsgUnknownIsland  = "unknown island"
	ErrMsgUnknownBoss    = "unknown boss"
	ErrMsgUnknownAchieve = "unknown achievement"
	ErrMsgUnknownGemPack = "unknown gem pack"
	ErrMsgUnknownTag     = "unknown name tag"

	// Idempotency errors
	ErrMsgAlreadyOwned   = "already owned"
	ErrMsgAlreadyClaimed = "achievement already claimed"

	// Progress errors
	ErrMsgNotComplete = "achievement not complete"

	// Resolver errors
	ErrMsgHatchInProgress = "a hatch is already in progress"
	ErrMsgBlockLocked     = "lucky block is locked"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Spend errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Identifier errors
	ErrUnknownUpgrade     = errors.New(ErrMsgUnknownUpgrade)
	ErrUnknownPass        = errors.New(ErrMsgUnknownPass)
	ErrUnknownEggTier     = errors.New(ErrMsgUnknownEggTier)
	ErrUnknownBlock       = errors.New(ErrMsgUnknownBlock)
	ErrUnknownIsland      = errors.New(ErrMsgUnknownIsland)
	ErrUnknownBoss        = errors.New(ErrMsgUnknownBoss)
	ErrUnknownAchievement = errors.New(ErrMsgUnknownAchieve)
	ErrUnknownGemPack     = errors.New(ErrMsgUnknownGemPack)
	ErrUnknownTag         = errors.New(ErrMsgUnknownTag)

	// Idempotency errors
	ErrAlreadyOwned   = errors.New(ErrMsgAlreadyOwned)
	ErrAlreadyClaimed = errors.New(ErrMsgAlreadyClaimed)

	// Progress errors
	ErrAchievementNotComplete = errors.New(ErrMsgNotComplete)

	// Resolver errors
	ErrHatchInProgress = errors.New(ErrMsgHatchInProgress)
	ErrBlockLocked     = errors.New(ErrMsgBlockLocked)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
