package hatch

// Log messages for hatch operations
const (
	LogMsgHatchResolved    = "Hatch resolved"
	LogMsgGenerationFailed = "Pet generation failed, using fallback pet"
)

// Error context strings
const (
	ErrContextFailedToGrantPet = "failed to grant pet"
)
