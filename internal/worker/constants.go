package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Scheduled Jobs
// ============================================================================

// Log messages for auto-tick and event sweep jobs
const (
	LogMsgAutoTickFailed   = "Auto tick failed"
	LogMsgEventSweepFailed = "Event sweep failed"
	LogMsgEventsExpired    = "Expired game events swept"
)
