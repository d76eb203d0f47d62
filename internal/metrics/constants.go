package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Game metric names
const (
	MetricNameClicksTotal        = "clicks_total"
	MetricNameStudsEarned        = "studs_earned_total"
	MetricNameStudsSpent         = "studs_spent_total"
	MetricNameUpgradesBought     = "upgrades_bought_total"
	MetricNameRebirthsTotal      = "rebirths_total"
	MetricNameHatchesTotal       = "hatches_total"
	MetricNameHatchFailures      = "hatch_failures_total"
	MetricNameEventsTriggered    = "game_events_triggered_total"
	MetricNameEventsActive       = "game_events_active"
	MetricNameAchievementsClaims = "achievements_claimed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Game metric help text
const (
	HelpTextClicksTotal        = "Total number of player clicks"
	HelpTextStudsEarned        = "Total studs earned from clicks and auto generation"
	HelpTextStudsSpent         = "Total studs spent on purchases"
	HelpTextUpgradesBought     = "Total number of upgrade purchases"
	HelpTextRebirthsTotal      = "Total number of completed rebirths"
	HelpTextHatchesTotal       = "Total number of resolved randomized draws"
	HelpTextHatchFailures      = "Total number of draws resolved via the fallback pet"
	HelpTextEventsTriggered    = "Total number of triggered game events"
	HelpTextEventsActive       = "Current number of active game events"
	HelpTextAchievementsClaims = "Total number of claimed achievements"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelUpgrade = "upgrade"
	LabelTier    = "tier"
	LabelType    = "type"
)
