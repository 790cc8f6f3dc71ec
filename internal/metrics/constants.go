package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameCalculationsTotal  = "drop_calculations_total"
	MetricNameSimulationDuration = "drop_simulation_duration_seconds"
	MetricNameCalcCacheHits      = "calc_cache_hits_total"
	MetricNameCalcCacheMisses    = "calc_cache_misses_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextCalculationsTotal  = "Total number of drop rate calculations by operation"
	HelpTextSimulationDuration = "Monte Carlo simulation runtime in seconds"
	HelpTextCalcCacheHits      = "Total number of batch calculation cache hits"
	HelpTextCalcCacheMisses    = "Total number of batch calculation cache misses"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
)

// Calculation operation label values
const (
	OpCalculateAll          = "calculate_all"
	OpCalculateMonsterTable = "calculate_monster_table"
	OpCalculateItem         = "calculate_item"
	OpSimulate              = "simulate"
)

// HTTPLatencyBuckets covers fast lookups up to long simulation requests.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60}

// SimulationDurationBuckets covers the expected simulation runtimes.
var SimulationDurationBuckets = []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60}
