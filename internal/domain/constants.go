package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	// CancellationCutoffHours minimum notice for cancelling a confirmed
	// reservation. Pending reservations may be cancelled at any time.
	CancellationCutoffHours = 24

	// Display granularity bounds for availability queries.
	// Zero granularity means raw template intervals.
	MinGranularityMinutes = 5
	MaxGranularityMinutes = 480
)
