package constants

const (
	// DefaultSlotKey names the durable slot holding the serialized
	// assignment collection.
	DefaultSlotKey = "homework_hub_assignments"

	// SessionName is the cookie session carrying flash notices.
	SessionName = "homework_hub_session"

	// FlashKey is the session key for the pending flash notice.
	FlashKey = "flash"

	// DeadlineInputFormat matches the value of an HTML datetime-local input.
	DeadlineInputFormat = "2006-01-02T15:04"

	// DeadlineDisplayFormat is how deadlines render on the dashboard.
	DeadlineDisplayFormat = "2 Jan 2006, 03:04 PM"

	// CompletionDisplayFormat is how completion dates render on the
	// completed-history page.
	CompletionDisplayFormat = "02/01/2006"
)
