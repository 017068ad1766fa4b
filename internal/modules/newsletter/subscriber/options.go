package subscriber

// Fixed option lists rendered by the subscription form. Edit these to add or
// remove choices throughout the app. Stored selections are not re-validated
// against them, so removing an entry never invalidates existing rows.
var (
	EventTypeOptions = []string{
		"Conferences",
		"Workshops",
		"Webinars",
		"Networking Events",
		"Summits",
		"Meetups",
	}

	TopicOptions = []string{
		"Technology",
		"Business",
		"Design",
		"Marketing",
		"Product",
		"Startups",
		"AI & ML",
		"Web Development",
	}
)
