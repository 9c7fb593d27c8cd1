package catalog

// Plan is a named item within a course, optionally pointing at a stored PDF
// via its storage key. Filename is nil when no file was attached.
type Plan struct {
	Name     string  `json:"name"`
	Filename *string `json:"filename"`
}

// Course groups an ordered list of plans under a title. ID is generated at
// creation; request-level addressing stays positional.
type Course struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Plans []Plan `json:"plans"`
}
