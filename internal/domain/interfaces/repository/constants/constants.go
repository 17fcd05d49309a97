package repocontants

const (
	NOTES_TABLE = "recordings"

	// Default page size for GetNotes when the caller passes a non-positive limit.
	DEFAULT_NOTES_LIMIT = 5
)
