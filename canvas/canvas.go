// Package canvas implements [canvasmcp.API] against the Canvas LMS REST API.
//
// Every operation is a single synchronous GET (plus shaping) issued with a
// fixed bearer token. HTTP failures are mapped to [canvasmcp.APIError] values
// carrying the original status code; statuses that individual operations
// treat as expected outcomes (a disabled Files section, a missing front page)
// are converted into advisories instead of errors.
package canvas

import "time"

const (
	requestTimeout = 30 * time.Second

	// Per-request page sizes. Pagination beyond the first page is not
	// implemented; these match what a single course realistically holds.
	filesPerPage       = 100
	modulesPerPage     = 50
	pagesPerPage       = 100
	submissionsPerPage = 100
	discussionsPerPage = 50
	eventsPerPage      = 100

	// maxErrorBody bounds how much of an unexpected response body is quoted
	// in an error message.
	maxErrorBody = 512

	defaultCalendarWindowDays = 30
	defaultDaysAhead          = 7
	defaultDaysBack           = 14
	defaultEntryLimit         = 20
	maxEntriesPerPage         = 50
)
