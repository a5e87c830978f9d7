package format

import (
	"fmt"

	"velocity-model-service/internal/domain"
)

// pageNote builds the pagination annotation line for a response holding n of
// page.Total records. Returns false when the window covers everything and no
// annotation is emitted.
func pageNote(page domain.Page, n int) (string, bool) {
	if page.Total <= n {
		return "", false
	}
	return fmt.Sprintf(
		"# Showing %d-%d of %d records (limit=%d, offset=%d)",
		page.Offset+1, page.Offset+n, page.Total, page.Limit, page.Offset,
	), true
}
