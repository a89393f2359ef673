package dynamo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Note sort keys are UUIDv7 strings; newest-first listing relies on their
// text form sorting by creation time.
func TestNoteIdsSortByCreationTime(t *testing.T) {
	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		id, err := newNoteId()
		assert.NoError(t, err)
		ids = append(ids, id)
		// UUIDv7 timestamps have millisecond precision
		time.Sleep(2 * time.Millisecond)
	}

	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}
