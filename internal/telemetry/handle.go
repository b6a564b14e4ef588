package telemetry

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

var handles atomic.Uint64

// Handle returns a string attribute that uniquely identifies one instrumented
// value among all others in the process.
//
// The value is a sequence number, which is easy for humans to follow within a
// single trace, followed by a UUID for correlating values across processes.
func Handle(k string) Attr {
	return String(k, fmt.Sprintf("#%d %s", handles.Add(1), uuid.NewString()))
}
