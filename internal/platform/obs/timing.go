package obs

import (
	"context"
	"log"
	"time"
)

// Time logs the duration of one named operation when the returned func runs.
// Pass a pointer to the caller's named error so failures land on the same
// log line:
//
//	defer obs.Time(ctx, "models.repo.List1D")(&err)
func Time(_ context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", name, dur.Milliseconds())
	}
}
