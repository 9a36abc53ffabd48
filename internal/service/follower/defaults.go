package follower

import "time"

const (
	defaultBatchSize = 500

	sleepDuration     = 5 * time.Second
	longSleepDuration = 1 * time.Minute
)
