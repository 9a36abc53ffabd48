package validator

const (
	defaultWorkerCount = 8

	// defaultFlushInterval is the number of connected blocks between chain state flushes.
	defaultFlushInterval = 100

	// defaultReorgDepth is how many heights below the tip connected blocks stay available for disconnects.
	defaultReorgDepth = 288
)
