package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how deliberations are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and processes deliberations.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentDeliberations is the global limit of concurrent
	// deliberations being processed across ALL replicas/pods. Enforced by
	// database COUNT(*) check.
	MaxConcurrentDeliberations int `yaml:"max_concurrent_deliberations"`

	// PollInterval is the base interval for checking pending deliberations.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// DeliberationTimeout is the maximum time a deliberation can be processed.
	DeliberationTimeout time.Duration `yaml:"deliberation_timeout"`

	// HeartbeatInterval is how often a worker refreshes last_interaction_at
	// while processing a deliberation.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// GracefulShutdownTimeout is the max time to wait for active
	// deliberations to complete during shutdown. Should match
	// DeliberationTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// OrphanDetectionInterval is how often to scan for orphaned deliberations.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a deliberation can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:                5,
		MaxConcurrentDeliberations: 5,
		PollInterval:               1 * time.Second,
		PollIntervalJitter:         500 * time.Millisecond,
		DeliberationTimeout:        15 * time.Minute,
		HeartbeatInterval:          30 * time.Second,
		GracefulShutdownTimeout:    15 * time.Minute,
		OrphanDetectionInterval:    5 * time.Minute,
		OrphanThreshold:            5 * time.Minute,
	}
}
