package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	SMTPHost            string
	SMTPPort            int
	SMTPUsername        string
	SMTPPassword        string
	FromAddress         string
	AdminEmail          string
	NotifyPollInterval  time.Duration
	WorkerPoolSize      int
	DeliveryBatchSize   int
	MaxDeliveryAttempts int
	RetryBackoffBase    time.Duration
	DeliveryLease       time.Duration
	SendTimeout         time.Duration
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress         = ":3000"
	defaultSMTPPort           = 587
	defaultNotifyPollInterval = 5 * time.Second
	defaultWorkerPoolSize     = 2
	defaultDeliveryBatchSize  = 16
	defaultMaxDeliveryAttempt = 5
	defaultRetryBackoffBase   = 30 * time.Second
	defaultDeliveryLease      = 5 * time.Minute
	defaultSendTimeout        = 10 * time.Second
	defaultShutdownTimeout    = 10 * time.Second
)

// Load parses configuration from flags and environment variables. A local
// .env file, when present, is merged into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		SMTPHost:            getString(lookup, "SMTP_HOST", ""),
		SMTPPort:            getInt(lookup, "SMTP_PORT", defaultSMTPPort),
		SMTPUsername:        getString(lookup, "SMTP_USERNAME", ""),
		SMTPPassword:        getString(lookup, "SMTP_PASSWORD", ""),
		FromAddress:         getString(lookup, "FROM_ADDRESS", ""),
		AdminEmail:          getString(lookup, "ADMIN_EMAIL", ""),
		NotifyPollInterval:  getDuration(lookup, "NOTIFY_POLL_INTERVAL", defaultNotifyPollInterval),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		DeliveryBatchSize:   getInt(lookup, "DELIVERY_BATCH_SIZE", defaultDeliveryBatchSize),
		MaxDeliveryAttempts: getInt(lookup, "MAX_DELIVERY_ATTEMPTS", defaultMaxDeliveryAttempt),
		RetryBackoffBase:    getDuration(lookup, "RETRY_BACKOFF_BASE", defaultRetryBackoffBase),
		DeliveryLease:       getDuration(lookup, "DELIVERY_LEASE", defaultDeliveryLease),
		SendTimeout:         getDuration(lookup, "SEND_TIMEOUT", defaultSendTimeout),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("membership", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.NotifyPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SMTPHost, "smtp-host", cfg.SMTPHost, "SMTP server host")
	fs.IntVar(&cfg.SMTPPort, "smtp-port", cfg.SMTPPort, "SMTP server port")
	fs.StringVar(&cfg.AdminEmail, "admin-email", cfg.AdminEmail, "Administrative notification recipient")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent delivery workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between outbox polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.DeliveryBatchSize, "delivery-batch", cfg.DeliveryBatchSize, "Maximum notifications per polling batch")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.NotifyPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.FromAddress == "" {
		cfg.FromAddress = cfg.SMTPUsername
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.DeliveryBatchSize <= 0 {
		cfg.DeliveryBatchSize = defaultDeliveryBatchSize
	}

	if cfg.MaxDeliveryAttempts <= 0 {
		cfg.MaxDeliveryAttempts = defaultMaxDeliveryAttempt
	}

	if cfg.NotifyPollInterval <= 0 {
		cfg.NotifyPollInterval = defaultNotifyPollInterval
	}

	if cfg.RetryBackoffBase <= 0 {
		cfg.RetryBackoffBase = defaultRetryBackoffBase
	}

	if cfg.DeliveryLease <= 0 {
		cfg.DeliveryLease = defaultDeliveryLease
	}

	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host must be provided")
	}

	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("admin email must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
