package launcher

const (
	HostEnv              = "HOST"
	PortEnv              = "PORT"
	PortMaxEnv           = "PORT_MAX"
	StartRetriesEnv      = "START_RETRIES"
	RetryDelayMsEnv      = "RETRY_DELAY_MS"
	OpenBrowserEnv       = "OPEN_BROWSER"
	ShutdownTimeoutMsEnv = "SHUTDOWN_TIMEOUT_MS"
)
