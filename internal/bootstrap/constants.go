package bootstrap

// Startup messages
const (
	LogMsgFormatterReady   = "Formatter initialized"
	LogMsgTierTableLoaded  = "Tier table loaded"
	LogMsgTierTableFailed  = "Failed to load tier table"
	ErrMsgInvalidFormatter = "failed to build formatter"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
