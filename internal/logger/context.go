package logger

// Component-specific logger functions

// Store returns a logger for collection store operations
func Store() Logger {
	return WithField("component", "store")
}

// Storage returns a logger for snapshot persistence
func Storage() Logger {
	return WithField("component", "storage")
}

// HTTP returns a logger for request logging
func HTTP() Logger {
	return WithField("component", "http")
}

// Backup returns a logger for backup files
func Backup() Logger {
	return WithField("component", "backup")
}

// Remote returns a logger for the hosted datastore
func Remote() Logger {
	return WithField("component", "remote")
}

// CLI returns a logger for CLI operations
func CLI() Logger {
	return WithField("component", "cli")
}
