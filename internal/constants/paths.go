// Package constants contains shared names and default paths used by tokenscan.
package constants

const (
	// AppName is the application name used for XDG directory paths and log fields.
	AppName = "tokenscan"

	// DefaultRulesDir is the rules directory used when -d/--directory is not given.
	DefaultRulesDir = "/opt/tokenscan/rules"

	// LogFilename is the default log file name for tokenscan.
	LogFilename = "tokenscan.log"
)
