package translatable

import "github.com/goliatone/go-translatable/internal/runtimeconfig"

var (
	ErrFieldInputInvalid       = runtimeconfig.ErrFieldInputInvalid
	ErrStorageProviderUnknown  = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDialectUnknown   = runtimeconfig.ErrStorageDialectUnknown
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config        = runtimeconfig.Config
	FieldConfig   = runtimeconfig.FieldConfig
	StorageConfig = runtimeconfig.StorageConfig
	LoggingConfig = runtimeconfig.LoggingConfig
	Features      = runtimeconfig.Features
)

// DefaultConfig returns the default runtime configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
