// Package field defines the closed catalog of output fields a parse can
// produce, their default sentinel values, and the immutable Result type
// returned to callers.
package field

// Field names a single output slot from the closed catalog.
type Field string

// The full field catalog. Unlisted fields are never produced by the
// resolver; AllFields preserves this declaration order, which is also the
// order Result.AllFieldNames returns.
const (
	DeviceClass Field = "DeviceClass"
	DeviceName  Field = "DeviceName"
	DeviceBrand Field = "DeviceBrand"
	DeviceCpu   Field = "DeviceCpu"

	DeviceCpuBits Field = "DeviceCpuBits"

	OperatingSystemClass            Field = "OperatingSystemClass"
	OperatingSystemName             Field = "OperatingSystemName"
	OperatingSystemVersion          Field = "OperatingSystemVersion"
	OperatingSystemVersionMajor     Field = "OperatingSystemVersionMajor"
	OperatingSystemNameVersion      Field = "OperatingSystemNameVersion"
	OperatingSystemNameVersionMajor Field = "OperatingSystemNameVersionMajor"

	LayoutEngineClass            Field = "LayoutEngineClass"
	LayoutEngineName             Field = "LayoutEngineName"
	LayoutEngineVersion          Field = "LayoutEngineVersion"
	LayoutEngineVersionMajor     Field = "LayoutEngineVersionMajor"
	LayoutEngineNameVersion      Field = "LayoutEngineNameVersion"
	LayoutEngineNameVersionMajor Field = "LayoutEngineNameVersionMajor"

	AgentClass            Field = "AgentClass"
	AgentName             Field = "AgentName"
	AgentVersion          Field = "AgentVersion"
	AgentVersionMajor     Field = "AgentVersionMajor"
	AgentNameVersion      Field = "AgentNameVersion"
	AgentNameVersionMajor Field = "AgentNameVersionMajor"
	AgentLanguage         Field = "AgentLanguage"
	AgentLanguageCode     Field = "AgentLanguageCode"
	AgentSecurity         Field = "AgentSecurity"
)

// Unknown is the sentinel value for unset categorical fields.
const Unknown = "Unknown"

// VersionUnknown is the sentinel value for unset version-shaped fields.
const VersionUnknown = "??"

// AllFields lists the full catalog in declaration order.
var AllFields = []Field{
	DeviceClass, DeviceName, DeviceBrand, DeviceCpu, DeviceCpuBits,
	OperatingSystemClass, OperatingSystemName, OperatingSystemVersion,
	OperatingSystemVersionMajor, OperatingSystemNameVersion, OperatingSystemNameVersionMajor,
	LayoutEngineClass, LayoutEngineName, LayoutEngineVersion,
	LayoutEngineVersionMajor, LayoutEngineNameVersion, LayoutEngineNameVersionMajor,
	AgentClass, AgentName, AgentVersion, AgentVersionMajor,
	AgentNameVersion, AgentNameVersionMajor, AgentLanguage, AgentLanguageCode, AgentSecurity,
}

// versionShaped holds the fields whose default is "??" rather than "Unknown".
var versionShaped = map[Field]bool{
	OperatingSystemVersion:          true,
	OperatingSystemVersionMajor:     true,
	OperatingSystemNameVersion:      true,
	OperatingSystemNameVersionMajor: true,
	LayoutEngineVersion:             true,
	LayoutEngineVersionMajor:        true,
	LayoutEngineNameVersion:         true,
	LayoutEngineNameVersionMajor:    true,
	AgentVersion:                    true,
	AgentVersionMajor:               true,
	AgentNameVersion:                true,
	AgentNameVersionMajor:           true,
	DeviceCpuBits:                   true,
}

// IsVersionShaped reports whether f defaults to "??" instead of "Unknown".
func IsVersionShaped(f Field) bool {
	return versionShaped[f]
}

// Default returns the sentinel value for an unset field.
func Default(f Field) string {
	if IsVersionShaped(f) {
		return VersionUnknown
	}
	return Unknown
}

// Known reports whether f is part of the closed catalog.
func Known(f Field) bool {
	for _, k := range AllFields {
		if k == f {
			return true
		}
	}
	return false
}
