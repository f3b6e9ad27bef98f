package jobseq

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// APIVersion is the JobsEQ API version this SDK was built against.
//
// The vendor does not document a deprecation policy; when the server
// reports a version (see [Client.ServerVersion]), use
// [CheckCompatibility] to detect drift.
const APIVersion = "2.0.0"

// APIVersionRange is the semver constraint of server versions this SDK
// is expected to work with.
const APIVersionRange = ">= 2.0.0-0, < 3.0.0"

// CompatibilityStatus classifies a server version against
// APIVersionRange.
type CompatibilityStatus int

const (
	// Compatible means the server version satisfies APIVersionRange.
	Compatible CompatibilityStatus = iota
	// Incompatible means the server version parses but falls outside
	// APIVersionRange.
	Incompatible
	// Unknown means the server version could not be parsed.
	Unknown
)

func (s CompatibilityStatus) String() string {
	switch s {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	default:
		return "unknown"
	}
}

// CompatibilityResult carries the outcome of a compatibility check.
type CompatibilityResult struct {
	Status           CompatibilityStatus
	ServerVersion    string
	SDKVersion       string
	TargetAPIVersion string
	SupportedRange   string
	Message          string
}

// IsCompatible reports whether the result is [Compatible].
func (r CompatibilityResult) IsCompatible() bool {
	return r.Status == Compatible
}

var supportedRange *semver.Constraints

func init() {
	var err error
	supportedRange, err = semver.NewConstraint(APIVersionRange)
	if err != nil {
		panic("jobseq: invalid APIVersionRange: " + err.Error())
	}
}

// CheckCompatibility checks a server-reported API version against
// APIVersionRange.
func CheckCompatibility(serverVersion string) CompatibilityResult {
	result := CompatibilityResult{
		ServerVersion:    serverVersion,
		SDKVersion:       Version,
		TargetAPIVersion: APIVersion,
		SupportedRange:   APIVersionRange,
	}

	v, err := semver.NewVersion(serverVersion)
	if err != nil {
		result.Status = Unknown
		result.Message = fmt.Sprintf("cannot parse server version %q: %v", serverVersion, err)
		return result
	}

	if supportedRange.Check(v) {
		result.Status = Compatible
		result.Message = fmt.Sprintf("server version %s is compatible with SDK %s", serverVersion, Version)
	} else {
		result.Status = Incompatible
		result.Message = fmt.Sprintf("server version %s is not compatible with SDK %s (supported: %s)",
			serverVersion, Version, APIVersionRange)
	}
	return result
}

// IsCompatible reports whether a server version satisfies
// APIVersionRange.
func IsCompatible(serverVersion string) bool {
	return CheckCompatibility(serverVersion).IsCompatible()
}

// MustBeCompatible panics if the server version is incompatible or
// unparseable. Intended for program startup.
func MustBeCompatible(serverVersion string) {
	if result := CheckCompatibility(serverVersion); !result.IsCompatible() {
		panic("jobseq: " + result.Message)
	}
}
