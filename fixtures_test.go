package status_test

import (
	"fmt"

	"github.com/jmgilman/go/status"
)

// fileErr is a small errno-like domain used across the tests.
type fileErr int32

const (
	fileOK fileErr = iota
	fileNotFound
	fileDenied
	fileCorrupt
)

var fileMessages = map[fileErr]string{
	fileOK:       "success",
	fileNotFound: "file not found",
	fileDenied:   "access denied",
	fileCorrupt:  "file is corrupt",
}

type fileSemantics struct{}

func (fileSemantics) Message(v fileErr) string {
	if m, ok := fileMessages[v]; ok {
		return m
	}
	return fmt.Sprintf("file error %d", int32(v))
}

func (fileSemantics) Success(v fileErr) bool { return v == fileOK }

func (fileSemantics) Generic(v fileErr) status.Errc {
	switch v {
	case fileOK:
		return status.ErrcSuccess
	case fileNotFound:
		return status.ErrcNoSuchFileOrDirectory
	case fileDenied:
		return status.ErrcPermissionDenied
	}
	return status.ErrcUnknown
}

var fileErrors = status.NewDomain[fileErr]("file_errors", fileSemantics{})

// legacyErr models an older subsystem. Code 9 is declared equivalent to
// fileCorrupt by its own domain only; fileErrors knows nothing about it.
type legacyErr uint8

type legacySemantics struct{}

func (legacySemantics) Message(v legacyErr) string { return fmt.Sprintf("legacy failure %d", v) }
func (legacySemantics) Success(v legacyErr) bool   { return v == 0 }

func (legacySemantics) Generic(v legacyErr) status.Errc {
	switch v {
	case 0:
		return status.ErrcSuccess
	case 2:
		return status.ErrcNoSuchFileOrDirectory
	case 5:
		return status.ErrcTimedOut
	}
	return status.ErrcUnknown
}

func (legacySemantics) Equivalent(v legacyErr, other status.Code) bool {
	if v != 9 {
		return false
	}
	fv, ok := fileErrors.ValueOf(other)
	return ok && fv == fileCorrupt
}

func (legacySemantics) Default() legacyErr { return 0 }

func (legacySemantics) FormatValue(v legacyErr) string { return fmt.Sprintf("L%03d", v) }

var legacyErrors = status.NewDomain[legacyErr]("legacy_errors", legacySemantics{})

// legacyError is an error type from "another package" that converts to a
// legacy code through a registered factory.
type legacyError struct {
	code legacyErr
}

func (e legacyError) Error() string         { return fmt.Sprintf("legacy error %d", e.code) }
func (e legacyError) LegacyCode() legacyErr { return e.code }

type legacyCoder interface {
	LegacyCode() legacyErr
}

func init() {
	status.RegisterFactory(func(c legacyCoder) status.Code {
		return legacyErrors.Code(c.LegacyCode())
	})
}

// version is a relocatable composite value.
type version struct {
	Major, Minor int32
}

func (version) MoveRelocating() {}

type versionSemantics struct{}

func (versionSemantics) Message(v version) string { return fmt.Sprintf("v%d.%d", v.Major, v.Minor) }
func (versionSemantics) Success(v version) bool   { return v.Major == 0 }

var versions = status.NewDomain[version]("versions", versionSemantics{})

// labelSemantics backs a domain whose values cannot be erased.
type labelSemantics struct{}

func (labelSemantics) Message(v string) string { return "label " + v }
func (labelSemantics) Success(v string) bool   { return v == "" }

var labels = status.NewDomain[string]("labels", labelSemantics{})

// simple is a minimal semantics for domains created inside tests.
type simple[V comparable] struct {
	ok V
}

func (s simple[V]) Message(v V) string { return fmt.Sprint(v) }
func (s simple[V]) Success(v V) bool   { return v == s.ok }

// gauge values are compared by their bits: NaN is itself, -0 is not +0.
type gauge float64

var gauges = status.NewDomain[gauge]("gauges", simple[gauge]{})

// flag and alarm carry bools, whose encoded bytes must be 0 or 1.
type flag bool

var flags = status.NewDomain[flag]("flags", simple[flag]{ok: true})

type alarm struct {
	Armed bool
	Zone  uint8
}

func (alarm) MoveRelocating() {}

var alarms = status.NewDomain[alarm]("alarms", simple[alarm]{})
