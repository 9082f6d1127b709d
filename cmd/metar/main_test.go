package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_NoStationsIsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "at least one station ID")
	assert.Contains(t, stderr.String(), "usage: metar")
	assert.Zero(t, stdout.Len())
}

func TestRun_UnknownFlagIsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-x", "KJFK"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "usage: metar")
	assert.Zero(t, stdout.Len())
}

func TestRun_InvalidConfigIsUsageError(t *testing.T) {
	t.Setenv("METAR_TIMEOUT", "soon")
	var stdout, stderr bytes.Buffer

	code := run([]string{"KJFK"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "METAR_TIMEOUT")
}

// A malformed station is rejected before any network access, so this test
// runs offline: the diagnostic names the station and the run still succeeds.
func TestRun_InvalidStationIsDiagnosticNotFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"BOGUS1"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr.String(), "BOGUS1")
	assert.Zero(t, stdout.Len())
}

func TestRun_FlagsStopAtFirstStation(t *testing.T) {
	var stdout, stderr bytes.Buffer

	// "-d" after a positional argument is a station, not a flag; it fails
	// validation offline.
	code := run([]string{"TOOLONGID", "-d"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr.String(), "TOOLONGID")
	assert.Contains(t, stderr.String(), "-d")
}
