package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects which bulletin variant to request for a station.
type Kind int

const (
	// Metar is the raw coded observation report.
	Metar Kind = iota
	// Decoded is the human-readable rendering of the observation.
	Decoded
	// TAF is the terminal aerodrome forecast.
	TAF
)

// Repository directories, one per bulletin kind. All kinds share the same
// file naming: the upper-cased four-character station ID plus ".TXT".
const (
	metarBase   = "https://tgftp.nws.noaa.gov/data/observations/metar/stations/"
	decodedBase = "https://tgftp.nws.noaa.gov/data/observations/metar/decoded/"
	tafBase     = "https://tgftp.nws.noaa.gov/data/forecasts/taf/stations/"

	urlExtension = ".TXT"

	stationIDLen = 4

	// defaultStationPrefix completes three-character identifiers into ICAO
	// codes. TODO: localize; "K" only covers the contiguous US.
	defaultStationPrefix = "K"
)

// longestBase bounds the builder's growth below. The METAR directory is the
// longest of the three.
const longestBase = metarBase

// Validation failures reported by BulletinURL before any network access.
var (
	ErrStationLength  = errors.New("station ID must be 3 or 4 characters")
	ErrStationCharset = errors.New("station ID must contain only alphanumeric characters")
)

func (k Kind) String() string {
	switch k {
	case Metar:
		return "metar"
	case Decoded:
		return "decoded"
	case TAF:
		return "taf"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// base returns the repository directory serving this bulletin kind.
func (k Kind) base() (string, error) {
	switch k {
	case Metar:
		return metarBase, nil
	case Decoded:
		return decodedBase, nil
	case TAF:
		return tafBase, nil
	}
	return "", fmt.Errorf("unknown bulletin kind %d", int(k))
}

// BulletinURL forms the repository URL for one station and bulletin kind.
// The station must be exactly four alphanumeric characters, or exactly
// three, in which case the default prefix is prepended. Letters are
// upper-cased. Pure and deterministic: identical inputs always yield the
// identical URL or the identical error.
func BulletinURL(kind Kind, station string) (string, error) {
	base, err := kind.base()
	if err != nil {
		return "", err
	}

	if len(station) != stationIDLen &&
		len(station) != stationIDLen-len(defaultStationPrefix) {
		return "", ErrStationLength
	}
	for i := 0; i < len(station); i++ {
		if !isAlphanumeric(station[i]) {
			return "", ErrStationCharset
		}
	}

	// The result is bounded by the longest directory plus the fixed station
	// field plus the extension, so one allocation always suffices.
	var b strings.Builder
	b.Grow(len(longestBase) + stationIDLen + len(urlExtension))
	b.WriteString(base)
	if len(station) < stationIDLen {
		b.WriteString(defaultStationPrefix)
	}
	b.WriteString(strings.ToUpper(station))
	b.WriteString(urlExtension)
	return b.String(), nil
}

func isAlphanumeric(c byte) bool {
	return (c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		(c >= '0' && c <= '9')
}
