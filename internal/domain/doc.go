// Package domain models NOAA aviation weather bulletins.
//
// # Data Source
//
// Bulletins are served as plain-text files from the National Weather Service
// TGFTP repository at tgftp.nws.noaa.gov. Each observing station has a fixed
// path per bulletin kind, keyed by its four-character ICAO identifier:
//
//	https://tgftp.nws.noaa.gov/data/observations/metar/stations/KJFK.TXT
//	https://tgftp.nws.noaa.gov/data/observations/metar/decoded/KJFK.TXT
//	https://tgftp.nws.noaa.gov/data/forecasts/taf/stations/KJFK.TXT
//
// # Station Identifier Conventions
//
// ICAO identifiers are four alphanumeric characters. Three-character
// identifiers common in the contiguous US (e.g. "JFK", "LAX") are accepted
// and prefixed with "K" to form the ICAO code. Identifiers are
// case-insensitive on input and upper-cased during URL construction.
//
// # Bulletin Content
//
// Bodies are opaque text reproduced byte for byte; nothing in this tool
// parses or reformats them. The repository's automated files end with a
// newline, as required for valid POSIX text files, so concatenated output
// stays line-aligned without any normalization here.
//
// Not every station carries every kind: decoded renderings and TAFs exist
// only where the station publishes them, in which case the repository
// answers 404.
package domain
