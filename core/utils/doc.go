// Package utils provides small conversion helpers shared across the
// catalog engine, mainly for lenient parsing of manifest wire values.
package utils
