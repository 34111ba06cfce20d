// Package language maps subtitle track codes to display names.
package language
