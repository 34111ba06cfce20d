// Package subtitle parses SRT subtitle content into ordered, timed cues.
package subtitle
