// Package prefio reads and writes stable-matching markets in the fixed
// line-oriented text format:
//
//	n
//	<n lines: hospital preferences, n 1-based resident indices each>
//	<n lines: resident preferences, n 1-based hospital indices each>
//
// and writes results as
//
//	Yes
//	<n lines: line i = 1-based resident matched to hospital i>
//
// Indices are 1-based on the wire and 0-based in matching.Instance. Every
// parse failure wraps matching.ErrInvalidInput and names the 1-based line.
package prefio
