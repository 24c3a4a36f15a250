// Package sequence derives the next identifier in a human-maintained sequence.
//
// Asset tags and serial numbers are free text with an embedded counter, for
// example "BTPNINFJKT/0124/4.0055 NB". The counter is taken to be the last run
// of decimal digits in the string; everything around it is preserved.
//
// # Padding
//
// The incremented number keeps the width of the original digit run, so "0055"
// becomes "0056". When the value outgrows the width the string simply grows:
// "v99" becomes "v100".
//
// # Usage
//
//	next := sequence.Increment("SN-100", 2) // "SN-102"
package sequence
