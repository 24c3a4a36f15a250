// Package checks holds the individual integrity checks used by the integrity feature.
package checks
