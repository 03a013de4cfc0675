// Package staff provides the staff directory used for item responsibility and change attribution.
package staff
