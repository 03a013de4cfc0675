// Package settings provides the singleton configuration rows editable at runtime:
// company details and Telegram credentials.
package settings
