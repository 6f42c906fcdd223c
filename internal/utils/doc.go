// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - String truncation for display labels
//   - Terminal interactivity checks
package utils
