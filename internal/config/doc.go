// Package config manages stashit configuration persistence.
//
// Repository configuration lives in .git/.stashit_config as JSON. A missing
// file means every setting takes its default.
package config
