// Package config provides the application's configuration structures.
//
// Settings are loaded from yaml files, validated with struct tags and made
// available to the binaries through typed config structs. Constants for log
// levels, log types and database types live here as well.
package config
