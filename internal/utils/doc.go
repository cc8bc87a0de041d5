// Package utils provides shared helpers for the commonwealth CLI.
//
// # Filesystem Utilities
//
//   - FileExists: reports whether a regular file exists
//   - ExpandHome: expands a leading ~ in user-supplied paths
//
// # System Utilities
//
//   - GetUsername, GetHostname: identify the machine
//   - SanitizeVehicleName, DefaultVehicleName: derive a vehicle name from the hostname
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//   - IsValidAppName: checks an application name is a single directory name
//
// # I/O Utilities
//
//   - ReadStdin: reads piped data from standard input
//
// # Terminal Utilities
//
//   - IsTerminal, IsOutputTerminal: detect interactive terminals
//   - Confirm: asks a yes/no question
package utils
