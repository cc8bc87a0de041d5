// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content by role (commands, paths, settings keys,
// versions) and adapt to the terminal. When colors are available, content
// is colorized. When NO_COLOR is set or the terminal doesn't support colors,
// text-based decorations are used instead.
//
// # Semantic Formatters
//
//	ui.Code.Sprint("commonwealth settings init") // Commands
//	ui.Path.Sprint("~/.config/autopilot")        // File paths
//	ui.Key.Sprint("vehicle-name")                // Settings keys
//	ui.Version.Sprintf("v%d", 2)                 // Schema versions
//	ui.Success.Sprint("✓")                       // Success indicators
//	ui.Error.Sprint("✗")                         // Error indicators
//	ui.Warning.Sprint("from the future")         // Warnings
//	ui.Info.Sprint("→")                          // Hints
//	ui.Highlight.Sprint("autopilot")             // User values
//	ui.Muted.Sprint("canonical")                 // De-emphasized text
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
//
// When colors are disabled, formatters apply text decorations:
//   - Code: `backticks`
//   - Version: [brackets]
//   - Highlight: 'single quotes'
//   - Muted: (parentheses)
//   - Others: no decoration
package ui
