// Package logger provides verbosity-gated logging for commonwealth.
//
// # Verbosity Levels
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details and errors
//
// Without flags, only unconditional warnings are shown.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfAlways()     // Always shown
//	Logger.Errorf()          // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//	Logger.Fatalf()          // Always shown, then exits
//
// The settings manager accepts any value with Debugf/Infof/Warnf, so a
// Logger can be handed to it directly:
//
//	log := Logger{Debug: true}
//	m, err := settings.New("foo", contract, settings.Options{Logger: log})
package logger
