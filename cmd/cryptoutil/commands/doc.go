// Package commands defines the cryptoutil CLI.
//
// Commands
//
//   - decode       Decode a uint64 from an 8-byte window of hex input
//   - encode       Encode a uint64 as 8 bytes of hex
//   - seal         Encrypt stdin (or --in) under a passphrase
//   - open         Decrypt an envelope produced by seal
//   - fingerprint  Print a short fingerprint of hex input
//
// # Implementation
//
// The root command resolves the shared app.Config and builds the logger
// before any subcommand runs. Results go to the command's stdout, logs to
// its stderr, so handlers stay testable through cobra's SetOut/SetErr.
package commands
