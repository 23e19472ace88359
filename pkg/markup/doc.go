// Package markup identifies and carries wrapper markup payloads. Sources
// abstract over files, fs.FS entries, and URLs so loaders stay pluggable;
// Documents pair a payload with its origin for error reporting downstream.
package markup
