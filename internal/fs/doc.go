// Package fs abstracts file system access so persistence code can be
// tested against injected failures (disk full, permission errors) without
// touching the real disk behavior.
package fs
