// Package project derives deterministic, Docker-safe instance names from
// project directory names.
//
// Names are derived from the directory base name alone, not the full path.
// Two distinct paths with base names that normalize to the same slug will
// therefore contend for one container name; the launcher resolves this by
// force-removing the previous holder. Per-project data directories are not
// affected: those are keyed by full path.
package project
