// Package format renders analysis payloads into the markdown text fed to
// the section/chunk/escape pipeline: confidence scores, technical indicator
// snapshots, and price updates with their emoji conventions.
package format
