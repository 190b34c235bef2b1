// Package memory provides in-process implementations of the store
// interfaces. Nothing is written to disk: sessions live exactly as long as
// the process (or until they expire).
package memory
