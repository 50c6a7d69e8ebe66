// Package stream resolves symbolic stream names to readable and writable
// handles and copies bytes between them.
//
// The names "-", "stdin", "stdout" and "stderr" always denote standard
// streams, everything else is a path. Classification is done by string
// equality only and never consults the filesystem.
package stream
