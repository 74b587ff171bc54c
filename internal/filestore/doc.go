// Package filestore reads and writes documents as plain text files.
//
// A file is a sequence of lines, each followed by a line terminator.
// Load splits a file the way a line reader does: a final terminator does
// not start another line, and an empty file is one empty line. "\r\n"
// and a lone '\r' terminate lines as well, so no loaded line holds a
// carriage return. Files whose every terminator is "\r\n" are reported as
// CRLF so that Save writes them back unchanged. Files holding a NUL byte
// are rejected as binary.
//
// Save replaces the target atomically: the content is written to a
// temporary file in the same directory and renamed over the original.
// A failed save leaves the existing file untouched.
package filestore
