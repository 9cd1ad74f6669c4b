// Package media models the camera clip files clipstitch operates on.
//
// Filenames follow the fixed GoPro convention: a two-letter alphabetic
// prefix, a six-digit zero-padded field (two chapter digits followed by four
// recording digits), and an mp4/mov/avi extension in either case. The parser
// rejects anything that does not match the full convention rather than
// guessing at offsets, so grouping only ever sees well-formed files.
package media
