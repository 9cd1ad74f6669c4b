// Package services holds the error taxonomy shared by the merge pipeline and
// its external collaborators.
//
// Stage code wraps failures with a sentinel marker plus stage and operation
// context so callers can classify outcomes (configuration vs. external tool
// vs. transient) without parsing messages. The ffmpeg subpackage implements
// the transcoder collaborator on top of these conventions.
package services
