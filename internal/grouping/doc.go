// Package grouping recovers multi-chapter recordings from a flat directory.
//
// The scan collects every file matching the camera naming convention along
// with its modification time. Ordering the snapshot by mtime approximates
// true recording order, which sequence keys alone cannot provide because
// chapter numbering restarts with every recording. Files that are not
// primary chapters (per the sequence extractor) form mtime-contiguous blocks;
// each block, together with the primary chapter immediately before it, is one
// recording and becomes a merge group keyed by that primary's base name.
//
// Group and clip ordering are part of the contract: groups sort lexically by
// key and clips lexically by path, the camera's chapter play order.
package grouping
