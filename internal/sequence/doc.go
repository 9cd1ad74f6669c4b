// Package sequence isolates the primary chapters of a directory of clips.
//
// Cameras number the first chapter of every recording consecutively, while
// second and later chapters of a split recording land far away in key space.
// The longest run of strictly consecutive sequence keys therefore identifies
// the files that lead each recording. The heuristic can misfire when two
// unrelated key blocks happen to abut; that limitation is inherited from the
// card numbering scheme and is deliberately not second-guessed here.
package sequence
