// Package fragment loads source files and slices them into overlapping
// windows for scoring.
//
// # Model
//
// A File is an input file split into lines, kept in two forms: the raw
// lines as read, and display lines with tabs expanded for terminal
// rendering. A Fragment is a contiguous, inclusive line range over a File;
// fragments borrow the File's line storage rather than copying it.
//
// # Windowing
//
// Window slides over a file one block at a time. Each fragment starts at a
// block boundary and spans blocksPerFragment consecutive blocks, truncated
// at end of file. Consecutive fragments therefore overlap by all but one
// block, and a file of n lines yields ceil(n/linesPerBlock) fragments. An
// empty file yields none.
//
// # Errors
//
// All read failures wrap ErrRead so callers can distinguish input problems
// from scoring or protocol failures with errors.Is.
package fragment
