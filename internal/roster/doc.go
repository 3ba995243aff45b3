// Package roster holds the list side of dexter: the ordered, duplicate-free
// Collection of tracked entries and the concurrent initial load that seeds it.
//
// A Collection is not safe for concurrent use. In dexter it is owned by the
// bubbletea model and only mutated from Update; network work happens in
// commands that report back with messages.
package roster
