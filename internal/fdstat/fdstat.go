// Package fdstat detects foreign output on the tty by comparing file
// status snapshots of stdout/stderr taken before and after a render. It is
// deliberately coarse (device/inode/size/mtime, no content inspection) —
// portable across the platforms golang.org/x/sys/unix supports, at the
// cost of missing a write that happens not to change size or mtime within
// the OS's timestamp resolution.
package fdstat

import "golang.org/x/sys/unix"

// Snapshot is a point-in-time file status read off a descriptor.
type Snapshot struct {
	valid bool
	dev   uint64
	ino   uint64
	size  int64
	mtime int64
}

// Take stats fd and returns its snapshot. A failed stat (descriptor
// closed or invalid) yields an invalid snapshot that never
// compares equal to anything, including another invalid one, so a failure
// to stat conservatively looks like foreign output occurred.
func Take(fd int) Snapshot {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return Snapshot{}
	}
	return Snapshot{
		valid: true,
		dev:   uint64(st.Dev),
		ino:   uint64(st.Ino),
		size:  int64(st.Size),
		mtime: int64(st.Mtim.Sec)*1e9 + int64(st.Mtim.Nsec),
	}
}

// Equal reports whether two snapshots describe the same file state.
func (s Snapshot) Equal(other Snapshot) bool {
	if !s.valid || !other.valid {
		return false
	}
	return s.dev == other.dev && s.ino == other.ino && s.size == other.size && s.mtime == other.mtime
}

// Pair holds the before/after snapshots taken around a single render.
type Pair struct {
	Before Snapshot
	After  Snapshot
}

// TakePair stats fd for use as the "before" half of a render.
func TakePair(fd int) Pair {
	return Pair{Before: Take(fd)}
}

// CompleteAfterWrite fills in the "after" half once the render has
// flushed.
func (p *Pair) CompleteAfterWrite(fd int) {
	p.After = Take(fd)
}

// ForeignOutputSince reports whether fd's current state no longer matches
// the stored "after" snapshot from the previous render, meaning some other
// process wrote to the descriptor in between.
func (p Pair) ForeignOutputSince(fd int) bool {
	if !p.After.valid {
		return false // no previous render to compare against
	}
	return !p.After.Equal(Take(fd))
}
