// Package dirforce forces pending directory metadata changes to stable storage.
//
// Writing a file and calling Sync makes its contents durable, but the
// directory entry that names it (created, removed or renamed) lives in the
// parent directory and is only durable once that directory is synced as well.
// A transactional layer calls dirforce immediately before it considers a
// commit complete.
//
// # Quick Start
//
//	if err := dirforce.ForceDirectories([]string{"/data/txlogs", "/data/store"}); err != nil {
//	    var fe *dirforce.FlushError
//	    if errors.As(err, &fe) {
//	        log.Printf("commit not durable: %s (%s)", fe.Path, fe.Cause)
//	    }
//	}
//
// # Contract
//
// Directories are flushed strictly in the order given, one at a time. The
// first failure stops the batch and is reported as a [*FlushError] carrying
// the failing path, its index and the [Cause]: [OpenFailed] when the
// directory could not be opened, [FlushFailed] when the flush call itself
// failed. Directories after the failing one are never touched. Nothing is
// retried; the caller owns retry policy.
//
// A successful batch guarantees that every listed directory was flushed. It
// does not make the batch atomic: a crash between two directories leaves the
// earlier ones durable and the later ones not.
//
// # Platform Support
//
// The flush strategy is chosen at build time:
//
//   - Unix (Linux, macOS, BSD): open(2) read-only followed by fsync(2)
//   - Windows: CreateFile with FILE_FLAG_BACKUP_SEMANTICS followed by FlushFileBuffers
//
// # Thread Safety
//
// A [Forcer] holds no mutable state and may be shared by any number of
// goroutines. Concurrent batches touching the same directory get whatever
// ordering the operating system provides; callers needing a total order
// across commits must serialize above this package.
package dirforce
