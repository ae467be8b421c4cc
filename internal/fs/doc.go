// Package fs provides the directory abstractions used to force directory
// metadata to stable storage, plus a fault injector for tests.
//
// The package defines two key interfaces:
//
//   - [Dir]: an open directory handle that can be synced and closed
//   - [FileSystem]: opens and lists directories
//
// # Implementations
//
//   - [LocalFS]: production implementation backed by the platform strategy
//   - [FaultyFS]: test utility for fault injection (fail open, sync or close)
//
// # Platform Support
//
// Exactly one strategy is compiled per target:
//
//   - Unix (Linux, macOS, BSD): open(2) with O_RDONLY|O_DIRECTORY, then fsync(2)
//   - Windows: CreateFile with GENERIC_WRITE and FILE_FLAG_BACKUP_SEMANTICS,
//     then FlushFileBuffers
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// A directory sync blocks in the kernel until the device acknowledges it and
// cannot be interrupted at the syscall level.
package fs
