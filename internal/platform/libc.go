package platform

import (
	"bytes"
	"debug/elf"
	"path/filepath"
	"strings"
)

// Libc names the C library that dynamically linked programs use on a Linux host.
type Libc string

const (
	Glibc Libc = "glibc"
	Musl  Libc = "musl"
)

// EngineLibc is the C library the prebuilt Linux engine libraries link against.
// They fail to load on a musl host even when the machine variant matches.
const EngineLibc = Glibc

// DetectLibc returns the C library of the running Linux system.
//
// Detection examines the ELF interpreter of /bin/sh, which definitively
// identifies the system's libc. Falls back to checking for the musl
// dynamic linker at /lib/ld-musl-*.so.1 if ELF parsing fails.
func DetectLibc() Libc {
	if libc := detectLibcFromBinary("/bin/sh"); libc != "" {
		return libc
	}
	return DetectLibcWithRoot("")
}

// detectLibcFromBinary reads the ELF interpreter from a binary.
// Returns "" when path is not a dynamically linked ELF file.
func detectLibcFromBinary(path string) Libc {
	f, err := elf.Open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	for _, prog := range f.Progs {
		if prog.Type != elf.PT_INTERP {
			continue
		}
		data := make([]byte, prog.Filesz)
		if _, err := prog.ReadAt(data, 0); err != nil {
			return ""
		}
		interp := string(bytes.TrimRight(data, "\x00"))
		if strings.Contains(interp, "musl") {
			return Musl
		}
		return Glibc
	}
	// static binary
	return ""
}

// DetectLibcWithRoot looks for the musl dynamic linker below root
// (e.g. lib/ld-musl-armhf.so.1) and assumes glibc when there is none.
// An empty root uses the real filesystem root.
func DetectLibcWithRoot(root string) Libc {
	pattern := filepath.Join(root, "lib", "ld-musl-*.so.1")
	if matches, _ := filepath.Glob(pattern); len(matches) > 0 {
		return Musl
	}
	return Glibc
}
