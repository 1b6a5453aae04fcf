// Package resource resolves the files the voice engines load at startup.
//
// An install tree holds one native library build per platform class, a
// platform independent model file per engine, and two collections of named
// resource files (speech contexts and wake-word keywords) with one directory
// per platform class. Named resource files follow a "<name>_<suffix>"
// convention, so "coffee_linux.pv" is the "coffee" context.
//
// Layout describes where those files live; Locator applies a Layout to an
// install root and a platform.Identity.
package resource

// Engine names a voice engine.
type Engine string

// Engines shipped in the install tree.
const (
	// Speech is the speech-to-intent engine (rhino).
	Speech Engine = "rhino"
	// WakeWord is the wake-word engine (porcupine).
	WakeWord Engine = "porcupine"
)

// Engines lists every engine in a stable order.
var Engines = []Engine{Speech, WakeWord}

// Collection names a family of named resource files.
type Collection string

// Named resource collections.
const (
	// Contexts are the speech engine's context files.
	Contexts Collection = "contexts"
	// Keywords are the wake-word engine's keyword files.
	Keywords Collection = "keywords"
)

// Collections lists every collection in a stable order.
var Collections = []Collection{Contexts, Keywords}
