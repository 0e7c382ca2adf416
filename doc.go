// Package incfg manages program configuration options as named, typed
// key-value pairs that register themselves before main runs.
//
// Features:
//   - Options declared once, anywhere, via Require; registration happens
//     during package initialization
//   - Typed handles with compile-time checked access (no string lookup at
//     call sites)
//   - Human-editable configuration text with descriptions and commented-out
//     defaults, round-trippable through the loaders
//   - Three load paths: io.Reader, string, and command-line arguments
//   - Supplemental file, environment, and struct-decoding layers
//   - Thread-safe operations using sync.RWMutex
//
// Quick Start:
//
//	var (
//	    bufferSize = incfg.Require("BUFFER_SIZE", 4096, "Buffer size used to write the log file")
//	    debugLog   = incfg.Require("DEBUG_LOG", false, "Enable verbose debug")
//	    logFile    = incfg.Require("LOGFILENAME", "log.txt", "Default log filename")
//	)
//
//	func main() {
//	    if err := incfg.LoadArgs(os.Args); err != nil {
//	        log.Fatal(err)
//	    }
//	    buf := make([]byte, bufferSize.Get())
//	    if debugLog.Get() {
//	        // ...
//	    }
//	    _ = logFile.Get()
//	}
//
// Configuration text format:
//
//	# Buffer size used to write the log file
//	#
//	#BUFFER_SIZE=4096
//
//	# Enable verbose debug
//	#
//	DEBUG_LOG=true
//
// A leading '#' on a key=value line marks the option as still holding its
// default; options that have been explicitly set are written uncommented.
// String values are always quoted on output, and a quoted value keeps its
// interior and edge spaces when loaded back.
//
// Command-line form: --NAME VALUE for every type except bool, whose mere
// presence as --NAME sets it to true.
//
// Thread Safety:
// All operations are safe for concurrent use. The registry map and each
// option value are guarded by read-write mutexes. Loads are not atomic with
// respect to each other: a load that fails midway leaves earlier assignments
// in place.
package incfg
