//go:build ignore

package main

import (
	"fmt"
	"go/format"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// unknownRevision is stamped when the source isn't a git checkout
const unknownRevision = "unknown"

func gitRevision() string {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Printf("git rev-parse failed, stamping %q. Error: %s", unknownRevision, err)
		return unknownRevision
	}
	return strings.TrimSpace(string(out))
}

// //////////////////////////////////////////////////////////////////////////////
//
// _ __  __ _(_)_ _
// | '  \/ _` | | ' \
// |_|_|_\__,_|_|_||_|
//
// //////////////////////////////////////////////////////////////////////////////
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Provide output directory as only command line argument")
	}
	absOutputPath, absOutputPathErr := filepath.Abs(os.Args[1])
	if absOutputPathErr != nil {
		log.Fatalf("Failed to get absolute output path. Error: %s", absOutputPathErr)
	}
	log.Printf("Output directory for buildinfo.go: %s", absOutputPath)

	source := fmt.Sprintf(`// Code generated by buildinfo-extractor.go; DO NOT EDIT.
// Generated: %s

//go:generate go run ./script/buildinfo-extractor.go .

package buildinfo

var VERSION_INFO = %q

// BuildInfo returns the git revision the binary was built from.
func BuildInfo() string {
	return VERSION_INFO
}
`,
		time.Now().Format(time.RFC3339),
		gitRevision())

	formatted, formatErr := format.Source([]byte(source))
	if formatErr != nil {
		log.Fatalf("Failed to format buildinfo.go. Error: %s", formatErr)
	}
	outputFile := filepath.Join(absOutputPath, "buildinfo.go")
	writeErr := os.WriteFile(outputFile, formatted, 0644)
	if writeErr != nil {
		log.Fatalf("Failed to create output file: %s. Error: %s", outputFile, writeErr)
	}
	log.Printf("Created output file: %s", outputFile)
}
