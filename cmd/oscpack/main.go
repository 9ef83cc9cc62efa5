// oscpack converts OpenSoundControl packets between their wire encoding and
// a readable form.
//
// Usage:
//
//	oscpack decode [--hex] [--yaml] [file]
//	oscpack encode [--hex] [-o out] [file]
//	oscpack version
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Set up logging.
	logLevel := slog.LevelInfo
	if os.Getenv("OSCPACK_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "decode":
		err = decodeCmd(args, os.Stdin, os.Stdout, logger)
	case "encode":
		err = encodeCmd(args, os.Stdin, os.Stdout, logger)
	case "version", "--version", "-v":
		fmt.Printf("oscpack %s\n", version())
		return
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}

func printUsage() {
	fmt.Print(`oscpack - Encode and decode OpenSoundControl packets

USAGE
    oscpack <command> [flags] [file]

COMMANDS
    decode    Decode a binary packet and print it
    encode    Encode a YAML packet description
    version   Show version

Input is read from file if given, otherwise from stdin.

EXAMPLES
    # Show a captured packet
    oscpack decode packet.bin

    # Decode hex from a log line into YAML
    echo '2f 61 00 00 2c 69 00 00 00 00 00 01' | oscpack decode --hex --yaml

    # Build a packet and send it with netcat
    oscpack encode msg.yaml | nc -u -w0 127.0.0.1 8765

ENVIRONMENT
    OSCPACK_DEBUG   Enable debug logging
`)
}
