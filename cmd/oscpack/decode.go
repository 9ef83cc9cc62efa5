package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/chabad360/go-osc/v2/internal/packetfile"
	"github.com/chabad360/go-osc/v2/osc"
)

func decodeCmd(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	var hexInput, yamlOutput bool

	flagSet := pflag.NewFlagSet("decode", pflag.ContinueOnError)
	flagSet.BoolVarP(&hexInput, "hex", "x", false, "treat input as hex-encoded bytes")
	flagSet.BoolVarP(&yamlOutput, "yaml", "y", false, "print the packet as a YAML description")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	data, err := readInput(flagSet.Args(), stdin, hexInput)
	if err != nil {
		return err
	}
	logger.Debug("decoding packet", "bytes", len(data))

	p, err := osc.ParsePacket(data)
	if err != nil {
		return err
	}

	if yamlOutput {
		out, err := packetfile.Marshal(p)
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}

	printPacket(stdout, p, 0)
	return nil
}

// printPacket writes one line per packet, indenting bundle elements.
func printPacket(w io.Writer, packet osc.Packet, depth int) {
	indent := strings.Repeat("\t", depth)

	switch p := packet.(type) {
	default:
		fmt.Fprintf(w, "%sUnknown packet type!\n", indent)

	case *osc.Message:
		fmt.Fprintf(w, "%s-- OSC Message:\tAddress: %q\tTypeTags: %q\tArguments: %v\n", indent, p.Address, p.TypeTags(), p.Arguments)

	case *osc.Bundle:
		fmt.Fprintf(w, "%s-- OSC Bundle:\tTimeTag: %v\tElements: %d\n", indent, p.Timetag, len(p.Elements))
		for _, e := range p.Elements {
			printPacket(w, e, depth+1)
		}
	}
}
