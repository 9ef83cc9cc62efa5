package main

import (
	"bytes"
	"encoding/hex"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/chabad360/go-osc/v2/internal/packetfile"
)

func encodeCmd(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	var hexOutput bool
	var outputPath string

	flagSet := pflag.NewFlagSet("encode", pflag.ContinueOnError)
	flagSet.BoolVarP(&hexOutput, "hex", "x", false, "write hex instead of raw bytes")
	flagSet.StringVarP(&outputPath, "output", "o", "", "write to this file instead of stdout")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	doc, err := readInput(flagSet.Args(), stdin, false)
	if err != nil {
		return err
	}

	p, err := packetfile.Load(bytes.NewReader(doc))
	if err != nil {
		return err
	}

	data, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	logger.Debug("encoded packet", "bytes", len(data))

	if hexOutput {
		data = []byte(hex.EncodeToString(data) + "\n")
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0o644)
	}
	_, err = stdout.Write(data)
	return err
}
