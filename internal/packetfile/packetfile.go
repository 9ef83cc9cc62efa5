// Package packetfile describes OSC packets as YAML documents so they can be
// written by hand and turned into wire bytes, or decoded from the wire and
// printed.
//
// A message:
//
//	address: /synth/1/freq
//	args:
//	  - {type: f, value: 440}
//	  - {type: s, value: hello}
//
// A bundle:
//
//	bundle:
//	  time: immediate
//	  elements:
//	    - address: /a
//	      args: [{type: i, value: 1}]
//
// Argument types are the OSC type tag characters. Blobs are hex strings,
// chars are a single character or a number such as 0x07, and T, F, N and I
// take no value. Times are "immediate", "now", an RFC 3339 timestamp or a raw
// 64-bit NTP value such as 0x0000000100000000.
package packetfile

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chabad360/go-osc/v2/osc"
)

// Node is either a message (Address and Args) or a bundle.
type Node struct {
	Address string      `yaml:"address,omitempty"`
	Args    []Arg       `yaml:"args,omitempty"`
	Bundle  *BundleNode `yaml:"bundle,omitempty"`
}

// BundleNode is the body of a bundle document.
type BundleNode struct {
	Time     string `yaml:"time,omitempty"`
	Elements []Node `yaml:"elements,omitempty"`
}

// Arg is a single message argument.
type Arg struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value,omitempty"`
}

// Long names accepted in place of tag characters.
var typeNames = map[string]osc.TypeTag{
	"int32":     osc.TypeInt32,
	"float32":   osc.TypeFloat32,
	"float":     osc.TypeFloat32,
	"string":    osc.TypeString,
	"blob":      osc.TypeBlob,
	"int64":     osc.TypeInt64,
	"timetag":   osc.TypeTimeTag,
	"double":    osc.TypeFloat64,
	"float64":   osc.TypeFloat64,
	"char":      osc.TypeChar,
	"true":      osc.TypeTrue,
	"false":     osc.TypeFalse,
	"nil":       osc.TypeNil,
	"infinitum": osc.TypeInfinitum,
}

// Load reads a single YAML document from r and builds the packet it
// describes.
func Load(r io.Reader) (osc.Packet, error) {
	var n Node
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("packetfile: empty document")
		}
		return nil, fmt.Errorf("packetfile: %w", err)
	}
	return n.Packet()
}

// Marshal returns the YAML description of p.
func Marshal(p osc.Packet) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FromPacket(p)); err != nil {
		return nil, fmt.Errorf("packetfile: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("packetfile: %w", err)
	}
	return buf.Bytes(), nil
}

// Packet converts the node into an OSC message or bundle.
func (n Node) Packet() (osc.Packet, error) {
	if n.Bundle != nil {
		if n.Address != "" || len(n.Args) > 0 {
			return nil, fmt.Errorf("packetfile: node has both a bundle and an address")
		}
		return n.Bundle.packet()
	}

	if n.Address == "" {
		return nil, fmt.Errorf("packetfile: node has neither a bundle nor an address")
	}

	msg := osc.NewMessage(n.Address)
	for i, a := range n.Args {
		v, err := a.OSCValue()
		if err != nil {
			return nil, fmt.Errorf("packetfile: %s argument %d: %w", n.Address, i, err)
		}
		msg.Append(v)
	}
	return msg, nil
}

func (b *BundleNode) packet() (*osc.Bundle, error) {
	tt, err := ParseTime(b.Time)
	if err != nil {
		return nil, fmt.Errorf("packetfile: bundle time: %w", err)
	}

	bundle := osc.NewBundleWithTimetag(tt)
	for _, e := range b.Elements {
		p, err := e.Packet()
		if err != nil {
			return nil, err
		}
		bundle.Append(p)
	}
	return bundle, nil
}

// OSCValue converts the argument into an OSC value.
func (a Arg) OSCValue() (osc.Value, error) {
	tag, err := parseType(a.Type)
	if err != nil {
		return nil, err
	}

	switch tag {
	case osc.TypeInt32:
		i, err := strconv.ParseInt(a.Value, 0, 32)
		if err != nil {
			return nil, err
		}
		return osc.Int32(i), nil

	case osc.TypeFloat32:
		f, err := strconv.ParseFloat(a.Value, 32)
		if err != nil {
			return nil, err
		}
		return osc.Float32(f), nil

	case osc.TypeString:
		if strings.IndexByte(a.Value, 0) != -1 {
			return nil, fmt.Errorf("string contains a NUL byte")
		}
		return osc.String(a.Value), nil

	case osc.TypeBlob:
		data, err := hex.DecodeString(strings.Join(strings.Fields(a.Value), ""))
		if err != nil {
			return nil, err
		}
		return osc.Blob(data), nil

	case osc.TypeInt64:
		i, err := strconv.ParseInt(a.Value, 0, 64)
		if err != nil {
			return nil, err
		}
		return osc.Int64(i), nil

	case osc.TypeTimeTag:
		return ParseTime(a.Value)

	case osc.TypeFloat64:
		f, err := strconv.ParseFloat(a.Value, 64)
		if err != nil {
			return nil, err
		}
		return osc.Double(f), nil

	case osc.TypeChar:
		if len(a.Value) == 1 {
			return osc.Char(a.Value[0]), nil
		}
		c, err := strconv.ParseUint(a.Value, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("char must be one character or a number: %w", err)
		}
		return osc.Char(c), nil

	case osc.TypeTrue:
		return osc.Bool(true), nil
	case osc.TypeFalse:
		return osc.Bool(false), nil
	case osc.TypeNil:
		return osc.Nil{}, nil
	case osc.TypeInfinitum:
		return osc.Infinitum{}, nil
	}

	return nil, fmt.Errorf("type %q: %w", a.Type, osc.ErrInvalidTag)
}

func parseType(s string) (osc.TypeTag, error) {
	if len(s) == 1 && osc.TypeTag(s[0]).IsValid() {
		return osc.TypeTag(s[0]), nil
	}
	if tag, ok := typeNames[strings.ToLower(s)]; ok {
		return tag, nil
	}
	return osc.TypeInvalid, fmt.Errorf("type %q: %w", s, osc.ErrInvalidTag)
}

// ParseTime parses a time tag: "immediate", "now" (or empty), an RFC 3339
// timestamp or a raw integer.
func ParseTime(s string) (osc.Timetag, error) {
	switch strings.ToLower(s) {
	case "immediate":
		return osc.Immediate, nil
	case "", "now":
		return osc.NewTimetag(), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return osc.NewTimetagFromTime(t), nil
	}

	raw, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("time %q is not immediate, now, RFC 3339 or an integer", s)
	}
	return osc.Timetag(raw), nil
}

// FormatTime is the inverse of ParseTime. Time tags that a time.Time can
// represent exactly are printed as RFC 3339, others as a raw hex value.
func FormatTime(tt osc.Timetag) string {
	if tt.IsImmediate() {
		return "immediate"
	}
	if t := tt.Time(); osc.NewTimetagFromTime(t) == tt {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return fmt.Sprintf("0x%016x", uint64(tt))
}

// FromPacket returns the YAML node describing p.
func FromPacket(p osc.Packet) Node {
	switch p := p.(type) {
	case *osc.Bundle:
		b := &BundleNode{Time: FormatTime(p.Timetag)}
		for _, e := range p.Elements {
			b.Elements = append(b.Elements, FromPacket(e))
		}
		return Node{Bundle: b}

	case *osc.Message:
		n := Node{Address: p.Address}
		for _, v := range p.Arguments {
			n.Args = append(n.Args, fromValue(v))
		}
		return n
	}
	return Node{}
}

func fromValue(v osc.Value) Arg {
	a := Arg{Type: v.TypeTag().String()}

	switch v := v.(type) {
	case osc.Int32, osc.Float32, osc.String, osc.Int64, osc.Double:
		a.Value = fmt.Sprint(v)
	case osc.Blob:
		a.Value = hex.EncodeToString(v)
	case osc.Timetag:
		a.Value = FormatTime(v)
	case osc.Char:
		if v > ' ' && v < 0x7f {
			a.Value = string(rune(v))
		} else {
			a.Value = fmt.Sprintf("0x%02x", byte(v))
		}
	}
	return a
}
