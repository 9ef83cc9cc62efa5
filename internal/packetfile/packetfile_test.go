package packetfile

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chabad360/go-osc/v2/osc"
)

func TestLoad_Message(t *testing.T) {
	doc := `
address: /synth/1/freq
args:
  - {type: f, value: 440}
  - {type: s, value: hello world}
  - {type: i, value: -7}
  - {type: h, value: 0x100000000}
  - {type: d, value: 0.25}
  - {type: b, value: "de ad be ef"}
  - {type: c, value: x}
  - {type: char, value: "0x07"}
  - {type: T}
  - {type: F}
  - {type: N}
  - {type: infinitum}
  - {type: t, value: immediate}
`
	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	want := osc.NewMessage("/synth/1/freq",
		osc.Float32(440),
		osc.String("hello world"),
		osc.Int32(-7),
		osc.Int64(1<<32),
		osc.Double(0.25),
		osc.Blob{0xde, 0xad, 0xbe, 0xef},
		osc.Char('x'),
		osc.Char(7),
		osc.Bool(true),
		osc.Bool(false),
		osc.Nil{},
		osc.Infinitum{},
		osc.Immediate,
	)
	assert.Equal(t, want, p)
}

func TestLoad_Bundle(t *testing.T) {
	doc := `
bundle:
  time: 2024-03-01T12:30:15.5Z
  elements:
    - address: /a
      args: [{type: i, value: 1}]
    - bundle:
        time: immediate
        elements:
          - address: /b
`
	p, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	at := time.Date(2024, time.March, 1, 12, 30, 15, 500000000, time.UTC)
	want := osc.NewBundleWithTime(at,
		osc.NewMessage("/a", osc.Int32(1)),
		osc.NewBundleWithTimetag(osc.Immediate, osc.NewMessage("/b")),
	)
	assert.Equal(t, want, p)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"unknown_field", "address: /a\ncolor: red\n"},
		{"no_address", "args: [{type: i, value: 1}]\n"},
		{"both", "address: /a\nbundle: {time: now}\n"},
		{"bad_type", "address: /a\nargs: [{type: q, value: 1}]\n"},
		{"bad_int", "address: /a\nargs: [{type: i, value: one}]\n"},
		{"int32_overflow", "address: /a\nargs: [{type: i, value: 4294967296}]\n"},
		{"bad_blob", "address: /a\nargs: [{type: b, value: xyz}]\n"},
		{"bad_char", "address: /a\nargs: [{type: c, value: ab}]\n"},
		{"bad_time", "bundle: {time: tomorrow}\n"},
		{"bad_element", "bundle: {elements: [{args: []}]}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseType_InvalidTag(t *testing.T) {
	_, err := Arg{Type: "q"}.OSCValue()
	assert.ErrorIs(t, err, osc.ErrInvalidTag)
}

func TestTime(t *testing.T) {
	tt, err := ParseTime("now")
	require.NoError(t, err)
	assert.Zero(t, tt.ExpiresIn())

	tt, err = ParseTime("0x0000000100000001")
	require.NoError(t, err)
	assert.Equal(t, osc.Timetag(0x0000000100000001), tt)
	assert.Equal(t, "0x0000000100000001", FormatTime(tt))

	at := time.Date(2001, time.September, 9, 1, 46, 40, 0, time.UTC)
	assert.Equal(t, "2001-09-09T01:46:40Z", FormatTime(osc.NewTimetagFromTime(at)))
	assert.Equal(t, "immediate", FormatTime(osc.Immediate))
}

func TestMarshal_RoundTrip(t *testing.T) {
	at := time.Date(2020, time.January, 2, 3, 4, 5, 6, time.UTC)
	p := osc.NewBundleWithTime(at,
		osc.NewMessage("/m",
			osc.Int32(-1), osc.Float32(0.1), osc.String("a: b"), osc.Blob{1, 2},
			osc.Int64(-1<<40), osc.Timetag(0xdeadbeef), osc.Double(1e-300),
			osc.Char(' '), osc.Char('z'), osc.Bool(true), osc.Nil{}, osc.Infinitum{}),
		osc.NewBundleWithTimetag(osc.Immediate),
	)

	data, err := Marshal(p)
	require.NoError(t, err)

	got, err := Load(strings.NewReader(string(data)))
	require.NoError(t, err, string(data))
	assert.Equal(t, p, got)
}

func TestMarshal_RoundTripAwkwardValues(t *testing.T) {
	msg := osc.NewMessage("/s",
		osc.String("\xff\xfe"),
		osc.String("null"),
		osc.String("~"),
		osc.String("0x10"),
		osc.String("  padded  "),
		osc.Char(0),
		osc.Char(0xff),
	)

	doc, err := Marshal(msg)
	require.NoError(t, err)

	got, err := Load(strings.NewReader(string(doc)))
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestArg_OSCValue(t *testing.T) {
	v, err := Arg{Type: "I"}.OSCValue()
	require.NoError(t, err)
	assert.Equal(t, osc.Infinitum{}, v)

	_, err = Arg{Type: "infinity"}.OSCValue()
	assert.ErrorIs(t, err, osc.ErrInvalidTag)
}
