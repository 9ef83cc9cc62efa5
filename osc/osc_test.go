package osc

const zero = string(byte(0))

// nulls returns a string of `i` nulls.
func nulls(i int) string {
	s := ""
	for j := 0; j < i; j++ {
		s += zero
	}
	return s
}

type testCase struct {
	name    string
	obj     Packet
	raw     []byte
	wantErr bool
}

var messageTestCases = []testCase{
	{
		"no_arguments",
		NewMessage("/"),
		[]byte("/" + nulls(3) + "," + nulls(3)),
		false,
	},
	{
		"int_and_string",
		NewMessage("/foo", Int32(42), String("hi")),
		[]byte("/foo" + nulls(4) + ",is" + nulls(1) + "\x00\x00\x00\x2a" + "hi" + nulls(2)),
		false,
	},
	{
		"float",
		NewMessage("/synth/1/freq", Float32(440)),
		[]byte("/synth/1/freq" + nulls(3) + ",f" + nulls(2) + "\x43\xdc\x00\x00"),
		false,
	},
	{
		"every_type",
		NewMessage("/all",
			Int32(-1),
			Float32(1.5),
			String("osc"),
			Blob{1, 2, 3, 4, 5},
			Int64(1<<40),
			Immediate,
			Double(0.25),
			Char('x'),
			Bool(true),
			Bool(false),
			Nil{},
			Infinitum{},
		),
		[]byte("/all" + nulls(4) +
			",ifsbhtdcTFNI" + nulls(3) +
			"\xff\xff\xff\xff" +
			"\x3f\xc0\x00\x00" +
			"osc" + nulls(1) +
			"\x00\x00\x00\x05" + "\x01\x02\x03\x04\x05" + nulls(3) +
			"\x00\x00\x01\x00\x00\x00\x00\x00" +
			nulls(7) + "\x01" +
			"\x3f\xd0\x00\x00\x00\x00\x00\x00" +
			"\x00\x00\x00x"),
		false,
	},
	{
		"empty_string_and_blob",
		NewMessage("/e", String(""), Blob{}),
		[]byte("/e" + nulls(2) + ",sb" + nulls(1) + nulls(4) + nulls(4)),
		false,
	},
	{
		"aligned_string",
		NewMessage("/abc", String("abcd")),
		[]byte("/abc" + nulls(4) + ",s" + nulls(2) + "abcd" + nulls(4)),
		false,
	},
}

var bundleTestCases = []testCase{
	{
		"empty",
		NewBundleWithTimetag(Immediate),
		[]byte("#bundle" + nulls(1) + nulls(7) + "\x01"),
		false,
	},
	{
		"one_message",
		NewBundleWithTimetag(Immediate, NewMessage("/a", Int32(1))),
		[]byte("#bundle" + nulls(1) + nulls(7) + "\x01" +
			"\x00\x00\x00\x0c" + "/a" + nulls(2) + ",i" + nulls(2) + "\x00\x00\x00\x01"),
		false,
	},
	{
		"nested",
		NewBundleWithTimetag(Timetag(0xe000000080000000),
			NewMessage("/a", Int32(1)),
			NewBundleWithTimetag(Immediate, NewMessage("/b")),
		),
		[]byte("#bundle" + nulls(1) + "\xe0\x00\x00\x00\x80\x00\x00\x00" +
			"\x00\x00\x00\x0c" + "/a" + nulls(2) + ",i" + nulls(2) + "\x00\x00\x00\x01" +
			"\x00\x00\x00\x1c" + "#bundle" + nulls(1) + nulls(7) + "\x01" +
			"\x00\x00\x00\x08" + "/b" + nulls(2) + "," + nulls(3)),
		false,
	},
}
