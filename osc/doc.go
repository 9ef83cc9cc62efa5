// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

//Package osc encodes and decodes OpenSoundControl packets.
//
//This implementation is based on the Open Sound Control 1.0 Specification (http://opensoundcontrol.org/spec-1_0.html).
//
//Open Sound Control (OSC) is an open, transport-independent, message-based protocol developed for communication among computers,
//sound synthesizers, and other multimedia devices. This package only deals with the bytes: sending them over UDP or TCP,
//dispatching messages to handlers and waiting for bundle time tags are left to the caller.
//
//Features
//
//- Supports OSC messages with the following TypeTags:
//
//	'i' (Int32)
//	'f' (Float32)
//	's' (String)
//	'b' (Blob)
//	'h' (Int64)
//	't' (Timetag)
//	'd' (Double)
//	'c' (Char)
//	'T' (Bool true)
//	'F' (Bool false)
//	'N' (Nil)
//	'I' (Infinitum)
//
//- Supports OSC bundles, including TimeTags and nested bundles
//
//Packets
//
//The unit of transmission of OSC is an OSC Packet. Any application that sends OSC Packets is an OSC Client;
//any application that receives OSC Packets is an OSC Server.
//
//An OSC packet consists of its contents, a contiguous block of binary data.
//The size of an OSC packet is always 32-bit aligned.
//
//OSC packets come in two flavors:
//
//OSC Messages: An OSC message consists of an OSC address pattern and  zero or more OSC arguments.
//
//OSC Bundles: An OSC Bundle consists of an OSC Timetag, followed by zero or more OSC bundle elements.
//Each bundle element can be another OSC bundle (note this recursive definition: a bundle may contain bundles) or OSC message.
//
//Usage
//
//Encoding:
//  msg := osc.NewMessage("/osc/address", osc.Int32(111), osc.Bool(true))
//  msg.Append(osc.String("hello"))
//  data, err := msg.MarshalBinary()
//
//  bundle := osc.NewBundle(msg, osc.NewMessage("/other", osc.Float32(0.5)))
//  data, err = bundle.MarshalBinary()
//
//Decoding:
//  p, err := osc.ParsePacket(data)
//  switch p := p.(type) {
//  case *osc.Message:
//      fmt.Println(p.Address, p.Arguments)
//  case *osc.Bundle:
//      fmt.Println(p.Timetag.Time(), len(p.Elements))
//  }
package osc
