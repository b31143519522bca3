// Svclog - Service Logging Initialization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/svclog

package logging

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Render formats m as single-line protobuf text, in field number order.
// Bytes fields are rendered with ToHex so binary payloads never break a
// log line:
//
//	id: "0x00ff0a" height: 42 header { signer: "0x1f2e" }
//
// A nil message renders as the empty string.
func Render(m proto.Message) string {
	if m == nil {
		return ""
	}
	msg := m.ProtoReflect()
	if !msg.IsValid() {
		return ""
	}

	var b strings.Builder
	writeMessage(&b, msg)
	return b.String()
}

// Message adapts m to fmt.Stringer for use with zerolog's Stringer fields:
//
//	logging.Info().Stringer("block", logging.Message(b)).Msg("applied")
func Message(m proto.Message) fmt.Stringer {
	return messageStringer{m: m}
}

type messageStringer struct {
	m proto.Message
}

func (s messageStringer) String() string {
	return Render(s.m)
}

func writeMessage(b *strings.Builder, msg protoreflect.Message) {
	fields := msg.Descriptor().Fields()
	ordered := make([]protoreflect.FieldDescriptor, 0, fields.Len())
	for i := 0; i < fields.Len(); i++ {
		fd := fields.Get(i)
		if msg.Has(fd) {
			ordered = append(ordered, fd)
		}
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Number() < ordered[j].Number()
	})

	for _, fd := range ordered {
		v := msg.Get(fd)
		switch {
		case fd.IsList():
			list := v.List()
			for i := 0; i < list.Len(); i++ {
				writeField(b, fd.TextName(), fd, list.Get(i))
			}
		case fd.IsMap():
			writeMap(b, fd, v.Map())
		default:
			writeField(b, fd.TextName(), fd, v)
		}
	}
}

func writeMap(b *strings.Builder, fd protoreflect.FieldDescriptor, m protoreflect.Map) {
	keys := make([]protoreflect.MapKey, 0, m.Len())
	m.Range(func(k protoreflect.MapKey, _ protoreflect.Value) bool {
		keys = append(keys, k)
		return true
	})
	sort.Slice(keys, func(i, j int) bool {
		return mapKeyLess(keys[i], keys[j])
	})

	keyFD := fd.MapKey()
	valFD := fd.MapValue()
	for _, k := range keys {
		separate(b)
		b.WriteString(fd.TextName())
		b.WriteString(" {")
		writeField(b, "key", keyFD, k.Value())
		writeField(b, "value", valFD, m.Get(k))
		b.WriteString(" }")
	}
}

func mapKeyLess(a, b protoreflect.MapKey) bool {
	switch av := a.Interface().(type) {
	case string:
		return av < b.String()
	case bool:
		return !av && b.Bool()
	case int32, int64:
		return a.Int() < b.Int()
	default:
		return a.Uint() < b.Uint()
	}
}

func writeField(b *strings.Builder, name string, fd protoreflect.FieldDescriptor, v protoreflect.Value) {
	separate(b)
	b.WriteString(name)

	if fd.Kind() == protoreflect.MessageKind || fd.Kind() == protoreflect.GroupKind {
		b.WriteString(" {")
		inner := strings.Builder{}
		writeMessage(&inner, v.Message())
		if inner.Len() > 0 {
			b.WriteByte(' ')
			b.WriteString(inner.String())
		}
		b.WriteString(" }")
		return
	}

	b.WriteString(": ")
	b.WriteString(scalarText(fd, v))
}

// separate writes a space between tokens on the same line.
func separate(b *strings.Builder) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
}

func scalarText(fd protoreflect.FieldDescriptor, v protoreflect.Value) string {
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return strconv.FormatBool(v.Bool())
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return strconv.FormatInt(v.Int(), 10)
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return strconv.FormatUint(v.Uint(), 10)
	case protoreflect.FloatKind:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case protoreflect.DoubleKind:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case protoreflect.StringKind:
		return strconv.Quote(v.String())
	case protoreflect.BytesKind:
		return strconv.Quote(ToHex(v.Bytes()))
	case protoreflect.EnumKind:
		if ev := fd.Enum().Values().ByNumber(v.Enum()); ev != nil {
			return string(ev.Name())
		}
		return strconv.FormatInt(int64(v.Enum()), 10)
	default:
		return v.String()
	}
}
