// Package testkit builds class files, archives and project layouts for tests.
package testkit

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Member is a field or method record
type Member struct {
	Name  string
	Flags uint16
}

// Class describes a class file to assemble
type Class struct {
	Name    string // binary name, e.g. com/a/Outer$Inner
	Super   string // empty for none
	Fields  []Member
	Methods []Member
}

type pool struct {
	buf   bytes.Buffer
	count uint16
	utf8  map[string]uint16
}

func (p *pool) addUtf8(s string) uint16 {
	if idx, ok := p.utf8[s]; ok {
		return idx
	}
	p.count++
	p.buf.WriteByte(1)
	_ = binary.Write(&p.buf, binary.BigEndian, uint16(len(s)))
	p.buf.WriteString(s)
	p.utf8[s] = p.count
	return p.count
}

func (p *pool) addClass(name string) uint16 {
	nameIdx := p.addUtf8(name)
	p.count++
	p.buf.WriteByte(7)
	_ = binary.Write(&p.buf, binary.BigEndian, nameIdx)
	return p.count
}

// Bytes assembles the class file, a long constant is included to exercise two slot entries
func (c Class) Bytes() []byte {
	p := &pool{utf8: map[string]uint16{}}
	// constant pool indexes start at 1
	thisIdx := p.addClass(c.Name)
	var superIdx uint16
	if c.Super != "" {
		superIdx = p.addClass(c.Super)
	}
	p.buf.WriteByte(5)
	_ = binary.Write(&p.buf, binary.BigEndian, uint64(42))
	p.count += 2
	descriptor := p.addUtf8("()V")
	code := p.addUtf8("Code")
	members := func(ms []Member) []byte {
		var b bytes.Buffer
		_ = binary.Write(&b, binary.BigEndian, uint16(len(ms)))
		for _, m := range ms {
			_ = binary.Write(&b, binary.BigEndian, m.Flags)
			_ = binary.Write(&b, binary.BigEndian, p.addUtf8(m.Name))
			_ = binary.Write(&b, binary.BigEndian, descriptor)
			_ = binary.Write(&b, binary.BigEndian, uint16(1))
			_ = binary.Write(&b, binary.BigEndian, code)
			_ = binary.Write(&b, binary.BigEndian, uint32(3))
			b.Write([]byte{0, 1, 2})
		}
		return b.Bytes()
	}
	fields := members(c.Fields)
	methods := members(c.Methods)

	var out bytes.Buffer
	_ = binary.Write(&out, binary.BigEndian, uint32(0xCAFEBABE))
	_ = binary.Write(&out, binary.BigEndian, uint16(0))
	_ = binary.Write(&out, binary.BigEndian, uint16(61))
	_ = binary.Write(&out, binary.BigEndian, p.count+1)
	out.Write(p.buf.Bytes())
	_ = binary.Write(&out, binary.BigEndian, uint16(0x0021))
	_ = binary.Write(&out, binary.BigEndian, thisIdx)
	_ = binary.Write(&out, binary.BigEndian, superIdx)
	_ = binary.Write(&out, binary.BigEndian, uint16(0))
	out.Write(fields)
	out.Write(methods)
	_ = binary.Write(&out, binary.BigEndian, uint16(0))
	return out.Bytes()
}

// WriteJar writes an archive holding entries, class entries are assembled from classes
func WriteJar(t testing.TB, path string, classes []Class, extra map[string][]byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := zip.NewWriter(f)
	write := func(name string, data []byte) {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err = entry.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	for _, c := range classes {
		write(c.Name+".class", c.Bytes())
	}
	for name, data := range extra {
		write(name, data)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}
}

// WriteFiles writes files relative to root
func WriteFiles(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}
