package classfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/viant/javaimports/info"
)

const magic uint32 = 0xCAFEBABE

// constant pool tags
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldRef           = 9
	tagMethodRef          = 10
	tagInterfaceMethodRef = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

// ErrBadMagic is returned when content does not start with the class file magic number
var ErrBadMagic = errors.New("not a class file")

// ErrBadName is returned for a binary class name holding no identifier
var ErrBadName = errors.New("invalid binary name")

type entry struct {
	tag   byte
	utf8  string
	index uint16
}

type decoder struct {
	r      *bufio.Reader
	offset int64
	pool   []entry
}

// Decode reads a compiled class and returns its public surface: class name, superclass and
// public or protected field and method names
func Decode(r io.Reader) (*info.ClassEntity, error) {
	d := &decoder{r: bufio.NewReader(r)}
	return d.decode()
}

func (d *decoder) decode() (*info.ClassEntity, error) {
	m, err := d.u4("magic")
	if err != nil {
		return nil, err
	}
	if m != magic {
		return nil, newDecodeError("magic", 0, ErrBadMagic)
	}
	if err = d.skip("version", 4); err != nil {
		return nil, err
	}
	if err = d.readPool(); err != nil {
		return nil, err
	}
	if _, err = d.u2("access flags"); err != nil {
		return nil, err
	}
	thisIndex, err := d.u2("this class")
	if err != nil {
		return nil, err
	}
	superIndex, err := d.u2("super class")
	if err != nil {
		return nil, err
	}
	name, err := d.className(thisIndex)
	if err != nil {
		return nil, err
	}
	selector, err := ToSelector(name, true)
	if err != nil {
		return nil, newDecodeError("this class", d.offset, err)
	}
	builder := info.NewClassEntityBuilder(selector)
	if superIndex != 0 {
		superName, err := d.className(superIndex)
		if err != nil {
			return nil, err
		}
		superSelector, err := ToSelector(superName, true)
		if err != nil {
			return nil, newDecodeError("super class", d.offset, err)
		}
		builder.Extends(info.ResolvedSuperclass(info.NewImport(superSelector, false)))
	}
	interfaces, err := d.u2("interfaces count")
	if err != nil {
		return nil, err
	}
	if err = d.skip("interfaces", int(interfaces)*2); err != nil {
		return nil, err
	}
	for _, table := range []string{"fields", "methods"} {
		if err = d.readMembers(table, builder); err != nil {
			return nil, err
		}
	}
	return builder.Build(), nil
}

func (d *decoder) readPool() error {
	count, err := d.u2("constant pool count")
	if err != nil {
		return err
	}
	d.pool = make([]entry, count)
	for i := 1; i < int(count); i++ {
		tag, err := d.u1("constant tag")
		if err != nil {
			return err
		}
		e := entry{tag: tag}
		switch tag {
		case tagUtf8:
			size, err := d.u2("utf8 length")
			if err != nil {
				return err
			}
			data, err := d.bytes("utf8", int(size))
			if err != nil {
				return err
			}
			e.utf8 = string(data)
		case tagClass:
			if e.index, err = d.u2("class name index"); err != nil {
				return err
			}
		case tagString, tagMethodType, tagModule, tagPackage:
			err = d.skip("constant", 2)
		case tagMethodHandle:
			err = d.skip("constant", 3)
		case tagInteger, tagFloat, tagFieldRef, tagMethodRef, tagInterfaceMethodRef, tagNameAndType, tagDynamic, tagInvokeDynamic:
			err = d.skip("constant", 4)
		case tagLong, tagDouble:
			err = d.skip("constant", 8)
		default:
			return newDecodeError("constant pool", d.offset, fmt.Errorf("unknown tag %d at index %d", tag, i))
		}
		if err != nil {
			return err
		}
		d.pool[i] = e
		if tag == tagLong || tag == tagDouble {
			i++
		}
	}
	return nil
}

func (d *decoder) readMembers(table string, builder *info.ClassEntityBuilder) error {
	count, err := d.u2(table + " count")
	if err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		flags, err := d.u2(table + " access flags")
		if err != nil {
			return err
		}
		nameIndex, err := d.u2(table + " name")
		if err != nil {
			return err
		}
		if err = d.skip(table+" descriptor", 2); err != nil {
			return err
		}
		if err = d.skipAttributes(table); err != nil {
			return err
		}
		if !VisibilityOf(flags).Usable() {
			continue
		}
		name, err := d.utf8(nameIndex)
		if err != nil {
			return err
		}
		builder.Declare(info.Identifier(name))
	}
	return nil
}

func (d *decoder) skipAttributes(table string) error {
	count, err := d.u2(table + " attributes count")
	if err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		if err = d.skip(table+" attribute name", 2); err != nil {
			return err
		}
		size, err := d.u4(table + " attribute length")
		if err != nil {
			return err
		}
		if err = d.skip(table+" attribute", int(size)); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) utf8(index uint16) (string, error) {
	if int(index) >= len(d.pool) || d.pool[index].tag != tagUtf8 {
		return "", newDecodeError("constant lookup", d.offset, fmt.Errorf("index %d is not a utf8 constant", index))
	}
	return d.pool[index].utf8, nil
}

func (d *decoder) className(index uint16) (string, error) {
	if int(index) >= len(d.pool) || d.pool[index].tag != tagClass {
		return "", newDecodeError("constant lookup", d.offset, fmt.Errorf("index %d is not a class constant", index))
	}
	return d.utf8(d.pool[index].index)
}

func (d *decoder) bytes(op string, n int) ([]byte, error) {
	data := make([]byte, n)
	read, err := io.ReadFull(d.r, data)
	d.offset += int64(read)
	if err != nil {
		return nil, newDecodeError(op, d.offset, unexpectedEOF(err))
	}
	return data, nil
}

func (d *decoder) skip(op string, n int) error {
	skipped, err := d.r.Discard(n)
	d.offset += int64(skipped)
	if err != nil {
		return newDecodeError(op, d.offset, unexpectedEOF(err))
	}
	return nil
}

func (d *decoder) u1(op string) (byte, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, newDecodeError(op, d.offset, unexpectedEOF(err))
	}
	d.offset++
	return b, nil
}

func (d *decoder) u2(op string) (uint16, error) {
	data, err := d.bytes(op, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(data), nil
}

func (d *decoder) u4(op string) (uint32, error) {
	data, err := d.bytes(op, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(data), nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
