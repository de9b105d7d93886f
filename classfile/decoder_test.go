package classfile_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/javaimports/classfile"
	"github.com/viant/javaimports/info"
	"github.com/viant/javaimports/internal/testkit"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		description    string
		class          testkit.Class
		expectName     string
		expectSuper    string
		expectDeclared []info.Identifier
	}{
		{
			description: "public and protected members",
			class: testkit.Class{
				Name:  "com/example/Base",
				Super: "java/lang/Object",
				Fields: []testkit.Member{
					{Name: "counter", Flags: 0x0001},
					{Name: "secret", Flags: 0x0002},
					{Name: "packagePrivate", Flags: 0x0000},
				},
				Methods: []testkit.Member{
					{Name: "doIt", Flags: 0x0004},
					{Name: "hidden", Flags: 0x0002 | 0x0008},
				},
			},
			expectName:     "com.example.Base",
			expectSuper:    "java.lang.Object",
			expectDeclared: []info.Identifier{"counter", "doIt"},
		},
		{
			description:    "nested class without parent",
			class:          testkit.Class{Name: "com/example/Outer$Inner", Methods: []testkit.Member{{Name: "run", Flags: 0x0001}}},
			expectName:     "com.example.Outer.Inner",
			expectDeclared: []info.Identifier{"run"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			entity, err := classfile.Decode(bytes.NewReader(tc.class.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, tc.expectName, entity.Name.String())
			assert.EqualValues(t, tc.expectDeclared, entity.Declarations().Sorted())
			if tc.expectSuper == "" {
				assert.Nil(t, entity.Parent)
				return
			}
			require.NotNil(t, entity.Parent)
			parent, ok := entity.Parent.Resolved()
			require.True(t, ok)
			assert.Equal(t, tc.expectSuper, parent.Selector.String())
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	valid := testkit.Class{Name: "a/B", Methods: []testkit.Member{{Name: "m", Flags: 1}}}.Bytes()
	tests := []struct {
		description string
		data        []byte
		expectEOF   bool
	}{
		{description: "empty", data: nil, expectEOF: true},
		{description: "bad magic", data: []byte{0, 1, 2, 3, 4, 5, 6, 7}},
		{description: "truncated", data: valid[:len(valid)-5], expectEOF: true},
		{description: "unknown tag", data: append(append([]byte{}, valid[:10]...), 99, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			_, err := classfile.Decode(bytes.NewReader(tc.data))
			require.Error(t, err)
			var decodeErr *classfile.DecodeError
			assert.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tc.expectEOF, errors.Is(err, io.ErrUnexpectedEOF))
		})
	}
}

func TestVisibilityOf(t *testing.T) {
	tests := []struct {
		flags  uint16
		expect classfile.Visibility
	}{
		{flags: 0x0001, expect: classfile.Public},
		{flags: 0x0003, expect: classfile.Public},
		{flags: 0x0006, expect: classfile.Private},
		{flags: 0x0004, expect: classfile.Protected},
		{flags: 0x0010, expect: classfile.Unset},
	}
	for _, tc := range tests {
		t.Run(tc.expect.String(), func(t *testing.T) {
			assert.Equal(t, tc.expect, classfile.VisibilityOf(tc.flags))
		})
	}
}

func TestDecode_InvalidName(t *testing.T) {
	tests := []struct {
		description string
		class       testkit.Class
	}{
		{description: "empty class name", class: testkit.Class{Name: ""}},
		{description: "dollar class name", class: testkit.Class{Name: "$"}},
		{description: "empty super name", class: testkit.Class{Name: "a/B", Super: "/"}},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			_, err := classfile.Decode(bytes.NewReader(tc.class.Bytes()))
			require.Error(t, err)
			var decodeErr *classfile.DecodeError
			assert.True(t, errors.As(err, &decodeErr))
			assert.True(t, errors.Is(err, classfile.ErrBadName))
		})
	}
}
