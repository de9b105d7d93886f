package classfile

// Visibility of a class member derived from its access flags
type Visibility int

const (
	Unset Visibility = iota
	Public
	Private
	Protected
)

const (
	accPublic    uint16 = 0x0001
	accPrivate   uint16 = 0x0002
	accProtected uint16 = 0x0004
)

// VisibilityOf evaluates access flags in priority order public, private, protected
func VisibilityOf(flags uint16) Visibility {
	switch {
	case flags&accPublic != 0:
		return Public
	case flags&accPrivate != 0:
		return Private
	case flags&accProtected != 0:
		return Protected
	}
	return Unset
}

// Usable returns true for members visible from outside the class
func (v Visibility) Usable() bool {
	return v == Public || v == Protected
}

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Private:
		return "private"
	case Protected:
		return "protected"
	}
	return "unset"
}
