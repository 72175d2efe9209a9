package models

import (
	"fmt"
	"strings"
)

// Kind identifies one of the four entity tables
type Kind int

const (
	KindLaboratory Kind = iota + 1
	KindResearcher
	KindObjectType
	KindObject
)

// Kinds returns every entity kind in menu order
func Kinds() []Kind {
	return []Kind{KindLaboratory, KindResearcher, KindObject, KindObjectType}
}

// Table returns the table backing the kind
func (k Kind) Table() string {
	switch k {
	case KindLaboratory:
		return "laboratory"
	case KindResearcher:
		return "researcher"
	case KindObjectType:
		return "object_type"
	case KindObject:
		return "object"
	default:
		return ""
	}
}

// String returns the singular name, which is also the table name
func (k Kind) String() string {
	if t := k.Table(); t != "" {
		return t
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Plural returns the plural name used by read menus and table titles
func (k Kind) Plural() string {
	switch k {
	case KindLaboratory:
		return "laboratories"
	case KindResearcher:
		return "researchers"
	case KindObjectType:
		return "object_types"
	case KindObject:
		return "objects"
	default:
		return ""
	}
}

// Valid reports whether k names an existing entity kind
func (k Kind) Valid() bool {
	return k.Table() != ""
}

// ParseKind accepts singular, plural and a few short aliases ("lab", "type")
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "laboratory", "laboratories", "lab", "labs":
		return KindLaboratory, nil
	case "researcher", "researchers":
		return KindResearcher, nil
	case "object_type", "object_types", "object-type", "object-types", "type", "types":
		return KindObjectType, nil
	case "object", "objects":
		return KindObject, nil
	}
	return 0, fmt.Errorf("%w: %q (must be: laboratory, researcher, object, object_type)", ErrUnknownEntity, s)
}
