package schema

import "strings"

// Kind identifies a primitive type
type Kind int

const (
	KindVoid Kind = iota
	KindBoolean
	KindByte
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindString
	KindVarchar
	KindChar
	KindBinary
	KindDecimal
	KindDate
	KindTimestamp
)

const (
	//MaxDecimalPrecision defines max supported decimal precision
	MaxDecimalPrecision = 38
	//DefaultDecimalPrecision defines decimal precision used when none was declared
	DefaultDecimalPrecision = 10
)

var kindNames = map[Kind]string{
	KindVoid:      "void",
	KindBoolean:   "boolean",
	KindByte:      "tinyint",
	KindShort:     "smallint",
	KindInt:       "int",
	KindLong:      "bigint",
	KindFloat:     "float",
	KindDouble:    "double",
	KindString:    "string",
	KindVarchar:   "varchar",
	KindChar:      "char",
	KindBinary:    "binary",
	KindDecimal:   "decimal",
	KindDate:      "date",
	KindTimestamp: "timestamp",
}

var kindAliases = map[string]Kind{
	"void":      KindVoid,
	"null":      KindVoid,
	"boolean":   KindBoolean,
	"bool":      KindBoolean,
	"tinyint":   KindByte,
	"byte":      KindByte,
	"smallint":  KindShort,
	"short":     KindShort,
	"int":       KindInt,
	"integer":   KindInt,
	"bigint":    KindLong,
	"long":      KindLong,
	"float":     KindFloat,
	"double":    KindDouble,
	"string":    KindString,
	"varchar":   KindVarchar,
	"char":      KindChar,
	"binary":    KindBinary,
	"bytes":     KindBinary,
	"decimal":   KindDecimal,
	"numeric":   KindDecimal,
	"date":      KindDate,
	"timestamp": KindTimestamp,
}

// String returns kind type name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsIntegral returns true for fixed width integer kinds
func (k Kind) IsIntegral() bool {
	switch k {
	case KindByte, KindShort, KindInt, KindLong:
		return true
	}
	return false
}

// IsFloating returns true for IEEE floating point kinds
func (k Kind) IsFloating() bool {
	return k == KindFloat || k == KindDouble
}

// IsNumeric returns true for integral, floating and decimal kinds
func (k Kind) IsNumeric() bool {
	return k.IsIntegral() || k.IsFloating() || k == KindDecimal
}

// IsText returns true for character string kinds
func (k Kind) IsText() bool {
	switch k {
	case KindString, KindVarchar, KindChar:
		return true
	}
	return false
}

// IsTemporal returns true for date and timestamp kinds
func (k Kind) IsTemporal() bool {
	return k == KindDate || k == KindTimestamp
}

// IsParameterized returns true if kind carries length or precision parameters
func (k Kind) IsParameterized() bool {
	switch k {
	case KindVarchar, KindChar, KindDecimal:
		return true
	}
	return false
}

// LookupKind returns a kind for supplied type name
func LookupKind(name string) (Kind, bool) {
	kind, ok := kindAliases[strings.ToLower(name)]
	return kind, ok
}
