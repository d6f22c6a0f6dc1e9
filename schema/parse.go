package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/parsly"
)

// Parse parses type signature, i.e. struct<id:int,name:varchar(20),tags:array<string>>
// Union alternatives can be named (union<a:int,b:string>) or positional (uniontype<int,string>), positional
// alternatives are named after their ordinal.
func Parse(signature string) (*Type, error) {
	ret, err := parse(signature)
	if err != nil {
		return nil, err
	}
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// MustParse parses type signature or panics
func MustParse(signature string) *Type {
	ret, err := Parse(signature)
	if err != nil {
		panic(err)
	}
	return ret
}

func parse(signature string) (*Type, error) {
	cursor := parsly.NewCursor("", []byte(signature), 0)
	cursor.MatchAny(whitespaceMatcher)
	name := matchIdentifier(cursor)
	if name == "" {
		return nil, syntaxError(signature, cursor.Pos, "expected type name")
	}
	var ret *Type
	switch strings.ToLower(name) {
	case "array", "list":
		args, err := matchArguments(cursor, signature)
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, syntaxError(signature, cursor.Pos, "expected single list element type")
		}
		elem, err := parse(args[0])
		if err != nil {
			return nil, err
		}
		ret = NewList(elem)
	case "map":
		args, err := matchArguments(cursor, signature)
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, syntaxError(signature, cursor.Pos, "expected map key and value types")
		}
		key, err := parse(args[0])
		if err != nil {
			return nil, err
		}
		value, err := parse(args[1])
		if err != nil {
			return nil, err
		}
		ret = NewMap(key, value)
	case "struct":
		args, err := matchArguments(cursor, signature)
		if err != nil {
			return nil, err
		}
		fields, err := parseFields(signature, args, false)
		if err != nil {
			return nil, err
		}
		ret = NewStruct(fields...)
	case "union", "uniontype":
		args, err := matchArguments(cursor, signature)
		if err != nil {
			return nil, err
		}
		alternatives, err := parseFields(signature, args, true)
		if err != nil {
			return nil, err
		}
		ret = NewUnion(alternatives...)
	default:
		kind, ok := LookupKind(name)
		if !ok {
			return nil, syntaxError(signature, 0, "unknown type "+name)
		}
		ret = Primitive(kind)
		params, err := matchParameters(cursor, signature)
		if err != nil {
			return nil, err
		}
		if err = applyParameters(ret, params, signature); err != nil {
			return nil, err
		}
	}
	cursor.MatchAny(whitespaceMatcher)
	if cursor.Pos < len(cursor.Input) {
		return nil, syntaxError(signature, cursor.Pos, "unexpected "+string(cursor.Input[cursor.Pos:]))
	}
	return ret, nil
}

func applyParameters(ret *Type, params []int, signature string) error {
	switch ret.Kind {
	case KindVarchar, KindChar:
		if len(params) != 1 {
			return syntaxError(signature, 0, ret.Kind.String()+" requires length")
		}
		ret.Length = params[0]
	case KindDecimal:
		switch len(params) {
		case 0:
		case 1:
			ret.Precision = params[0]
		case 2:
			ret.Precision, ret.Scale = params[0], params[1]
		default:
			return syntaxError(signature, 0, "decimal accepts precision and scale only")
		}
	default:
		if len(params) > 0 {
			return syntaxError(signature, 0, ret.Kind.String()+" does not accept parameters")
		}
	}
	return nil
}

func parseFields(signature string, args []string, positional bool) ([]*Field, error) {
	var fields = make([]*Field, 0, len(args))
	for i, arg := range args {
		name, fieldSignature, ok := splitField(arg)
		if !ok {
			if !positional {
				return nil, syntaxError(signature, 0, "expected name:type but had "+arg)
			}
			name, fieldSignature = strconv.Itoa(i), arg
		}
		fieldType, err := parse(fieldSignature)
		if err != nil {
			return nil, err
		}
		fields = append(fields, NewField(name, fieldType))
	}
	return fields, nil
}

func splitField(arg string) (string, string, bool) {
	for i := 0; i < len(arg); i++ {
		switch arg[i] {
		case '<', '(':
			return "", "", false
		case ':':
			name := strings.Trim(strings.TrimSpace(arg[:i]), "`")
			if name == "" {
				return "", "", false
			}
			return name, arg[i+1:], true
		}
	}
	return "", "", false
}

func matchIdentifier(cursor *parsly.Cursor) string {
	start := cursor.Pos
	for cursor.Pos < len(cursor.Input) {
		c := cursor.Input[cursor.Pos]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			cursor.Pos++
			continue
		}
		break
	}
	return string(cursor.Input[start:cursor.Pos])
}

func matchArguments(cursor *parsly.Cursor, signature string) ([]string, error) {
	match := cursor.MatchAfterOptional(whitespaceMatcher, argumentsBlockMatcher)
	if match.Code != argumentsBlockToken {
		return nil, syntaxError(signature, cursor.Pos, "expected <...>")
	}
	text := match.Text(cursor)
	return splitArguments(text[1 : len(text)-1]), nil
}

func matchParameters(cursor *parsly.Cursor, signature string) ([]int, error) {
	match := cursor.MatchAfterOptional(whitespaceMatcher, parametersBlockMatcher)
	if match.Code != parametersBlockToken {
		return nil, nil
	}
	text := match.Text(cursor)
	var result []int
	for _, arg := range splitArguments(text[1 : len(text)-1]) {
		value, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, syntaxError(signature, cursor.Pos, "invalid type parameter "+arg)
		}
		result = append(result, value)
	}
	return result, nil
}

// splitArguments splits text by top level comas
func splitArguments(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var result []string
	depth, start := 0, 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ',':
			if depth == 0 {
				result = append(result, text[start:i])
				start = i + 1
			}
		}
	}
	return append(result, text[start:])
}

func syntaxError(signature string, pos int, message string) error {
	return fmt.Errorf("%w: %v at %v in %q", ErrSyntax, message, pos, signature)
}
