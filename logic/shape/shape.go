// Package shape validates untrusted JSON (model output, hand-off payloads)
// against the shape of a Go type before it is decoded.
//
// encoding/json alone is too forgiving for this boundary: a missing key or a
// null silently becomes the zero value. Check rejects both, and rejects any
// primitive whose JSON kind does not match the declared field type.
package shape

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/components/tool/utils"
)

// Error reports the first place where a document does not match the shape.
type Error struct {
	Path   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("resposta fora do formato esperado em %s: %s", e.Path, e.Reason)
}

// Check validates raw against the shape of T.
func Check[T any](raw []byte) error {
	return check(raw, reflect.TypeOf((*T)(nil)).Elem(), "$")
}

// Decode validates raw against T and decodes it. It never returns a partial value.
func Decode[T any](raw []byte) (*T, error) {
	if err := Check[T](raw); err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &Error{Path: "$", Reason: err.Error()}
	}
	return &out, nil
}

// Describe renders the JSON schema of T, for use as the output contract in a prompt.
func Describe[T any]() (string, error) {
	params, err := utils.GoStruct2ParamsOneOf[T]()
	if err != nil {
		return "", fmt.Errorf("build params of %T: %w", *new(T), err)
	}
	js, err := params.ToJSONSchema()
	if err != nil {
		return "", err
	}
	b, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func check(raw json.RawMessage, t reflect.Type, path string) error {
	doc := bytes.TrimSpace(raw)
	if len(doc) == 0 || bytes.Equal(doc, []byte("null")) {
		return &Error{Path: path, Reason: "valor ausente ou nulo"}
	}

	switch t.Kind() {
	case reflect.Pointer:
		return check(doc, t.Elem(), path)

	case reflect.Struct:
		if doc[0] != '{' {
			return &Error{Path: path, Reason: "esperado objeto"}
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(doc, &obj); err != nil {
			return &Error{Path: path, Reason: err.Error()}
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, optional := jsonName(f)
			if name == "-" {
				continue
			}
			v, ok := obj[name]
			if !ok {
				if optional {
					continue
				}
				return &Error{Path: path + "." + name, Reason: "campo ausente"}
			}
			if err := check(v, f.Type, path+"."+name); err != nil {
				return err
			}
		}
		return nil

	case reflect.Slice, reflect.Array:
		if doc[0] != '[' {
			return &Error{Path: path, Reason: "esperado array"}
		}
		var items []json.RawMessage
		if err := json.Unmarshal(doc, &items); err != nil {
			return &Error{Path: path, Reason: err.Error()}
		}
		for i, item := range items {
			if err := check(item, t.Elem(), path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		return nil

	case reflect.String:
		if doc[0] != '"' {
			return &Error{Path: path, Reason: "esperado string"}
		}
		return nil

	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if doc[0] != '-' && (doc[0] < '0' || doc[0] > '9') {
			return &Error{Path: path, Reason: "esperado número"}
		}
		return nil

	case reflect.Bool:
		if !bytes.Equal(doc, []byte("true")) && !bytes.Equal(doc, []byte("false")) {
			return &Error{Path: path, Reason: "esperado booleano"}
		}
		return nil
	}
	return nil
}

func jsonName(f reflect.StructField) (name string, optional bool) {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name, false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = f.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			optional = true
		}
	}
	return name, optional
}
