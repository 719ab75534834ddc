// Package env renders env-tagged config structs back into .env lines.
package env

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var ErrNotStruct = errors.New("env: value must be a struct or a pointer to one")

const masked = "****"

type Options struct {
	// Defaults keeps fields that hold their zero value.
	Defaults bool
	// Mask hides values whose key looks like a credential.
	Mask bool
}

// MarshalEnv renders non-zero fields as KEY=value lines, in field order.
func MarshalEnv(c any) (string, error) {
	return Marshal(c, Options{})
}

func Marshal(c any, opts Options) (string, error) {
	v := reflect.ValueOf(c)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", ErrNotStruct
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", ErrNotStruct
	}

	var lines []string
	collect(v, opts, &lines)

	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func collect(v reflect.Value, opts Options, lines *[]string) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		val := v.Field(i)

		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" {
			if val.Kind() == reflect.Struct {
				collect(val, opts, lines)
			}
			continue
		}
		if val.IsZero() && !opts.Defaults {
			continue
		}

		s := formatValue(val)
		if opts.Mask && isSecret(key) && s != "" {
			s = masked
		}
		*lines = append(*lines, key+"="+quote(s))
	}
}

func isSecret(key string) bool {
	for _, marker := range []string{"_KEY", "_TOKEN", "SECRET", "PASSWORD"} {
		if strings.HasSuffix(key, marker) {
			return true
		}
	}
	return false
}

// quote wraps values that godotenv would otherwise split or truncate.
func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"'#=\n") {
		return strconv.Quote(s)
	}
	return s
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Slice:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = formatValue(v.Index(i))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
