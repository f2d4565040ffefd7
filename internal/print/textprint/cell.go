package textprint

import (
	"encoding/hex"
	"fmt"
	"io"
	"reflect"
	"strconv"
)

// cellFunc writes the text form of a single table cell.
type cellFunc func(io.Writer, reflect.Value) error

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func writeCell(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func boolCell(w io.Writer, v reflect.Value) error {
	return writeCell(w, strconv.FormatBool(v.Bool()))
}

func intCell(w io.Writer, v reflect.Value) error {
	return writeCell(w, strconv.FormatInt(v.Int(), 10))
}

func uintCell(w io.Writer, v reflect.Value) error {
	return writeCell(w, strconv.FormatUint(v.Uint(), 10))
}

func stringCell(w io.Writer, v reflect.Value) error {
	return writeCell(w, v.String())
}

func stringerCell(w io.Writer, v reflect.Value) error {
	return writeCell(w, v.Interface().(fmt.Stringer).String())
}

func bytesCell(w io.Writer, v reflect.Value) error {
	return writeCell(w, hex.EncodeToString(v.Bytes()))
}

// cellFuncOf returns the cell writer for values of type t. Byte slices are
// written in hexadecimal, other slices as comma separated lists, and nil
// pointers as "(none)".
func cellFuncOf(t reflect.Type) cellFunc {
	if t.Implements(stringerType) {
		return stringerCell
	}
	switch t.Kind() {
	case reflect.Bool:
		return boolCell
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intCell
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintCell
	case reflect.String:
		return stringCell
	case reflect.Pointer:
		return pointerCellFunc(t.Elem())
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return bytesCell
		}
		return sliceCellFunc(t.Elem())
	default:
		panic("textprint: cannot print values of type " + t.String())
	}
}

func pointerCellFunc(t reflect.Type) cellFunc {
	cell := cellFuncOf(t)
	return func(w io.Writer, v reflect.Value) error {
		if v.IsNil() {
			return writeCell(w, "(none)")
		}
		return cell(w, v.Elem())
	}
}

func sliceCellFunc(t reflect.Type) cellFunc {
	cell := cellFuncOf(t)
	return func(w io.Writer, v reflect.Value) error {
		for i := 0; i < v.Len(); i++ {
			if i != 0 {
				if err := writeCell(w, ", "); err != nil {
					return err
				}
			}
			if err := cell(w, v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

func fieldCellFunc(t reflect.Type, index []int) cellFunc {
	cell := cellFuncOf(t)
	return func(w io.Writer, v reflect.Value) error {
		return cell(w, v.FieldByIndex(index))
	}
}
