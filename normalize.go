package multicall

import (
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Normalize converts one value decoded by abi.Arguments.UnpackValues into a
// tree of plain values: tuples with real field names become
// map[string]interface{} keyed by those names, unnamed or positional-only
// tuples become []interface{}, slices and arrays are rebuilt with every
// element normalized, and scalars pass through unchanged.
//
// The decision between record and list is taken from the declared
// TupleRawNames metadata of the abi type, so no reflection-probing of the
// generated struct is needed. Re-applying Normalize to its own output is a
// no-op: maps and already-plain values fall through untouched.
func Normalize(t abi.Type, v interface{}) interface{} {
	switch t.T {
	case abi.TupleTy:
		return normalizeTuple(t, v)
	case abi.SliceTy, abi.ArrayTy:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return v
		}
		result := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			result[i] = Normalize(*t.Elem, rv.Index(i).Interface())
		}
		return result
	default:
		// scalar: *big.Int, string, bool, common.Address, []byte, [N]byte...
		return v
	}
}

func normalizeTuple(t abi.Type, v interface{}) interface{} {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct || rv.NumField() != len(t.TupleElems) {
		// already normalized or not a codec-produced tuple
		return v
	}
	if isNamedTuple(t.TupleRawNames) {
		result := make(map[string]interface{}, len(t.TupleElems))
		for i, name := range t.TupleRawNames {
			result[name] = Normalize(*t.TupleElems[i], rv.Field(i).Interface())
		}
		return result
	}
	result := make([]interface{}, len(t.TupleElems))
	for i := range t.TupleElems {
		result[i] = Normalize(*t.TupleElems[i], rv.Field(i).Interface())
	}
	return result
}

// isNamedTuple reports whether the tuple's components all carry actual field
// names. Components without a name, or with purely positional numeric names,
// make the whole tuple render as an ordered list instead of a record.
func isNamedTuple(names []string) bool {
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if name == "" || isDigits(name) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
