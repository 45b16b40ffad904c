package tag

// ValueKind is the lexical form of a tag value, determined solely by
// the group code.
type ValueKind int

// Value kinds, per the published DXF group-code ranges.
const (
	KindString ValueKind = iota
	KindFloat
	KindInt16
	KindInt32
	KindInt64
	KindHandle
	KindBool
	KindBinary
)

// String returns the kind name for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindHandle:
		return "handle"
	case KindBool:
		return "bool"
	case KindBinary:
		return "binary"
	}
	return "unknown"
}

// Kind maps a group code to the lexical form of its value.
// Codes outside every published range default to KindString, which is
// how readers stay tolerant of vendor extensions.
func Kind(code int) ValueKind {
	switch {
	case code >= 0 && code <= 9:
		return KindString
	case code >= 10 && code <= 59:
		return KindFloat
	case code >= 60 && code <= 79:
		return KindInt16
	case code >= 90 && code <= 99:
		return KindInt32
	case code == 100 || code == 102:
		return KindString
	case code == 105:
		return KindHandle
	case code >= 110 && code <= 149:
		return KindFloat
	case code >= 160 && code <= 169:
		return KindInt64
	case code >= 170 && code <= 179:
		return KindInt16
	case code >= 210 && code <= 239:
		return KindFloat
	case code >= 270 && code <= 289:
		return KindInt16
	case code >= 290 && code <= 299:
		return KindBool
	case code >= 300 && code <= 309:
		return KindString
	case code >= 310 && code <= 319:
		return KindBinary
	case code >= 320 && code <= 369:
		return KindHandle
	case code >= 370 && code <= 389:
		return KindInt16
	case code >= 390 && code <= 399:
		return KindHandle
	case code >= 400 && code <= 409:
		return KindInt16
	case code >= 410 && code <= 419:
		return KindString
	case code >= 420 && code <= 429:
		return KindInt32
	case code >= 430 && code <= 439:
		return KindString
	case code >= 440 && code <= 459:
		return KindInt32
	case code >= 460 && code <= 469:
		return KindFloat
	case code >= 470 && code <= 479:
		return KindString
	case code >= 480 && code <= 481:
		return KindHandle
	case code == 999:
		return KindString
	case code >= 1000 && code <= 1009:
		return KindString
	case code >= 1010 && code <= 1059:
		return KindFloat
	case code >= 1060 && code <= 1070:
		return KindInt16
	case code == 1071:
		return KindInt32
	}
	return KindString
}
