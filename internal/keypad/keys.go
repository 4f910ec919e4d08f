package keypad

import (
	"fmt"
	"strings"
	"unicode"

	"calchub/pkg/calctypes"
)

// Key is one button of the physical calculator.
type Key string

// Keys of the basic face.
const (
	KeyZero     Key = "0"
	KeyOne      Key = "1"
	KeyTwo      Key = "2"
	KeyThree    Key = "3"
	KeyFour     Key = "4"
	KeyFive     Key = "5"
	KeySix      Key = "6"
	KeySeven    Key = "7"
	KeyEight    Key = "8"
	KeyNine     Key = "9"
	KeyDecimal  Key = "."
	KeyAdd      Key = "+"
	KeySubtract Key = "-"
	KeyMultiply Key = "×"
	KeyDivide   Key = "÷"
	KeyEquals   Key = "="
	KeyClear    Key = "AC"
	KeyDelete   Key = "DEL"
	KeyPercent  Key = "%"
	KeySqrt     Key = "√"
)

// Keys of the scientific row.
const (
	KeySin    Key = "sin"
	KeyCos    Key = "cos"
	KeyTan    Key = "tan"
	KeyLog    Key = "log"
	KeyLn     Key = "ln"
	KeySquare Key = "x²"
	KeyPi     Key = "π"
)

// KeyKind classifies keys for dispatch and for colouring the face.
type KeyKind int

const (
	// KindNumber covers digits and the decimal point.
	KindNumber KeyKind = iota
	// KindOperator covers the four binary operators.
	KindOperator
	// KindEquals is the equals key.
	KindEquals
	// KindFunction covers AC, DEL and %.
	KindFunction
	// KindScience covers the unary scientific keys.
	KindScience
	// KindUnknown is anything else.
	KindUnknown
)

// String returns a lowercase name for the kind.
func (k KeyKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindEquals:
		return "equals"
	case KindFunction:
		return "function"
	case KindScience:
		return "science"
	default:
		return "unknown"
	}
}

// IsDigit reports whether the key is 0-9.
func (k Key) IsDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// Kind returns the key's classification.
func (k Key) Kind() KeyKind {
	if k.IsDigit() || k == KeyDecimal {
		return KindNumber
	}
	switch k {
	case KeyAdd, KeySubtract, KeyMultiply, KeyDivide:
		return KindOperator
	case KeyEquals:
		return KindEquals
	case KeyClear, KeyDelete, KeyPercent:
		return KindFunction
	case KeySqrt, KeySin, KeyCos, KeyTan, KeyLog, KeyLn, KeySquare, KeyPi:
		return KindScience
	default:
		return KindUnknown
	}
}

// scientificOnly reports whether the key exists only on the scientific face.
func (k Key) scientificOnly() bool {
	switch k {
	case KeySin, KeyCos, KeyTan, KeyLog, KeyLn, KeySquare, KeyPi:
		return true
	}
	return false
}

var keyAliases = map[string]Key{
	"+":         KeyAdd,
	"-":         KeySubtract,
	"*":         KeyMultiply,
	"x":         KeyMultiply,
	"×":         KeyMultiply,
	"/":         KeyDivide,
	"÷":         KeyDivide,
	"=":         KeyEquals,
	"%":         KeyPercent,
	"ac":        KeyClear,
	"c":         KeyClear,
	"clear":     KeyClear,
	"del":       KeyDelete,
	"back":      KeyDelete,
	"backspace": KeyDelete,
	"√":         KeySqrt,
	"sqrt":      KeySqrt,
	"sin":       KeySin,
	"cos":       KeyCos,
	"tan":       KeyTan,
	"log":       KeyLog,
	"ln":        KeyLn,
	"x²":        KeySquare,
	"sq":        KeySquare,
	"sqr":       KeySquare,
	"π":         KeyPi,
	"pi":        KeyPi,
}

// ParseKey maps a single typed token to a key.
func ParseKey(token string) (Key, error) {
	t := strings.TrimSpace(token)
	if len(t) == 1 && (Key(t).IsDigit() || t == ".") {
		return Key(t), nil
	}
	if k, ok := keyAliases[strings.ToLower(t)]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown key %q", token)
}

// ParseKeys splits a typed line into keys. Digits may be run together ("12+3=");
// named keys are separated from each other by spaces or symbols.
func ParseKeys(line string) ([]Key, error) {
	var keys []Key
	runes := []rune(line)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9', r == '.':
			keys = append(keys, Key(string(r)))
			i++
		case r == 'x' && i+1 < len(runes) && runes[i+1] == '²':
			keys = append(keys, KeySquare)
			i += 2
		case unicode.IsLetter(r) && r != 'π':
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) && runes[j] != 'π' {
				j++
			}
			k, err := ParseKey(string(runes[i:j]))
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
			i = j
		default:
			k, err := ParseKey(string(r))
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
			i++
		}
	}
	return keys, nil
}

// Button is one cap of the calculator face.
type Button struct {
	Key  Key
	Span int
}

// Label returns the text printed on the cap.
func (b Button) Label() string {
	return string(b.Key)
}

var basicRows = [][]Button{
	{{Key: KeyClear, Span: 1}, {Key: KeyDelete, Span: 1}, {Key: KeyPercent, Span: 1}, {Key: KeyDivide, Span: 1}},
	{{Key: KeySeven, Span: 1}, {Key: KeyEight, Span: 1}, {Key: KeyNine, Span: 1}, {Key: KeyMultiply, Span: 1}},
	{{Key: KeyFour, Span: 1}, {Key: KeyFive, Span: 1}, {Key: KeySix, Span: 1}, {Key: KeySubtract, Span: 1}},
	{{Key: KeyOne, Span: 1}, {Key: KeyTwo, Span: 1}, {Key: KeyThree, Span: 1}, {Key: KeyAdd, Span: 1}},
	{{Key: KeyZero, Span: 2}, {Key: KeyDecimal, Span: 1}, {Key: KeyEquals, Span: 1}},
}

var scienceRows = [][]Button{
	{{Key: KeySin, Span: 1}, {Key: KeyCos, Span: 1}, {Key: KeyTan, Span: 1}, {Key: KeySqrt, Span: 1}},
	{{Key: KeyLog, Span: 1}, {Key: KeyLn, Span: 1}, {Key: KeySquare, Span: 1}, {Key: KeyPi, Span: 1}},
}

// Layout returns the button grid for the given widget, top row first.
func Layout(kind calctypes.WidgetKind) [][]Button {
	var rows [][]Button
	if kind == calctypes.WidgetScientific {
		rows = append(rows, scienceRows...)
	}
	return append(rows, basicRows...)
}
