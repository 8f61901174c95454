package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Dec is a signed fixed-point number with Precision decimal places held in an int64.
// All arithmetic is integer arithmetic so results are identical on every replica.
//
// NOTE: never use new(Dec); the zero value is a valid zero.
type Dec struct {
	int64 `json:"int"`
}

// number of decimal places
const (
	Precision = 8
)

var (
	precisionReuse       = new(big.Int).Exp(big.NewInt(10), big.NewInt(Precision), nil).Int64()
	precisionMultipliers []int64
	tenInt               = big.NewInt(10)
)

// Set precision multipliers
func init() {
	precisionMultipliers = make([]int64, Precision+1)
	for i := 0; i <= Precision; i++ {
		precisionMultipliers[i] = calcPrecisionMultiplier(int64(i))
	}
}

// nolint - common values
func ZeroDec() Dec { return Dec{0} }
func OneDec() Dec  { return Dec{precisionReuse} }

// calculate the precision multiplier
func calcPrecisionMultiplier(prec int64) int64 {
	if prec > Precision {
		panic(fmt.Sprintf("too much precision, maximum %v, provided %v", Precision, prec))
	}
	zerosToAdd := Precision - prec
	return new(big.Int).Exp(tenInt, big.NewInt(zerosToAdd), nil).Int64()
}

// get the precision multiplier, do not mutate result
func precisionMultiplier(prec int64) int64 {
	if prec > Precision {
		panic(fmt.Sprintf("too much precision, maximum %v, provided %v", Precision, prec))
	}
	return precisionMultipliers[prec]
}

// create a new Dec from integer assuming whole number
func NewDec(i int64) Dec {
	return NewDecWithPrec(i, 0)
}

// create a new Dec from integer with decimal place at prec
// CONTRACT: prec <= Precision
func NewDecWithPrec(i, prec int64) Dec {
	if i == 0 {
		return Dec{0}
	}
	c, ok := Mul64(i, precisionMultiplier(prec))
	if !ok {
		panic("Int overflow")
	}
	return Dec{c}
}

// NewDecFromRaw wraps an already scaled value.
func NewDecFromRaw(raw int64) Dec {
	return Dec{raw}
}

// create a decimal from an input decimal string.
// valid must come in the form:
//   (-) whole integers (.) decimal integers
// examples of acceptable input include:
//   -123.456
//   456.7890
//   345
//
// NOTE - An error will return if more decimal places
// are provided in the string than the constant Precision.
func NewDecFromStr(str string) (d Dec, err Error) {
	if len(str) == 0 {
		return d, ErrUnknownRequest("decimal string is empty")
	}

	neg := false
	if str[0] == '-' {
		neg = true
		str = str[1:]
	}
	if len(str) == 0 {
		return d, ErrUnknownRequest("decimal string is empty")
	}

	strs := strings.Split(str, ".")
	lenDecs := 0
	combinedStr := strs[0]
	if len(strs) == 2 {
		lenDecs = len(strs[1])
		if lenDecs == 0 || len(combinedStr) == 0 {
			return d, ErrUnknownRequest("bad decimal length")
		}
		combinedStr = combinedStr + strs[1]
	} else if len(strs) > 2 {
		return d, ErrUnknownRequest("too many periods to be a decimal string")
	}

	if lenDecs > Precision {
		return d, ErrUnknownRequest(
			fmt.Sprintf("too much precision, maximum %v, len decimal %v", Precision, lenDecs))
	}

	// add some extra zero's to correct to the Precision factor
	combinedStr = combinedStr + strings.Repeat("0", Precision-lenDecs)

	combined, parseErr := strconv.ParseInt(combinedStr, 10, 64)
	if parseErr != nil {
		return d, ErrUnknownRequest(fmt.Sprintf("bad string to integer conversion, combinedStr: %v, error: %v", combinedStr, parseErr))
	}
	if neg {
		combined = -combined
	}
	return Dec{combined}, nil
}

//nolint
func (d Dec) Equal(d2 Dec) bool { return d.int64 == d2.int64 }
func (d Dec) GTE(d2 Dec) bool   { return d.int64 >= d2.int64 }
func (d Dec) LTE(d2 Dec) bool   { return d.int64 <= d2.int64 }

// MulTruncateUint64 returns floor(v * d) for a non-negative d.
func (d Dec) MulTruncateUint64(v uint64) uint64 {
	if d.int64 < 0 {
		panic("negative decimal")
	}
	return MulDivUint64(v, uint64(d.int64), uint64(precisionReuse))
}

func (d Dec) String() string {
	neg := d.int64 < 0
	abs := d.int64
	if neg {
		abs = -abs
	}
	s := strconv.FormatInt(abs, 10)
	if len(s) <= Precision {
		s = strings.Repeat("0", Precision-len(s)+1) + s
	}
	out := s[:len(s)-Precision] + "." + s[len(s)-Precision:]
	if neg {
		return "-" + out
	}
	return out
}

func (d Dec) MarshalAmino() (int64, error) {
	return d.int64, nil
}

func (d *Dec) UnmarshalAmino(v int64) (err error) {
	d.int64 = v
	return nil
}

// MarshalJSON marshals the decimal
func (d Dec) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON defines custom decoding scheme
func (d *Dec) UnmarshalJSON(bz []byte) error {
	var text string
	err := json.Unmarshal(bz, &text)
	if err != nil {
		return err
	}
	newDec, sdkErr := NewDecFromStr(text)
	if sdkErr != nil {
		return sdkErr
	}
	d.int64 = newDec.int64
	return nil
}

// MarshalText lets text based encoders (toml, yaml) use the decimal string form.
func (d Dec) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Dec) UnmarshalText(text []byte) error {
	newDec, err := NewDecFromStr(string(text))
	if err != nil {
		return err
	}
	d.int64 = newDec.int64
	return nil
}
