package apimodels

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Number - angka json atau string angka dari form. Input rusak ditandai invalid
// dan dilaporkan oleh Validate per field, tidak pernah dianggap nol.
type Number struct {
	value   float64
	present bool
	invalid bool
}

func NewNumber(value float64) Number {
	return Number{value: value, present: true}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{present: true}
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		n.present = false
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			n.invalid = true
			return nil
		}
		raw = strings.TrimSpace(str)
		if raw == "" {
			n.present = false
			return nil
		}
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		n.invalid = true
		return nil
	}
	n.value = value
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.present || n.invalid {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

func (n Number) IsSet() bool {
	return n.present
}

func (n Number) Float() float64 {
	return n.value
}

func (n Number) Ptr() *float64 {
	if !n.present || n.invalid {
		return nil
	}
	value := n.value
	return &value
}

// CheckRequired - wajib diisi, numerik, tidak negatif
func (n Number) CheckRequired(label string) error {
	if !n.present {
		return errors.Errorf("%s wajib diisi", label)
	}
	return n.CheckOptional(label)
}

func (n Number) CheckOptional(label string) error {
	if !n.present {
		return nil
	}
	if n.invalid {
		return errors.Errorf("%s harus berupa angka", label)
	}
	if n.value < 0 {
		return errors.Errorf("%s tidak boleh negatif", label)
	}
	return nil
}

func (n Number) CheckInteger(label string) error {
	if err := n.CheckRequired(label); err != nil {
		return err
	}
	if n.value != math.Trunc(n.value) {
		return errors.Errorf("%s harus berupa bilangan bulat", label)
	}
	return nil
}
