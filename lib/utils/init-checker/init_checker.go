package initchecker

import (
	"fmt"
	"reflect"
)

// CheckInit menerima pasangan (nama, dependensi) dan panic bila ada dependensi yang belum diinisialisasi
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: jumlah argumen harus genap")
	}
	for idx := 0; idx < len(pairs); idx += 2 {
		name, ok := pairs[idx].(string)
		if !ok {
			panic("CheckInit: argumen pertama pasangan harus string")
		}
		if isNil(pairs[idx+1]) {
			panic(fmt.Sprintf("dependensi %s belum diinisialisasi", name))
		}
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
