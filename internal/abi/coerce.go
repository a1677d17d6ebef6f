package abi

import "reflect"

// Every integer width shares one int64 slot. Signed widths widen on the way
// in and truncate on the way out. Unsigned widths are reinterpreted bit for
// bit, so uint64 values above MaxInt64 wrap to negative slot values and come
// back unchanged.

// SlotFromInt widens a signed integer to the slot.
func SlotFromInt(v int64) int64 { return v }

// SlotFromUint reinterprets an unsigned integer as the slot value.
func SlotFromUint(v uint64) int64 { return int64(v) }

// UintFromSlot is the inverse of SlotFromUint.
func UintFromSlot(v int64) uint64 { return uint64(v) }

// SetIntKind stores slot into an integer-kinded reflect.Value, truncating to
// the destination width.
func SetIntKind(dst reflect.Value, slot int64) bool {
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		dst.SetInt(truncateSigned(slot, dst.Type().Bits()))
		return true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		dst.SetUint(truncateUnsigned(UintFromSlot(slot), dst.Type().Bits()))
		return true
	}
	return false
}

// SlotOf reads an integer-kinded reflect.Value into the slot.
func SlotOf(src reflect.Value) (int64, bool) {
	switch src.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return SlotFromInt(src.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return SlotFromUint(src.Uint()), true
	}
	return 0, false
}

func truncateSigned(v int64, bits int) int64 {
	switch bits {
	case 8:
		return int64(int8(v))
	case 16:
		return int64(int16(v))
	case 32:
		return int64(int32(v))
	}
	return v
}

func truncateUnsigned(v uint64, bits int) uint64 {
	switch bits {
	case 8:
		return uint64(uint8(v))
	case 16:
		return uint64(uint16(v))
	case 32:
		return uint64(uint32(v))
	}
	return v
}
