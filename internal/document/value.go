package document

import "encoding/json"

// Value is any JSON value in a configuration document.
// Mappings are *Object; sequences are []Value; scalars are
// string, json.Number, bool, or nil.
type Value = any

// Object is a JSON mapping that preserves the insertion order of its keys.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{
		values: make(map[string]Value),
	}
}

// Len returns the number of keys in the object.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the object's keys in insertion order.
// The returned slice is a copy and may be modified by the caller.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Get returns the value for key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Set stores the value for key. New keys are appended at the end;
// existing keys keep their position.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Delete removes key from the object. Deleting an absent key is a no-op.
func (o *Object) Delete(key string) {
	if _, exists := o.values[key]; !exists {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	clone := &Object{
		keys:   make([]string, len(o.keys)),
		values: make(map[string]Value, len(o.values)),
	}
	copy(clone.keys, o.keys)
	for k, v := range o.values {
		clone.values[k] = CloneValue(v)
	}
	return clone
}

// CloneValue returns a deep copy of any document value.
// Scalars are returned as-is; objects and sequences are copied recursively.
func CloneValue(v Value) Value {
	switch val := v.(type) {
	case *Object:
		return val.Clone()
	case []Value:
		out := make([]Value, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Equal reports structural equality of two document values.
// Mappings are compared by key set and per-key values (key order is not
// significant); sequences are compared element-wise in order; numbers are
// compared by their literal text.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.keys {
			bval, ok := bv.Get(k)
			if !ok || !Equal(av.values[k], bval) {
				return false
			}
		}
		return true
	case []Value:
		bv, ok := b.([]Value)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case json.Number:
		bv, ok := b.(json.Number)
		return ok && av == bv
	default:
		return a == b
	}
}
