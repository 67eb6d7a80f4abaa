package pandoc

import "strings"

// Pandoc elements attribute' key-value pair.
type KV struct {
	Key   string
	Value string
}

// Pandoc elements attribute: identifier, classes and key-value pairs.
//
// The key-value pairs are an ordered list; every pair is kept, including
// repeated keys. A derived key index gives O(1) named lookup and resolves
// repeated keys last-writer-wins. The index is always a projection of KVs:
// every copying mutator rebuilds it.
type Attr struct {
	Id      string   // Element ID
	Classes []string // Element classes
	KVs     []KV     // Element attributes' key-value pairs

	index map[string]string
}

// EmptyAttr is the canonical empty attribute set, shared as the default
// by every constructor taking optional attributes. It is never mutated.
var EmptyAttr = Attr{}

// Attributes builds an attribute set from ordered key-value pairs, an
// identifier and classes, and indexes the pairs for named lookup.
func Attributes(kvs []KV, id string, classes ...string) Attr {
	a := Attr{Id: id, Classes: classes, KVs: kvs}
	a.reindex()
	return a
}

func (a *Attr) reindex() {
	if len(a.KVs) == 0 {
		a.index = nil
		return
	}
	a.index = make(map[string]string, len(a.KVs))
	for _, kv := range a.KVs {
		a.index[kv.Key] = kv.Value
	}
}

// IsEmpty reports whether the attribute set carries no information.
func (a *Attr) IsEmpty() bool {
	return a.Id == "" && len(a.Classes) == 0 && len(a.KVs) == 0
}

// Returns the element's ID.
func (a *Attr) Ident() string {
	return a.Id
}

// Sets the element's ID in-place. This method is intended to quickly
// modify an element's ID in Query without cloning it.
func (a *Attr) SetIdent(id string) {
	a.Id = id
}

// Returns a copy of attributes with the given ID.
func (a Attr) WithIdent(id string) Attr {
	a.Id = id
	return a
}

// Class returns the classes joined into a single space-separated string.
func (a *Attr) Class() string {
	return strings.Join(a.Classes, " ")
}

// Returns true if attribute has the given class.
func (a *Attr) HasClass(c string) bool {
	for _, cl := range a.Classes {
		if cl == c {
			return true
		}
	}
	return false
}

// Returns true if attribute has one of the given classes.
func (a *Attr) HasOneOfClasses(c ...string) bool {
	for _, cl := range a.Classes {
		for _, c := range c {
			if cl == c {
				return true
			}
		}
	}
	return false
}

// Returns the value of the given key or false if the key is not present.
// Repeated keys resolve to the last pair in declaration order.
func (a *Attr) Get(key string) (string, bool) {
	if a.index != nil {
		v, ok := a.index[key]
		return v, ok
	}
	var (
		val   string
		found bool
	)
	for _, kv := range a.KVs {
		if kv.Key == key {
			val, found = kv.Value, true
		}
	}
	return val, found
}

// Returns a copy of attributes with the given class.
func (a Attr) WithClass(c string) Attr {
	if !a.HasClass(c) {
		a.Classes = append(append(make([]string, 0, len(a.Classes)+1), a.Classes...), c)
	}
	return a
}

// Returns a copy of attributes without the given class.
func (a Attr) WithoutClass(c string) Attr {
	for i, cl := range a.Classes {
		if cl == c {
			cls := append(make([]string, 0, len(a.Classes)-1), a.Classes[:i]...)
			a.Classes = append(cls, a.Classes[i+1:]...)
			return a
		}
	}
	return a
}

// Returns a copy of attributes with the given key-value pair. An existing
// key is overwritten in place, keeping its position.
func (a Attr) WithKV(key, value string) Attr {
	kvs := append(make([]KV, 0, len(a.KVs)+1), a.KVs...)
	for i := range kvs {
		if kvs[i].Key == key {
			kvs[i].Value = value
			a.KVs = kvs
			a.reindex()
			return a
		}
	}
	a.KVs = append(kvs, KV{key, value})
	a.reindex()
	return a
}

// Returns a copy of attributes without the given key.
func (a Attr) WithoutKey(key string) Attr {
	for i, kv := range a.KVs {
		if kv.Key == key {
			kvs := append(make([]KV, 0, len(a.KVs)-1), a.KVs[:i]...)
			a.KVs = append(kvs, a.KVs[i+1:]...)
			a.reindex()
			return a
		}
	}
	return a
}

// Returns a copy of attributes with the given key-value pairs, supplied
// as alternating keys and values.
func (a Attr) WithKVs(pairs ...string) Attr {
	kvs := append(make([]KV, 0, len(a.KVs)+len(pairs)/2), a.KVs...)
next:
	for i := 0; i+1 < len(pairs); i += 2 {
		for j := range kvs {
			if kvs[j].Key == pairs[i] {
				kvs[j].Value = pairs[i+1]
				continue next
			}
		}
		kvs = append(kvs, KV{pairs[i], pairs[i+1]})
	}
	a.KVs = kvs
	a.reindex()
	return a
}

// Returns a copy of attributes without the given keys.
func (a Attr) WithoutKeys(keys ...string) Attr {
	kvs := append(make([]KV, 0, len(a.KVs)), a.KVs...)
	for i := range keys {
		for j := range kvs {
			if kvs[j].Key == keys[i] {
				copy(kvs[j:], kvs[j+1:])
				kvs = kvs[:len(kvs)-1]
				break
			}
		}
	}
	a.KVs = kvs
	a.reindex()
	return a
}
