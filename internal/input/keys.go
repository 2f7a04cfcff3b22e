package input

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a logical key. Device keys are mapped onto these by Bindings.
type Key uint8

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyRun
	KeyJump
	keyCount
)

var keyNames = [keyCount]string{
	KeyForward: "forward",
	KeyBack:    "back",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyRun:     "run",
	KeyJump:    "jump",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey resolves a logical key name such as "forward".
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return Key(k), true
		}
	}
	return 0, false
}

// KeySet is a set of held logical keys.
type KeySet uint8

func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

func (s KeySet) With(k Key) KeySet    { return s | 1<<k }
func (s KeySet) Has(k Key) bool       { return s&(1<<k) != 0 }
func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

// Bindings maps each logical key to the device key codes that press it.
// Several codes per key give aliases (WASD and arrows).
type Bindings map[Key][]int32

// ParseBindings resolves a name-keyed table, as found in config files,
// into Bindings. Device key names are looked up in codes.
func ParseBindings(table map[string][]string, codes map[string]int32) (Bindings, error) {
	b := make(Bindings, len(table))
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		k, ok := ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		for _, dev := range table[name] {
			code, ok := codes[strings.ToUpper(dev)]
			if !ok {
				return nil, fmt.Errorf("action %q: unknown key %q", name, dev)
			}
			b[k] = append(b[k], code)
		}
	}

	for k := Key(0); k < keyCount; k++ {
		if len(b[k]) == 0 {
			return nil, fmt.Errorf("action %q has no key bound", k)
		}
	}
	return b, nil
}
