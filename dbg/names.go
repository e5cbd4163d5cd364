package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for values that otherwise print as a wall of coordinates.
// Names are generated lazily and remembered forever, so memory only grows
// while something is actually asking for names.

var (
	mu   sync.Mutex
	memo map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Names are handed out in order of demand, so make them nondeterministic as a
	// reminder that a name means nothing across runs.
	petname.NonDeterministicMode()
}

// Stands in for keys that are not equal to themselves.
type nanKey struct {
	text string
}

// Name returns the same readable name every time it sees an equal key. Keys
// must be comparable; segments and vectors are. Keys holding NaN are matched by
// their printed form.
func Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	key := obj
	if key != key {
		key = nanKey{fmt.Sprintf("%T %+v", obj, obj)}
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	value := reflect.ValueOf(obj)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return value.IsNil()
	}
	return false
}
