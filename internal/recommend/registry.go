package recommend

import (
	_ "embed"

	jsoniter "github.com/json-iterator/go"
)

// The method registry is versioned static data, not code: keyword variants
// accumulate over time (the stored production time lines contain the
// historical "Subilimation" spelling, which must stay matchable), so new
// spellings are added to methods.json without touching the matcher.
//
//go:embed methods.json
var methodsData []byte

// Method is one registry entry: the display name, the product column key and
// the keyword variants used to match production time lines.
type Method struct {
	Name     string   `json:"name"`
	Key      string   `json:"key"`
	Keywords []string `json:"keywords"`
}

var registry []Method

func init() {
	if err := jsoniter.Unmarshal(methodsData, &registry); err != nil {
		panic("recommend: bad methods.json: " + err.Error())
	}
}

// Methods returns all registry entries in their fixed order. The order is
// significant, it defines the order of compiled method details.
func Methods() []Method {
	return registry
}

// LookupKey returns the registry entry for a method key.
func LookupKey(key string) (Method, bool) {
	for _, m := range registry {
		if m.Key == key {
			return m, true
		}
	}
	return Method{}, false
}

// LookupName returns the registry entry for a method display name.
func LookupName(name string) (Method, bool) {
	for _, m := range registry {
		if m.Name == name {
			return m, true
		}
	}
	return Method{}, false
}

// MethodKeys returns the eight method keys in registry order.
func MethodKeys() []string {
	keys := make([]string, 0, len(registry))
	for _, m := range registry {
		keys = append(keys, m.Key)
	}
	return keys
}
