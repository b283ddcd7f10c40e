// Package yaml provides query sources that decode a YAML document held in memory. The document must
// contain a list; its elements become the elements of the query.
package yaml

import (
	"fmt"
	"reflect"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/query/errors"
	"github.com/lyraproj/query/hash"
	"github.com/lyraproj/query/query"
	ym "gopkg.in/yaml.v2"
)

type value struct {
	v interface{}
}

// Unmarshal decodes the list in the given YAML document into a query over elements of type T. It panics
// with QUERY_PARSE_ERROR if the document cannot be decoded into a []T.
func Unmarshal[T any](data []byte) query.Query[T] {
	var items []T
	if err := ym.Unmarshal(data, &items); err != nil {
		panic(parseError(err))
	}
	return query.From(items)
}

// Values decodes the list in the given YAML document into a query over generic values. Mappings are
// represented as frozen *hash.Ordered[interface{}, interface{}] that retain the key order of the document
// and sequences as []interface{}.
func Values(data []byte) query.Query[interface{}] {
	var items []value
	if err := ym.Unmarshal(data, &items); err != nil {
		panic(parseError(err))
	}
	vs := make([]interface{}, len(items))
	for i, item := range items {
		vs[i] = item.v
	}
	return query.From(vs)
}

func (v *value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var items []value
	if err := unmarshal(&items); err == nil {
		vs := make([]interface{}, len(items))
		for i, item := range items {
			vs[i] = item.v
		}
		v.v = vs
		return nil
	}
	ms := make(ym.MapSlice, 0)
	if err := unmarshal(&ms); err == nil {
		h, err := wrapSlice(ms)
		if err != nil {
			return err
		}
		v.v = h
		return nil
	}
	return unmarshal(&v.v)
}

// wrapSlice converts a decoded mapping into a frozen *hash.Ordered. Keys that Go cannot hash, such as
// the sequences or mappings that YAML allows as complex keys, are rejected.
func wrapSlice(ms ym.MapSlice) (*hash.Ordered[interface{}, interface{}], error) {
	h := hash.NewOrdered[interface{}, interface{}](len(ms))
	for _, me := range ms {
		if me.Key != nil && !reflect.TypeOf(me.Key).Comparable() {
			return nil, fmt.Errorf(`mapping key %v cannot be used as a hash key`, me.Key)
		}
		wv, err := wrapValue(me.Value)
		if err != nil {
			return nil, err
		}
		h.Put(me.Key, wv)
	}
	h.Freeze()
	return h, nil
}

func wrapValue(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case ym.MapSlice:
		return wrapSlice(v)
	case []interface{}:
		vs := make([]interface{}, len(v))
		for i, y := range v {
			wv, err := wrapValue(y)
			if err != nil {
				return nil, err
			}
			vs[i] = wv
		}
		return vs, nil
	default:
		return v, nil
	}
}

func parseError(err error) error {
	return errors.Wrap(errors.ParseError, err, issue.H{`language`: `YAML`, `detail`: err.Error()})
}
