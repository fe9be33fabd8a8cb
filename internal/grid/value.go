package grid

import (
	"reflect"
	"strings"
)

// Value 按键从记录中取值，支持 map、结构体字段、无参方法，以及 a.b 形式的关联路径
func Value(record any, key string) any {
	cur := record
	for _, part := range strings.Split(key, ".") {
		v, ok := lookup(cur, part)
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookup(record any, name string) (any, bool) {
	if record == nil || name == "" {
		return nil, false
	}

	switch m := record.(type) {
	case map[string]any:
		v, ok := m[name]
		return v, ok
	case map[string]string:
		v, ok := m[name]
		return v, ok
	}

	rv := reflect.ValueOf(record)
	if method := rv.MethodByName(name); method.IsValid() && isGetter(method.Type()) {
		return method.Call(nil)[0].Interface(), true
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		f := rv.FieldByName(name)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	}
	return nil, false
}

func isGetter(t reflect.Type) bool {
	return t.NumIn() == 0 && t.NumOut() == 1
}

// EditLinker 提供后台编辑地址的记录
type EditLinker interface {
	CMSEditLink() string
}

// EditLink 记录的编辑地址
func EditLink(record any) string {
	if l, ok := record.(EditLinker); ok {
		return l.CMSEditLink()
	}
	if s, ok := Value(record, "CMSEditLink").(string); ok {
		return s
	}
	return ""
}
