package grid

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"yqhp/reports/common/types"
	"yqhp/reports/internal/report"

	"github.com/shopspring/decimal"
)

// Text 将值转换为纯文本
func Text(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(types.DateTimeFormat)
	case *time.Time:
		if v == nil {
			return ""
		}
		return Text(*v)
	case types.DateTime:
		if v.IsZero() {
			return ""
		}
		return v.String()
	case *types.DateTime:
		if v == nil {
			return ""
		}
		return Text(*v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

// Cast 按预定义的类型转换输出文本
func Cast(value any, casting string) string {
	switch casting {
	case report.CastInt:
		if d, ok := toDecimal(value); ok {
			return d.Truncate(0).String()
		}
	case report.CastDecimal:
		if d, ok := toDecimal(value); ok {
			return d.StringFixed(2)
		}
	case report.CastCurrency:
		if d, ok := toDecimal(value); ok {
			if d.IsNegative() {
				return "-$" + d.Abs().StringFixed(2)
			}
			return "$" + d.StringFixed(2)
		}
	case report.CastDate:
		if t, ok := toTime(value); ok {
			return t.Format(types.DateFormat)
		}
	case report.CastDatetime:
		if t, ok := toTime(value); ok {
			return t.Format(types.DateTimeFormat)
		}
	case report.CastBoolean:
		if b, ok := toBool(value); ok {
			if b {
				return "Yes"
			}
			return "No"
		}
	}
	return Text(value)
}

func toDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int8:
		return decimal.NewFromInt(int64(v)), true
	case int16:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(v)), 0), true
	case uint8:
		return decimal.NewFromInt(int64(v)), true
	case uint16:
		return decimal.NewFromInt(int64(v)), true
	case uint32:
		return decimal.NewFromInt(int64(v)), true
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case float64:
		return decimal.NewFromFloat(v), true
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	case []byte:
		d, err := decimal.NewFromString(string(v))
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case types.DateTime:
		return v.Time(), !v.IsZero()
	case *types.DateTime:
		if v == nil {
			return time.Time{}, false
		}
		return v.Time(), !v.IsZero()
	case string:
		for _, layout := range []string{types.DateTimeFormat, types.DateFormat, time.RFC3339} {
			if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func toBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case *bool:
		if v == nil {
			return false, false
		}
		return *v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	}
	if d, ok := toDecimal(value); ok {
		return !d.IsZero(), true
	}
	return false, false
}
