package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
)

// StringList 自定义类型，用于数据库 JSON 字段的自动扫描。
//
// Profile list columns arrive in three shapes depending on the client that
// wrote them: a JSON array, a JSON-encoded string containing an array, or
// NULL. Scan and UnmarshalJSON accept all of them and degrade anything else
// to an empty list instead of failing the row.
type StringList []string

// Scan 实现 sql.Scanner 接口
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*s = nil
		return nil
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		*s = nil
		return nil
	}
	*s = decodeStringList(bytes)
	return nil
}

// Value 实现 driver.Valuer 接口
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// UnmarshalJSON accepts the same loose shapes as Scan.
func (s *StringList) UnmarshalJSON(data []byte) error {
	*s = decodeStringList(data)
	return nil
}

func decodeStringList(data []byte) StringList {
	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err == nil {
		return fromRaw(raw)
	}

	// Double-encoded: a JSON string whose content is itself a JSON array.
	var inner string
	if err := json.Unmarshal(data, &inner); err == nil {
		if err := json.Unmarshal([]byte(inner), &raw); err == nil {
			return fromRaw(raw)
		}
	}

	return nil
}

// fromRaw keeps string elements and discards the rest.
func fromRaw(raw []interface{}) StringList {
	if len(raw) == 0 {
		return nil
	}
	out := make(StringList, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// Normalized returns the list with every entry trimmed and empties dropped.
func (s StringList) Normalized() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for _, v := range s {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
