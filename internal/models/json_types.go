package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray 以 JSON 存储的字符串数组（VIP 权益等）
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	raw, err := scanBytes(value)
	if err != nil || len(raw) == 0 {
		*s = StringArray{}
		return err
	}
	return json.Unmarshal(raw, s)
}

// AddressSnapshot 下单时的收货地址快照
type AddressSnapshot struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"district"`
	Detail   string `json:"detail"`
}

// Line 拼接完整地址
func (a AddressSnapshot) Line() string {
	return a.Province + a.City + a.District + a.Detail
}

// Value 实现 driver.Valuer 接口
func (a AddressSnapshot) Value() (driver.Value, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (a *AddressSnapshot) Scan(value interface{}) error {
	raw, err := scanBytes(value)
	if err != nil || len(raw) == 0 {
		*a = AddressSnapshot{}
		return err
	}
	return json.Unmarshal(raw, a)
}

func scanBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json column type %T", value)
	}
}
