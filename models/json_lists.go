package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Các danh sách lọc của khuyến mãi được lưu dưới dạng cột json.
// Danh sách rỗng nghĩa là không giới hạn (áp dụng cho tất cả).

type UintList []uint

func (l UintList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *UintList) Scan(value interface{}) error {
	return scanJSONList(value, l)
}

// IsRestricted cho biết danh sách có giới hạn phạm vi áp dụng hay không
func (l UintList) IsRestricted() bool {
	return len(l) > 0
}

func (l UintList) Contains(id uint) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

type IntList []int

func (l IntList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *IntList) Scan(value interface{}) error {
	return scanJSONList(value, l)
}

func (l IntList) IsRestricted() bool {
	return len(l) > 0
}

func (l IntList) Contains(v int) bool {
	for _, item := range l {
		if item == v {
			return true
		}
	}
	return false
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSONList(value, l)
}

func (l StringList) IsRestricted() bool {
	return len(l) > 0
}

func (l StringList) Contains(v string) bool {
	for _, item := range l {
		if item == v {
			return true
		}
	}
	return false
}

func scanJSONList(value interface{}, target interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, target)
	case string:
		return json.Unmarshal([]byte(v), target)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}
