package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CustomerType distinguishes walk-in cash customers from credit account holders
type CustomerType int

const (
	CustomerTypeCash   CustomerType = 0
	CustomerTypeCredit CustomerType = 1
)

func (t CustomerType) String() string {
	names := [...]string{"Cash", "Credit"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Cash"
	}
	return names[t]
}

func (t CustomerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *CustomerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = CustomerType(i)
		return nil
	}
	switch str {
	case "Cash":
		*t = CustomerTypeCash
	case "Credit":
		*t = CustomerTypeCredit
	}
	return nil
}

func (t CustomerType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *CustomerType) Scan(value interface{}) error {
	if value == nil {
		*t = CustomerTypeCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = CustomerType(v)
	case int:
		*t = CustomerType(v)
	}
	return nil
}
