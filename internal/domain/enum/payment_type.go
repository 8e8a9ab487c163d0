package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentType represents how a sale is settled
type PaymentType int

const (
	PaymentTypeCash   PaymentType = 0
	PaymentTypeCredit PaymentType = 1
)

func (p PaymentType) String() string {
	names := [...]string{"Cash", "Credit"}
	if int(p) < 0 || int(p) >= len(names) {
		return "Cash"
	}
	return names[p]
}

func (p PaymentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PaymentType(i)
		return nil
	}
	switch str {
	case "Cash":
		*p = PaymentTypeCash
	case "Credit":
		*p = PaymentTypeCredit
	}
	return nil
}

func (p PaymentType) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PaymentType) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentTypeCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = PaymentType(v)
	case int:
		*p = PaymentType(v)
	}
	return nil
}
