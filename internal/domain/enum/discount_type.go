package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountType represents how a discount promotion reduces the unit price
type DiscountType int

const (
	DiscountTypePercent DiscountType = 0
	DiscountTypeFixed   DiscountType = 1
)

func (t DiscountType) String() string {
	names := [...]string{"Percent", "Fixed"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Percent"
	}
	return names[t]
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DiscountType(i)
		return nil
	}
	switch str {
	case "Percent":
		*t = DiscountTypePercent
	case "Fixed":
		*t = DiscountTypeFixed
	}
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypePercent
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DiscountType(v)
	case int:
		*t = DiscountType(v)
	}
	return nil
}
