package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleStatus represents the settlement status of a sale
type SaleStatus int

const (
	SaleStatusUnpaid SaleStatus = 0
	SaleStatusPaid   SaleStatus = 1
)

func (s SaleStatus) String() string {
	names := [...]string{"Unpaid", "Paid"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Unpaid"
	}
	return names[s]
}

func (s SaleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SaleStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SaleStatus(i)
		return nil
	}
	switch str {
	case "Unpaid":
		*s = SaleStatusUnpaid
	case "Paid":
		*s = SaleStatusPaid
	}
	return nil
}

func (s SaleStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SaleStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SaleStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SaleStatus(v)
	case int:
		*s = SaleStatus(v)
	}
	return nil
}
