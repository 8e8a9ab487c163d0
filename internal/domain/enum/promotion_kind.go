package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PromotionKind is the closed set of promotion variants. A promotion is either
// a price discount on eligible products or a buy-X-get-Y free-product grant;
// the kind decides which columns of the promotion row are meaningful.
type PromotionKind int

const (
	PromotionKindDiscount    PromotionKind = 0
	PromotionKindFreeProduct PromotionKind = 1
)

func (k PromotionKind) String() string {
	names := [...]string{"Discount", "FreeProduct"}
	if int(k) < 0 || int(k) >= len(names) {
		return "Discount"
	}
	return names[k]
}

func (k PromotionKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *PromotionKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = PromotionKind(i)
		return nil
	}
	switch str {
	case "Discount":
		*k = PromotionKindDiscount
	case "FreeProduct":
		*k = PromotionKindFreeProduct
	}
	return nil
}

func (k PromotionKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *PromotionKind) Scan(value interface{}) error {
	if value == nil {
		*k = PromotionKindDiscount
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = PromotionKind(v)
	case int:
		*k = PromotionKind(v)
	}
	return nil
}
