package cart

import "testing"

func TestResolveTierPrice(t *testing.T) {
	product := testProduct("rice", 10, 10000)
	product.SellingPrice2 = 9000

	price, err := ResolveTierPrice(product, 1)
	if err != nil || price != 10000 {
		t.Errorf("tier 1: expected 10000, got %d (err %v)", price, err)
	}

	price, err = ResolveTierPrice(product, 2)
	if err != nil || price != 9000 {
		t.Errorf("tier 2: expected 9000, got %d (err %v)", price, err)
	}

	if _, err = ResolveTierPrice(product, 3); err == nil {
		t.Error("tier 3: expected error for unavailable tier")
	}

	if _, err = ResolveTierPrice(product, 0); err == nil {
		t.Error("tier 0: expected error for invalid tier")
	}
	if _, err = ResolveTierPrice(product, 4); err == nil {
		t.Error("tier 4: expected error for invalid tier")
	}
}
