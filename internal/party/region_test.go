package party

import "testing"

func strPtr(s string) *string { return &s }

func TestNormalizeRegionIndonesiaKeepsCodes(t *testing.T) {
	province, regency, district := NormalizeRegion(CountryIndonesia, strPtr("31"), strPtr("3171"), strPtr("3171010"))
	if province == nil || *province != "31" {
		t.Fatalf("expected province 31, got %v", province)
	}
	if regency == nil || *regency != "3171" {
		t.Fatalf("expected regency 3171, got %v", regency)
	}
	if district == nil || *district != "3171010" {
		t.Fatalf("expected district 3171010, got %v", district)
	}
}

func TestNormalizeRegionIndonesiaPartialChain(t *testing.T) {
	province, regency, district := NormalizeRegion(CountryIndonesia, strPtr("31"), nil, nil)
	if province == nil || *province != "31" {
		t.Fatalf("expected province 31, got %v", province)
	}
	if regency != nil || district != nil {
		t.Fatalf("expected nil regency/district, got %v %v", regency, district)
	}
}

func TestNormalizeRegionForeignStripsCodes(t *testing.T) {
	province, regency, district := NormalizeRegion("SG", strPtr("31"), strPtr("3171"), strPtr("3171010"))
	if province != nil || regency != nil || district != nil {
		t.Fatalf("expected all codes stripped, got %v %v %v", province, regency, district)
	}
}
