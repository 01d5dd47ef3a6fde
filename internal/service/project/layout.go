package project

import "github.com/heartmarshall/portfolio-backend/internal/domain"

// DeriveLayout returns explicit when set. Otherwise cards alternate by the
// number of records that exist before the new one: even is left, odd is right.
func DeriveLayout(explicit *domain.Layout, count int) domain.Layout {
	if explicit != nil && explicit.IsValid() {
		return *explicit
	}
	if count%2 == 0 {
		return domain.LayoutLeft
	}
	return domain.LayoutRight
}
