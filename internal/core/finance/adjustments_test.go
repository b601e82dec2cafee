package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
	"github.com/splitbooks/splitbooks_app/internal/core/finance"
)

func percentAdj(value string) domain.Adjustment {
	return domain.Adjustment{Kind: domain.AdjustmentPercent, Value: decimal.RequireFromString(value)}
}

func fixedAdj(value string) domain.Adjustment {
	return domain.Adjustment{Kind: domain.AdjustmentFixed, Value: decimal.RequireFromString(value)}
}

func TestApplyAdjustments(t *testing.T) {
	tests := []struct {
		name        string
		base        string
		adjustments []domain.Adjustment
		want        string
	}{
		{
			name:        "empty list returns base unchanged",
			base:        "100",
			adjustments: nil,
			want:        "100",
		},
		{
			name:        "single negative percent",
			base:        "200",
			adjustments: []domain.Adjustment{percentAdj("-3")},
			want:        "194",
		},
		{
			name:        "single fixed fee",
			base:        "200",
			adjustments: []domain.Adjustment{fixedAdj("-12.50")},
			want:        "187.5",
		},
		{
			name:        "percent then fixed",
			base:        "100",
			adjustments: []domain.Adjustment{percentAdj("-10"), fixedAdj("5")},
			want:        "95",
		},
		{
			name:        "fixed then percent gives a different result",
			base:        "100",
			adjustments: []domain.Adjustment{fixedAdj("5"), percentAdj("-10")},
			want:        "94.5",
		},
		{
			name:        "percent compounds on running total not the base",
			base:        "100",
			adjustments: []domain.Adjustment{percentAdj("-50"), percentAdj("-50")},
			want:        "25",
		},
		{
			name:        "discount may drive the net negative",
			base:        "100",
			adjustments: []domain.Adjustment{fixedAdj("-150")},
			want:        "-50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finance.ApplyAdjustments(decimal.RequireFromString(tt.base), tt.adjustments)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
