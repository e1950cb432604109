package domain

import "github.com/shopspring/decimal"

// vatDivisor strips the 10% VAT included in quoted prices.
var vatDivisor = decimal.RequireFromString("1.1")

var (
	progressClosed = decimal.NewFromInt(1)
	progressWon    = decimal.RequireFromString("0.3")
)

// PriceExcludingTax returns price / 1.1, or nil when no price is set.
func PriceExcludingTax(price *decimal.Decimal) *decimal.Decimal {
	if price == nil {
		return nil
	}
	v := price.Div(vatDivisor)
	return &v
}

// NetSalary returns base + bonus - deductions. Missing components count as zero.
func NetSalary(base decimal.Decimal, bonus, deductions *decimal.Decimal) decimal.Decimal {
	net := base
	if bonus != nil {
		net = net.Add(*bonus)
	}
	if deductions != nil {
		net = net.Sub(*deductions)
	}
	return net
}

// TotalStockValue returns quantity * unitPrice, or nil when the item has no unit price.
func TotalStockValue(quantity int, unitPrice *decimal.Decimal) *decimal.Decimal {
	if unitPrice == nil {
		return nil
	}
	v := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return &v
}

// ProgressToWon maps a stage to its pipeline progress signal.
func ProgressToWon(stage Stage) decimal.Decimal {
	switch stage {
	case StageClosed:
		return progressClosed
	case StageWon:
		return progressWon
	default:
		return decimal.Zero
	}
}
