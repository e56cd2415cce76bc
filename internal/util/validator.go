package util

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(10_000_000)

// ValidateAmount 金额不能为负，且不超过一千万
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", amount)
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ValidateDate 日期必须为 YYYY-MM-DD
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return fmt.Errorf("date is empty")
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}
	return nil
}

// ValidateOptionalDate 允许为空
func ValidateOptionalDate(dateStr string) error {
	if dateStr == "" {
		return nil
	}
	return ValidateDate(dateStr)
}

// ValidateTime 时间必须为 HH:mm，可为空
func ValidateTime(timeStr string) error {
	if timeStr == "" {
		return nil
	}
	if len(timeStr) != 5 {
		return fmt.Errorf("invalid time format: %q", timeStr)
	}
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return fmt.Errorf("invalid time format: %w", err)
	}
	return nil
}

// ValidateCategory 分类是自由文本，只限制长度
func ValidateCategory(category string) error {
	if utf8.RuneCountInString(category) > 40 {
		return fmt.Errorf("category too long, max 40 characters")
	}
	return nil
}
