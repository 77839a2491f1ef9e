package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ParseMonthKey(t *testing.T) {
	t.Run("uppercases the month token", func(t *testing.T) {
		key, err := ParseMonthKey("01 January 2024")
		require.NoError(t, err)
		require.Equal(t, MonthKey{Month: "JANUARY", Year: "2024"}, key)
		require.Equal(t, "JANUARY 2024", key.String())
	})

	t.Run("empty date fails", func(t *testing.T) {
		_, err := ParseMonthKey("")
		require.Error(t, err)
		var parseErr *RecordParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("missing year fails", func(t *testing.T) {
		_, err := ParseMonthKey("01 January")
		require.Error(t, err)
	})

	t.Run("extra whitespace is tolerated", func(t *testing.T) {
		key, err := ParseMonthKey("  01   march  2023 ")
		require.NoError(t, err)
		require.Equal(t, MonthKey{Month: "MARCH", Year: "2023"}, key)
	})
}

func Test_MonthKey_SortValue(t *testing.T) {
	t.Run("orders year-major then by calendar index", func(t *testing.T) {
		dec23, err := MonthKey{Month: "DECEMBER", Year: "2023"}.SortValue()
		require.NoError(t, err)
		jan24, err := MonthKey{Month: "JANUARY", Year: "2024"}.SortValue()
		require.NoError(t, err)
		mar23, err := MonthKey{Month: "MARCH", Year: "2023"}.SortValue()
		require.NoError(t, err)

		require.Less(t, mar23, dec23)
		require.Less(t, dec23, jan24)
	})

	t.Run("month lookup is case-insensitive", func(t *testing.T) {
		upper, err := MonthKey{Month: "JUNE", Year: "2024"}.SortValue()
		require.NoError(t, err)
		lower, err := MonthKey{Month: "june", Year: "2024"}.SortValue()
		require.NoError(t, err)
		require.Equal(t, upper, lower)
	})

	t.Run("unknown month is an integrity error", func(t *testing.T) {
		_, err := MonthKey{Month: "SMARCH", Year: "2024"}.SortValue()
		var integrityErr *IntegrityError
		require.ErrorAs(t, err, &integrityErr)
	})

	t.Run("non-numeric year is an integrity error", func(t *testing.T) {
		_, err := MonthKey{Month: "MARCH", Year: "twenty24"}.SortValue()
		var integrityErr *IntegrityError
		require.ErrorAs(t, err, &integrityErr)
	})
}
