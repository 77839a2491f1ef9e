package calculator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Average(t *testing.T) {
	t.Run("empty input returns zero", func(t *testing.T) {
		require.Equal(t, 0.0, Average(nil))
		require.Equal(t, 0.0, Average([]float64{}))
	})

	t.Run("simple mean", func(t *testing.T) {
		require.Equal(t, 2.5, Average([]float64{1, 2, 3, 4}))
	})

	t.Run("result is rounded to 2 decimals", func(t *testing.T) {
		// 1/3 -> 0.333... -> 0.33
		require.Equal(t, 0.33, Average([]float64{0, 0, 1}))
	})
}

func Test_Median(t *testing.T) {
	t.Run("empty input returns zero", func(t *testing.T) {
		require.Equal(t, 0.0, Median(nil))
	})

	t.Run("even length averages the middle pair", func(t *testing.T) {
		require.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	})

	t.Run("odd length takes the middle element", func(t *testing.T) {
		require.Equal(t, 2.0, Median([]float64{1, 2, 3}))
	})

	t.Run("unsorted input", func(t *testing.T) {
		require.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	})
}

func Test_StdDev(t *testing.T) {
	t.Run("empty input returns zero", func(t *testing.T) {
		require.Equal(t, 0.0, StdDev(nil))
	})

	t.Run("single element returns zero", func(t *testing.T) {
		require.Equal(t, 0.0, StdDev([]float64{42}))
	})

	t.Run("population stdev divides by n", func(t *testing.T) {
		// mean 3, squared deviations sum 8, 8/4=2, sqrt(2)=1.4142...
		require.Equal(t, 1.41, StdDev([]float64{1, 2, 3, 4, 5}))
	})

	t.Run("no spread", func(t *testing.T) {
		require.Equal(t, 0.0, StdDev([]float64{5, 5, 5}))
	})
}

func Test_Round2(t *testing.T) {
	require.Equal(t, 3.33, Round2(10.0/3.0))
	require.Equal(t, 2.68, Round2(2.675))
	require.Equal(t, -1.5, Round2(-1.499999999))
	require.Equal(t, 5.0, Round2(5))
}
