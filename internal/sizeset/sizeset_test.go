package sizeset_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beltstock/internal/domain"
	apperror "beltstock/internal/errors"
	"beltstock/internal/sizeset"
)

func requireValidation(t *testing.T, err error, msg string) *apperror.ValidationError {
	t.Helper()
	var vErr *apperror.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, msg, vErr.Msg)
	return vErr
}

func TestDerive_Explicit_DedupPreservesOrder(t *testing.T) {
	labels, err := sizeset.Derive(sizeset.Explicit([]string{"40", "40", "42"}, ""))

	require.NoError(t, err)
	assert.Equal(t, []string{"40", "42"}, labels)
}

func TestDerive_Explicit_PrefixOnlyOnNumericTokens(t *testing.T) {
	labels, err := sizeset.Derive(sizeset.Explicit([]string{"40", "42"}, "RU"))
	require.NoError(t, err)
	assert.Equal(t, []string{"RU40", "RU42"}, labels)

	labels, err = sizeset.Derive(sizeset.Explicit([]string{"A1"}, "RU"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, labels)
}

func TestDerive_Explicit_SplitsTrimsAndNormalizesPrefix(t *testing.T) {
	labels, err := sizeset.Derive(sizeset.Explicit([]string{" 41, 42 ,, 45", "41"}, " ru "))

	require.NoError(t, err)
	assert.Equal(t, []string{"RU41", "RU42", "RU45"}, labels)
}

func TestDerive_Explicit_EmptyFails(t *testing.T) {
	_, err := sizeset.Derive(sizeset.Explicit([]string{" ", ",", ""}, ""))
	requireValidation(t, err, sizeset.MsgNoValidSizes)

	_, err = sizeset.Derive(sizeset.Explicit(nil, "RU"))
	requireValidation(t, err, sizeset.MsgNoValidSizes)
}

func TestDerive_Range(t *testing.T) {
	labels, err := sizeset.Derive(sizeset.Range(38, 42, 2, ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"38", "40", "42"}, labels)

	labels, err = sizeset.Derive(sizeset.Range(1, 1, 1, ""))
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, labels)

	labels, err = sizeset.Derive(sizeset.Range(10, 15, 2, "yh"))
	require.NoError(t, err)
	assert.Equal(t, []string{"YH10", "YH12", "YH14"}, labels)
}

func TestDerive_Range_Invalid(t *testing.T) {
	cases := map[string]sizeset.Spec{
		"end before start": sizeset.Range(5, 1, 1, ""),
		"zero interval":    sizeset.Range(1, 5, 0, ""),
		"negative step":    sizeset.Range(1, 5, -1, ""),
	}
	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sizeset.Derive(spec)
			requireValidation(t, err, sizeset.MsgInvalidRange)
		})
	}
}

func TestDerive_PrefixTooLong(t *testing.T) {
	_, err := sizeset.Derive(sizeset.Explicit([]string{"40"}, "ABCDEF"))
	requireValidation(t, err, sizeset.MsgPrefixTooLong)
}

func TestRangeCount_MatchesDerive(t *testing.T) {
	for start := -3; start <= 6; start++ {
		for end := start; end <= 12; end++ {
			for interval := 1; interval <= 5; interval++ {
				spec := sizeset.Range(start, end, interval, "P")
				labels, err := sizeset.Derive(spec)
				require.NoError(t, err)
				assert.Len(t, labels, sizeset.RangeCount(spec), "start=%d end=%d interval=%d", start, end, interval)
			}
		}
	}
}

func TestRangeCount_InvalidIsZero(t *testing.T) {
	assert.Equal(t, 0, sizeset.RangeCount(sizeset.Range(5, 1, 1, "")))
	assert.Equal(t, 0, sizeset.RangeCount(sizeset.Range(1, 5, 0, "")))
	assert.Equal(t, 0, sizeset.RangeCount(sizeset.Explicit([]string{"1"}, "")))
	assert.Equal(t, 3, sizeset.RangeCount(sizeset.Range(38, 42, 2, "")))
	assert.Equal(t, 3, sizeset.RangeCount(sizeset.Range(38, 43, 2, "")))
}

func TestDerive_Range_ExtremeValues(t *testing.T) {
	cases := []struct {
		name  string
		spec  sizeset.Spec
		count int
		first string
		last  string
	}{
		{"end at MaxInt", sizeset.Range(math.MaxInt-1, math.MaxInt, 2, ""), 1, "9223372036854775806", "9223372036854775806"},
		{"last step lands on MaxInt", sizeset.Range(math.MaxInt-4, math.MaxInt, 2, ""), 3, "9223372036854775803", "9223372036854775807"},
		{"full span in two steps", sizeset.Range(math.MinInt+1, math.MaxInt-1, math.MaxInt, ""), 2, "-9223372036854775807", "0"},
		{"start at MinInt", sizeset.Range(math.MinInt, math.MinInt+2, 1, "RU"), 3, "RU-9223372036854775808", "RU-9223372036854775806"},
		{"exactly MaxRangeSizes", sizeset.Range(-500, 499, 1, ""), sizeset.MaxRangeSizes, "-500", "499"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			done := make(chan struct{})
			var (
				labels []string
				err    error
			)
			go func() {
				defer close(done)
				labels, err = sizeset.Derive(tc.spec)
			}()
			select {
			case <-done:
			case <-time.After(3 * time.Second):
				t.Fatal("Derive não terminou")
			}

			require.NoError(t, err)
			require.Len(t, labels, tc.count)
			assert.Equal(t, tc.count, sizeset.RangeCount(tc.spec))
			assert.Equal(t, tc.first, labels[0])
			assert.Equal(t, tc.last, labels[len(labels)-1])
		})
	}
}

func TestDerive_Range_TooManySizes(t *testing.T) {
	cases := map[string]sizeset.Spec{
		"one past the limit":      sizeset.Range(0, sizeset.MaxRangeSizes, 1, ""),
		"huge span":               sizeset.Range(0, 9000000000, 1, ""),
		"whole int range":         sizeset.Range(0, math.MaxInt, 1, ""),
		"negative start huge end": sizeset.Range(math.MinInt, math.MaxInt, 1, ""),
	}
	for name, spec := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := sizeset.Derive(spec)
			requireValidation(t, err, sizeset.MsgInvalidRange)
			assert.Equal(t, 0, sizeset.RangeCount(spec))
			assert.Equal(t, 0, sizeset.Count(spec))
		})
	}
}

func TestCount_Explicit(t *testing.T) {
	assert.Equal(t, 2, sizeset.Count(sizeset.Explicit([]string{"40, 40, 42"}, "")))
	assert.Equal(t, 0, sizeset.Count(sizeset.Explicit([]string{""}, "")))
}

func TestParseRange(t *testing.T) {
	spec, err := sizeset.ParseRange(" 38", "42 ", "2", "ru")
	require.NoError(t, err)
	assert.Equal(t, sizeset.Range(38, 42, 2, "ru"), spec)

	_, err = sizeset.ParseRange("abc", "42", "2", "")
	requireValidation(t, err, sizeset.MsgInvalidRange)

	_, err = sizeset.ParseRange("1", "", "2", "")
	requireValidation(t, err, sizeset.MsgInvalidRange)
}

func TestValidateAgainstStock(t *testing.T) {
	stock := domain.Stock{Sizes: []string{"40", "42"}}

	assert.NoError(t, sizeset.ValidateAgainstStock([]string{"42", "40"}, stock))

	err := sizeset.ValidateAgainstStock([]string{"99"}, stock)
	vErr := requireValidation(t, err, "sizes not found: 99")
	assert.Equal(t, []string{"99"}, vErr.Offending)
}

func TestValidateAgainstStock_CollectsEveryMissingSize(t *testing.T) {
	stock := domain.Stock{Sizes: []string{"RU40"}}

	err := sizeset.ValidateAgainstStock([]string{"RU41", "RU40", "40", "RU41"}, stock)

	vErr := requireValidation(t, err, "sizes not found: RU41, 40")
	assert.Equal(t, []string{"RU41", "40"}, vErr.Offending)
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, sizeset.IsNumeric("42"))
	assert.True(t, sizeset.IsNumeric("4.5"))
	assert.True(t, sizeset.IsNumeric("-3"))
	assert.False(t, sizeset.IsNumeric("A1"))
	assert.False(t, sizeset.IsNumeric("NaN"))
	assert.False(t, sizeset.IsNumeric("Inf"))
	assert.False(t, sizeset.IsNumeric("Infinity"))
	assert.False(t, sizeset.IsNumeric("0x10"))
	assert.False(t, sizeset.IsNumeric(""))
}

func TestFromInput(t *testing.T) {
	start, end, interval := 10, 14, 2

	spec, err := sizeset.FromInput(domain.SizeInput{SizeMode: "multiple", Start: &start, End: &end, Interval: &interval, SizePrefix: "ut"})
	require.NoError(t, err)
	labels, err := sizeset.Derive(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"UT10", "UT12", "UT14"}, labels)

	spec, err = sizeset.FromInput(domain.SizeInput{SingleSize: domain.SizeList{"41", "42"}})
	require.NoError(t, err)
	assert.Equal(t, sizeset.ModeExplicit, spec.Mode)

	_, err = sizeset.FromInput(domain.SizeInput{SizeMode: "multiple", Start: &start})
	requireValidation(t, err, sizeset.MsgInvalidRange)

	_, err = sizeset.FromInput(domain.SizeInput{SizeMode: "grid"})
	requireValidation(t, err, sizeset.MsgUnknownSizeMode)
}
