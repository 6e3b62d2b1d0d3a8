package convert_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/ahauschulte/si-prefix-converter/convert"
	"github.com/ahauschulte/si-prefix-converter/siprefix"
)

var fixedPairs = []struct {
	source siprefix.Prefix
	target siprefix.Prefix
}{
	{siprefix.Kilo, siprefix.Unit},
	{siprefix.Unit, siprefix.Kilo},
	{siprefix.Deci, siprefix.Deca},
	{siprefix.Deca, siprefix.Deci},
	{siprefix.Quetta, siprefix.Ronna},
	{siprefix.Micro, siprefix.Milli},
	{siprefix.Kilo, siprefix.Kilo},
	{siprefix.Tera, siprefix.Micro},
	{siprefix.Quecto, siprefix.Quetta},
}

// A fixed converter must behave exactly like the one-shot function it
// was resolved from, including agreement on failures.
func TestFixedEquivalence(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		values := []int64{0, 1, -1, 9, 15, -15, 20, 123456789, 1_000_000_000_000}

		for _, pair := range fixedPairs {
			c, err := convert.NewFixed[int64](pair.source, pair.target)
			if err != nil {
				_, oneErr := convert.Int64(pair.source, pair.target, 1)
				require.Error(t, oneErr)
				continue
			}

			for _, v := range values {
				want, wantErr := convert.Int64(pair.source, pair.target, v)
				got, gotErr := c.Convert(v)

				if wantErr != nil {
					require.Error(t, gotErr, "%s->%s %d", pair.source, pair.target, v)
					continue
				}
				require.NoError(t, gotErr, "%s->%s %d", pair.source, pair.target, v)
				require.Equal(t, want, got, "%s->%s %d", pair.source, pair.target, v)
			}
		}
	})

	t.Run("int32", func(t *testing.T) {
		values := []int32{0, 1, -1, 15, -15, 123456789}

		for _, pair := range fixedPairs {
			c, err := convert.NewFixed[int32](pair.source, pair.target)
			if err != nil {
				_, oneErr := convert.Int32(pair.source, pair.target, 1)
				require.Error(t, oneErr)
				continue
			}

			for _, v := range values {
				want, wantErr := convert.Int32(pair.source, pair.target, v)
				got, gotErr := c.Convert(v)

				if wantErr != nil {
					require.Error(t, gotErr, "%s->%s %d", pair.source, pair.target, v)
					continue
				}
				require.NoError(t, gotErr, "%s->%s %d", pair.source, pair.target, v)
				require.Equal(t, want, got, "%s->%s %d", pair.source, pair.target, v)
			}
		}
	})

	t.Run("float64", func(t *testing.T) {
		values := []float64{0, 1, -1, 0.5, 123.456, 1e300, -1e300}

		for _, pair := range fixedPairs {
			c, err := convert.NewFixed[float64](pair.source, pair.target)
			require.NoError(t, err)

			for _, v := range values {
				want, wantErr := convert.Float64(pair.source, pair.target, v)
				require.NoError(t, wantErr)

				got, gotErr := c.Convert(v)
				require.NoError(t, gotErr)
				require.Equal(t, want, got, "%s->%s %v", pair.source, pair.target, v)
			}
		}
	})

	t.Run("bigint", func(t *testing.T) {
		values := []string{"0", "1", "-1", "15", "-15", "123456789012345678901234567890"}

		for _, pair := range fixedPairs {
			c, err := convert.NewFixed[*big.Int](pair.source, pair.target)
			require.NoError(t, err)

			for _, s := range values {
				value := new(big.Int)
				require.NoError(t, value.UnmarshalText([]byte(s)))

				want, wantErr := convert.BigInt(pair.source, pair.target, value)
				require.NoError(t, wantErr)

				got, gotErr := c.Convert(value)
				require.NoError(t, gotErr)
				require.Equal(t, want.String(), got.String(), "%s->%s %s", pair.source, pair.target, s)
			}
		}
	})
}

func TestNewFixed(t *testing.T) {
	t.Run("accessors", func(t *testing.T) {
		c, err := convert.NewFixed[int64](siprefix.Kilo, siprefix.Micro)
		require.NoError(t, err)
		require.Equal(t, siprefix.Kilo, c.Source())
		require.Equal(t, siprefix.Micro, c.Target())
	})

	t.Run("invalid prefix", func(t *testing.T) {
		_, err := convert.NewFixed[int64](siprefix.Prefix(11), siprefix.Unit)
		require.Error(t, err)
		require.True(t, convert.ErrPrefix.Has(err))

		_, err = convert.NewFixed[float64](siprefix.Unit, siprefix.Prefix(11))
		require.Error(t, err)
		require.True(t, convert.ErrPrefix.Has(err))
	})

	t.Run("range checked at construction", func(t *testing.T) {
		// Tera to nano needs 10^21: int64 construction must fail before
		// any value is seen.
		_, err := convert.NewFixed[int64](siprefix.Tera, siprefix.Nano)
		require.Error(t, err)
		require.True(t, convert.ErrRange.Has(err))

		_, err = convert.NewFixed[int32](siprefix.Tera, siprefix.Unit)
		require.Error(t, err)
		require.True(t, convert.ErrRange.Has(err))

		// The same spans are fine for the unbounded representations.
		_, err = convert.NewFixed[float64](siprefix.Tera, siprefix.Nano)
		require.NoError(t, err)

		_, err = convert.NewFixed[*big.Int](siprefix.Quetta, siprefix.Quecto)
		require.NoError(t, err)
	})

	t.Run("overflow stays per call", func(t *testing.T) {
		c, err := convert.NewFixed[int64](siprefix.Unit, siprefix.Deci)
		require.NoError(t, err)

		got, err := c.Convert(5)
		require.NoError(t, err)
		require.Equal(t, int64(50), got)

		_, err = c.Convert(1_000_000_000_000_000_000)
		require.Error(t, err)
		require.True(t, convert.ErrOverflow.Has(err))
	})

	t.Run("nil bigint per call", func(t *testing.T) {
		c, err := convert.NewFixed[*big.Int](siprefix.Kilo, siprefix.Unit)
		require.NoError(t, err)

		_, err = c.Convert(nil)
		require.Error(t, err)
		require.True(t, convert.Error.Has(err))
	})
}

func TestFixedSource(t *testing.T) {
	c, err := convert.NewFixedSource[int64](siprefix.Deca)
	require.NoError(t, err)
	require.Equal(t, siprefix.Deca, c.Source())

	t.Logf("converter: %s", spew.Sdump(c))

	got, err := c.Convert(siprefix.Deci, 1)
	require.NoError(t, err)
	require.Equal(t, int64(100), got)

	got, err = c.Convert(siprefix.Kilo, 1000)
	require.NoError(t, err)
	require.Equal(t, int64(10), got)

	_, err = c.Convert(siprefix.Prefix(7), 1)
	require.Error(t, err)
	require.True(t, convert.ErrPrefix.Has(err))

	_, err = convert.NewFixedSource[int64](siprefix.Prefix(7))
	require.Error(t, err)
	require.True(t, convert.ErrPrefix.Has(err))
}

func TestFixedTarget(t *testing.T) {
	c, err := convert.NewFixedTarget[int64](siprefix.Deca)
	require.NoError(t, err)
	require.Equal(t, siprefix.Deca, c.Target())

	got, err := c.Convert(siprefix.Deci, 1000)
	require.NoError(t, err)
	require.Equal(t, int64(10), got)

	got, err = c.Convert(siprefix.Kilo, 5)
	require.NoError(t, err)
	require.Equal(t, int64(500), got)

	_, err = c.Convert(siprefix.Prefix(7), 1)
	require.Error(t, err)
	require.True(t, convert.ErrPrefix.Has(err))

	_, err = convert.NewFixedTarget[float64](siprefix.Prefix(7))
	require.Error(t, err)
	require.True(t, convert.ErrPrefix.Has(err))
}

func TestFixedConcurrent(t *testing.T) {
	c, err := convert.NewFixed[int64](siprefix.Kilo, siprefix.Unit)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for n := 0; n < 1000; n++ {
				got, err := c.Convert(123)
				if err != nil || got != 123000 {
					t.Errorf("got %d, %+v", got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkFixedInt64(b *testing.B) {
	c, err := convert.NewFixed[int64](siprefix.Kilo, siprefix.Unit)
	if err != nil {
		b.Fatalf("%+v", err)
	}

	for n := 0; n < b.N; n++ {
		_, err := c.Convert(123)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkFixedFloat64(b *testing.B) {
	c, err := convert.NewFixed[float64](siprefix.Kilo, siprefix.Unit)
	if err != nil {
		b.Fatalf("%+v", err)
	}

	for n := 0; n < b.N; n++ {
		_, err := c.Convert(123.456)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkNewFixedInt64(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_, err := convert.NewFixed[int64](siprefix.Kilo, siprefix.Unit)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
