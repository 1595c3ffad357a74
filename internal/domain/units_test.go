package domain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verifund-org/verifund-cli/internal/domain"
)

func TestToBaseUnits(t *testing.T) {
	t.Run("whole amounts", func(t *testing.T) {
		v, err := domain.ToBaseUnits("100", 2)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(10000), v)
	})

	t.Run("fractional amounts", func(t *testing.T) {
		v, err := domain.ToBaseUnits("1.5", 2)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(150), v)

		v, err = domain.ToBaseUnits("0.000001", 6)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(1), v)
	})

	t.Run("eighteen decimals stays exact", func(t *testing.T) {
		v, err := domain.ToBaseUnits("1.000000000000000001", 18)
		require.NoError(t, err)

		want, _ := new(big.Int).SetString("1000000000000000001", 10)
		assert.Equal(t, want, v)
	})

	t.Run("zero", func(t *testing.T) {
		v, err := domain.ToBaseUnits("0", 6)
		require.NoError(t, err)
		assert.Equal(t, 0, v.Sign())
	})

	t.Run("tolerates shorthand forms", func(t *testing.T) {
		v, err := domain.ToBaseUnits(".5", 2)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(50), v)

		v, err = domain.ToBaseUnits("1.", 2)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(100), v)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, amount := range []string{
			"", ".", "1.2.3", "abc", "1e5", "0x10",
			"-1", "+1",
		} {
			_, err := domain.ToBaseUnits(amount, 6)
			assert.ErrorIs(t, err, domain.ErrInvalidAmount, "amount %q", amount)
		}
	})

	t.Run("rejects excess precision", func(t *testing.T) {
		_, err := domain.ToBaseUnits("1.1234567", 6)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestFormatBaseUnits(t *testing.T) {
	t.Run("trims trailing fractional zeros", func(t *testing.T) {
		assert.Equal(t, "1.5", domain.FormatBaseUnits(big.NewInt(150), 2))
		assert.Equal(t, "1", domain.FormatBaseUnits(big.NewInt(100), 2))
		assert.Equal(t, "0.000001", domain.FormatBaseUnits(big.NewInt(1), 6))
	})

	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, "0", domain.FormatBaseUnits(big.NewInt(0), 18))
	})

	t.Run("zero decimals", func(t *testing.T) {
		assert.Equal(t, "42", domain.FormatBaseUnits(big.NewInt(42), 0))
	})

	t.Run("negative", func(t *testing.T) {
		assert.Equal(t, "-1.5", domain.FormatBaseUnits(big.NewInt(-150), 2))
	})

	t.Run("round trip on canonical strings", func(t *testing.T) {
		for _, amount := range []string{"1", "1.5", "0.000001", "123456.789", "0"} {
			v, err := domain.ToBaseUnits(amount, 6)
			require.NoError(t, err)
			assert.Equal(t, amount, domain.FormatBaseUnits(v, 6))
		}
	})
}
