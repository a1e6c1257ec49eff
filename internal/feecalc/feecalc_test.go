package feecalc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeSplit_Vectors(t *testing.T) {
	cases := []struct {
		name                 string
		amount               string
		platform, side       string
		netBiz, netPartner   string
	}{
		{name: "even split", amount: "3000.00", platform: "150.00", side: "75.00", netBiz: "1425.00", netPartner: "1425.00"},
		{name: "small amount", amount: "100.00", platform: "5.00", side: "2.50", netBiz: "47.50", netPartner: "47.50"},
		{name: "odd cent goes to business half", amount: "100.01", platform: "5.00", side: "2.50", netBiz: "47.51", netPartner: "47.50"},
		{name: "sub-cent fee rounds", amount: "0.10", platform: "0.00", side: "0.00", netBiz: "0.05", netPartner: "0.05"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeSplit(d(tc.amount))
			require.NoError(t, err)
			assert.True(t, got.PlatformFee.Equal(d(tc.platform)), "platform fee: %s", got.PlatformFee)
			assert.True(t, got.BusinessFee.Equal(d(tc.side)), "business fee: %s", got.BusinessFee)
			assert.True(t, got.PartnerFee.Equal(d(tc.side)), "partner fee: %s", got.PartnerFee)
			assert.True(t, got.NetToBusiness.Equal(d(tc.netBiz)), "net to business: %s", got.NetToBusiness)
			assert.True(t, got.NetToPartner.Equal(d(tc.netPartner)), "net to partner: %s", got.NetToPartner)
		})
	}
}

// The three payout legs must always reassemble the settled amount exactly.
func TestComputeSplit_ExactSum(t *testing.T) {
	amounts := []string{"0.01", "0.03", "1.00", "99.99", "100.01", "1234.56", "3000.00", "999999.97"}
	for _, s := range amounts {
		got, err := ComputeSplit(d(s))
		require.NoError(t, err, s)

		sum := got.NetToBusiness.Add(got.NetToPartner).Add(got.PlatformFee)
		assert.True(t, sum.Equal(got.Amount), "amount %s: legs sum to %s", s, sum)
	}
}

func TestComputeSplit_RejectsNonPositive(t *testing.T) {
	for _, s := range []string{"0", "-1", "-0.01"} {
		_, err := ComputeSplit(d(s))
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %s", s)
	}
}

func TestComputeSplit_RoundsInputToCents(t *testing.T) {
	got, err := ComputeSplit(d("100.005"))
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(d("100.01")), "rounded amount: %s", got.Amount)
}
