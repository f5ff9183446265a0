package report

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

func TestSAR(t *testing.T) {
	rec := Record{
		WalletID:    "0xDeadBeef",
		CaseID:      "AUTO-1234",
		Score:       0.93456,
		Volume:      1234567.891,
		FlowRatio:   1.056,
		GeneratedAt: fixedNow,
	}

	text, err := SAR(rec)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "CONFIDENTIAL SUSPICIOUS ACTIVITY REPORT (SAR)\n"))
	assert.Contains(t, text, "DATE: 2024-03-09 14:05:07\n")
	assert.Contains(t, text, "CASE ID: AUTO-1234\n")
	assert.Contains(t, text, "SUBJECT: 0xDeadBeef\n")
	assert.Contains(t, text, "Suspicion Score: 0.9346\n")
	assert.Contains(t, text, "Risk Level: CRITICAL\n")
	assert.Contains(t, text, "Detected Role: Mule\n")
	assert.Contains(t, text, "Flow Ratio: 1.06\n")
	assert.Contains(t, text, "Total Volume: $1,234,567.89 USD\n")
	assert.Contains(t, text, "consistent with mule patterning")
	assert.True(t, strings.HasSuffix(text, "Generated by Smurfing Hunter Enterprise"))
}

func TestSAR_HighRiskSmurf(t *testing.T) {
	text, err := SAR(Record{WalletID: "w", Score: 0.9, GeneratedAt: fixedNow})
	require.NoError(t, err)
	assert.Contains(t, text, "Risk Level: HIGH\n")
	assert.Contains(t, text, "Detected Role: Smurf\n")
	assert.Contains(t, text, "consistent with smurf patterning")
}

func TestWalletSAR(t *testing.T) {
	text, err := WalletSAR(Record{
		WalletID:    "0xabc",
		CaseID:      "SAR-55555",
		Score:       0.87,
		Volume:      1500000,
		GeneratedAt: fixedNow,
	})
	require.NoError(t, err)

	assert.Contains(t, text, "CASE ID: SAR-55555\n")
	assert.Contains(t, text, "Risk Level: CRITICAL\n")
	assert.Contains(t, text, "Detected Role: Layering Agent\n")
	assert.Contains(t, text, "Total Volume: $1,500,000.00 USD\n")
	assert.Contains(t, text, "Recommended Action: FREEZE ASSETS.")
}

func TestCard(t *testing.T) {
	html, err := Card(Record{
		WalletID:  "0x1234567890abcdef",
		CaseID:    "REF-10001",
		Score:     0.85,
		Volume:    2500000,
		FlowRatio: 0.9,
		BadActors: 7,
	})
	require.NoError(t, err)

	assert.Contains(t, html, "REF-10001")
	assert.Contains(t, html, "0x12345678...")
	assert.NotContains(t, html, "0x1234567890abcdef")
	assert.Contains(t, html, "AGGREGATION (Mule)")
	assert.Contains(t, html, "consistent with mule operations")
	assert.Contains(t, html, "7 confirmed illicit connections.")
	assert.Contains(t, html, "$2,500,000 USD")
	assert.Contains(t, html, "0.8500")
}

func TestCard_EscapesWalletID(t *testing.T) {
	html, err := Card(Record{WalletID: "<b>x</b>", Score: 0.5})
	require.NoError(t, err)
	assert.NotContains(t, html, "<b>x</b>")
	assert.Contains(t, html, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, html, "AGGREGATION (Smurf)")
}

func TestGenerator_Records(t *testing.T) {
	g := NewGenerator(rand.NewPCG(3, 4), func() time.Time { return fixedNow })

	for i := 0; i < 100; i++ {
		sar := g.SARRecord("0xabc")
		assert.Equal(t, "0xabc", sar.WalletID)
		assert.Regexp(t, regexp.MustCompile(`^AUTO-\d{4}$`), sar.CaseID)
		assert.GreaterOrEqual(t, sar.Score, 0.85)
		assert.Less(t, sar.Score, 0.99)
		assert.GreaterOrEqual(t, sar.Volume, 100_000.0)
		assert.Equal(t, fixedNow, sar.GeneratedAt)

		wallet := g.WalletSARRecord("0xabc")
		assert.Regexp(t, regexp.MustCompile(`^SAR-\d{5}$`), wallet.CaseID)
		assert.GreaterOrEqual(t, wallet.Volume, 500_000.0)
		assert.LessOrEqual(t, wallet.Volume, 2_000_000.0)

		card := g.CardRecord("0xabc")
		assert.Regexp(t, regexp.MustCompile(`^REF-\d{5}$`), card.CaseID)
		assert.GreaterOrEqual(t, card.BadActors, 3)
		assert.LessOrEqual(t, card.BadActors, 12)
		assert.GreaterOrEqual(t, card.Score, 0.75)
	}
}

func TestRecord_Roles(t *testing.T) {
	assert.Equal(t, "Smurf", Record{Score: 0.9}.SARRole())
	assert.Equal(t, "Mule", Record{Score: 0.91}.SARRole())
	assert.Equal(t, "Smurf", Record{Score: 0.8}.CardRole())
	assert.Equal(t, "Mule", Record{Score: 0.81}.CardRole())
}
