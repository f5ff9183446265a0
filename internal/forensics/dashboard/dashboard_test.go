package dashboard

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard() *Dashboard {
	return New(rand.NewPCG(7, 11), Options{AnomalyCount: 25, GlobalRiskCount: 40})
}

func TestAnomalies(t *testing.T) {
	list := newTestDashboard().Anomalies()
	require.Len(t, list, 25)

	for i, a := range list {
		assert.Equal(t, i, a.ID)
		assert.True(t, strings.HasPrefix(a.Address, "0x"))
		assert.True(t, strings.HasPrefix(a.Amount, "₿"))
		assert.GreaterOrEqual(t, a.Confidence, 0.85)
		assert.Less(t, a.Confidence, 0.9999)

		switch a.RiskLevel {
		case "critical":
			assert.Equal(t, "Mule", a.Metrics.Role)
			assert.Equal(t, "AGGREGATION (Mule)", a.Metrics.Pattern)
		case "high":
			assert.Equal(t, "Smurf", a.Metrics.Role)
			assert.Equal(t, "DISPERSION (Smurf)", a.Metrics.Pattern)
		default:
			t.Fatalf("unexpected risk level %q", a.RiskLevel)
		}
		assert.GreaterOrEqual(t, a.Metrics.BadActors, 3)
		assert.LessOrEqual(t, a.Metrics.BadActors, 12)
		assert.NotEmpty(t, a.Metrics.Tags)
	}
}

func TestNew_DefaultsCounts(t *testing.T) {
	d := New(nil, Options{})
	assert.Len(t, d.Anomalies(), 100)
	assert.Len(t, d.GlobalRisk(), 200)
}

func TestRiskMap_GeneratedOnce(t *testing.T) {
	d := newTestDashboard()
	points := d.RiskMap()
	require.Len(t, points, NoisePoints+SuspectPoints)
	assert.Equal(t, points, d.RiskMap())

	for _, p := range points {
		assert.Greater(t, p.X, 0.0)
		switch p.Group {
		case "noise":
			assert.GreaterOrEqual(t, p.X, 1e3)
			assert.LessOrEqual(t, p.X, 1e7)
			assert.GreaterOrEqual(t, p.Y, 0.0)
			assert.LessOrEqual(t, p.Y, 1.0)
		case "suspect":
			assert.GreaterOrEqual(t, p.ID, suspectIDBase)
			assert.GreaterOrEqual(t, p.Y, 0.7)
			assert.LessOrEqual(t, p.Y, 0.99)
		default:
			t.Fatalf("unexpected group %q", p.Group)
		}
	}
}

func TestContagion(t *testing.T) {
	series := newTestDashboard().Contagion()
	require.Len(t, series, ContagionPoints)

	assert.Equal(t, "0:00", series[0].Time)
	assert.Equal(t, "0:15", series[1].Time)
	assert.Equal(t, "23:45", series[len(series)-1].Time)
	for _, p := range series {
		assert.GreaterOrEqual(t, p.NewWallets, 5)
	}
}

func TestGlobalRisk(t *testing.T) {
	points := newTestDashboard().GlobalRisk()
	require.Len(t, points, 40)
	for _, p := range points {
		assert.Contains(t, roles, p.Role)
		assert.GreaterOrEqual(t, p.DisplayVol, 1e2)
		assert.LessOrEqual(t, p.DisplayVol, 1e6)
		assert.GreaterOrEqual(t, p.RiskScore, 0.0)
		assert.Less(t, p.RiskScore, 1.0)
	}
}

func TestWalletSankey_Conservation(t *testing.T) {
	d := newTestDashboard()
	for i := 0; i < 200; i++ {
		g := d.WalletSankey("0xabcdef123456")
		assert.Equal(t, "TARGET: 0xabcd...", g.Nodes[0].Name)

		in, out, dests := 0, 0, 0
		for _, l := range g.Links {
			require.Less(t, l.Source, len(g.Nodes))
			require.Less(t, l.Target, len(g.Nodes))
			switch {
			case l.Target == 0:
				assert.GreaterOrEqual(t, l.Value, 200)
				assert.LessOrEqual(t, l.Value, 800)
				in += l.Value
			case l.Source == 0:
				assert.Positive(t, l.Value)
				out += l.Value
				dests++
			}
		}
		assert.Equal(t, in, out)
		assert.LessOrEqual(t, dests, 8)
		assert.Len(t, g.Nodes, len(g.Links)+1, "every non target node has exactly one link")
	}
}

func TestRiskColor(t *testing.T) {
	assert.Equal(t, ColorHigh, RiskColor(0.81))
	assert.Equal(t, ColorMedium, RiskColor(0.8))
	assert.Equal(t, ColorMedium, RiskColor(0.51))
	assert.Equal(t, ColorLow, RiskColor(0.5))
}

func TestBeta_InUnitInterval(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	sum := 0.0
	for i := 0; i < 5000; i++ {
		v := beta(r, 2, 5)
		require.GreaterOrEqual(t, v, 0.0)
		require.LessOrEqual(t, v, 1.0)
		sum += v
	}
	// Beta(2,5) has mean 2/7
	assert.InDelta(t, 2.0/7.0, sum/5000, 0.02)
}

func TestNormal_CentredOnMean(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	sum := 0.0
	for i := 0; i < 5000; i++ {
		sum += normal(r, 5, 0.5)
	}
	assert.InDelta(t, 5.0, sum/5000, 0.05)
}

func TestRiskMap_Clusters(t *testing.T) {
	points := RiskMap(rand.New(rand.NewPCG(5, 6)))
	require.Len(t, points, NoisePoints+SuspectPoints)

	for _, p := range points[:NoisePoints] {
		require.Equal(t, "noise", p.Group)
		require.GreaterOrEqual(t, p.Y, 0.0)
		require.LessOrEqual(t, p.Y, 1.0)
	}
	for _, p := range points[NoisePoints:] {
		require.Equal(t, "suspect", p.Group)
		require.GreaterOrEqual(t, p.Y, 0.7)
		require.LessOrEqual(t, p.Y, 0.99)
		require.Greater(t, p.X, 0.0)
	}
}
