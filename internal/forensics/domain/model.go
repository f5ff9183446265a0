package domain

// DefaultEntity replaces a missing or blank entity identifier.
const DefaultEntity = "0xTarget"

// Ego network node groups
const (
	GroupCenter = "center"
	GroupMid    = "mid"
	GroupLeaf   = "leaf"
)

// Flow network node types
const (
	FlowRisky   = "risky"
	FlowSafe    = "safe"
	FlowSuspect = "suspect"
	FlowMule    = "mule"
)

// EgoNode is one wallet in an ego network.
type EgoNode struct {
	ID    string `json:"id"`
	Group string `json:"group"`
	Val   int    `json:"val"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// EgoLink references nodes by their position in EgoGraph.Nodes.
type EgoLink struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Amount float64 `json:"amount"`
}

type EgoGraph struct {
	Nodes []EgoNode `json:"nodes"`
	Links []EgoLink `json:"links"`
}

// FlowNode is one participant of a source -> target -> mule fund flow.
type FlowNode struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Val   int    `json:"val"`
	Color string `json:"color,omitempty"`
}

// FlowLink references nodes by their position in FlowGraph.Nodes.
type FlowLink struct {
	Source  int  `json:"source"`
	Target  int  `json:"target"`
	Value   int  `json:"value"`
	Flagged bool `json:"flagged"`
}

type FlowGraph struct {
	Nodes []FlowNode `json:"nodes"`
	Links []FlowLink `json:"links"`
	// Target is the index of the entity the flow was generated for.
	Target int `json:"-"`
}

// Inflow sums the values of all links ending at the target node.
func (g FlowGraph) Inflow() int {
	total := 0
	for _, l := range g.Links {
		if l.Target == g.Target {
			total += l.Value
		}
	}
	return total
}

// Outflow sums the values of all links leaving the target node.
func (g FlowGraph) Outflow() int {
	total := 0
	for _, l := range g.Links {
		if l.Source == g.Target {
			total += l.Value
		}
	}
	return total
}

// SankeyNode and SankeyLink form the risk colored wallet Sankey view.
type SankeyNode struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type SankeyLink struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Value  int    `json:"value"`
	Color  string `json:"color"`
}

type SankeyGraph struct {
	Nodes []SankeyNode `json:"nodes"`
	Links []SankeyLink `json:"links"`
}

// Overview holds the dashboard summary counters.
type Overview struct {
	TotalTransactions int     `json:"totalTransactions"`
	AnomaliesDetected int     `json:"anomaliesDetected"`
	RiskScore         float64 `json:"riskScore"`
	NetworkHealth     float64 `json:"networkHealth"`
}

type AnomalyMetrics struct {
	Role      string   `json:"role"`
	Toxicity  float64  `json:"toxicity"`
	Pattern   string   `json:"pattern"`
	FlowRatio float64  `json:"flow_ratio"`
	BadActors int      `json:"bad_actors"`
	VolumeUSD int      `json:"volume_usd"`
	Tags      []string `json:"tags"`
}

// Anomaly is one flagged wallet in the sidebar list.
type Anomaly struct {
	ID         int            `json:"id"`
	Address    string         `json:"address"`
	RiskLevel  string         `json:"riskLevel"`
	Confidence float64        `json:"confidence"`
	Amount     string         `json:"amount"`
	Metrics    AnomalyMetrics `json:"metrics"`
}

type NetworkStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Trend string `json:"trend"`
}

type ContagionPoint struct {
	Time       string `json:"time"`
	NewWallets int    `json:"new_wallets"`
}

// RiskPoint is one wallet on the volume/risk scatter plot.
type RiskPoint struct {
	ID      int     `json:"id"`
	Address string  `json:"address"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Group   string  `json:"group"`
}

type GlobalRiskPoint struct {
	WalletID   string  `json:"wallet_id"`
	DisplayVol float64 `json:"display_vol"`
	RiskScore  float64 `json:"risk_score"`
	Role       string  `json:"role"`
}

// Transaction is the minimal transfer record accepted by the predict endpoint.
type Transaction struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}
