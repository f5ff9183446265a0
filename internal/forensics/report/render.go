package report

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const timestampLayout = "2006-01-02 15:04:05"

var printer = message.NewPrinter(language.English)

// money renders v with thousands separators and the given precision.
func money(v float64, precision int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", precision), v)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

var funcs = map[string]any{
	"money":    money,
	"truncate": truncate,
	"lower":    strings.ToLower,
	"stamp": func(r Record) string {
		return r.GeneratedAt.Format(timestampLayout)
	},
	"score": func(v float64) string { return fmt.Sprintf("%.4f", v) },
	"ratio": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}

const rule = "=================================================="

var sarTmpl = texttemplate.Must(texttemplate.New("sar").Funcs(funcs).Parse(
	`CONFIDENTIAL SUSPICIOUS ACTIVITY REPORT (SAR)
` + rule + `
DATE: {{stamp .}}
CASE ID: {{.CaseID}}
SUBJECT: {{.WalletID}}

RISK ASSESSMENT
---------------
Suspicion Score: {{score .Score}}
Risk Level: {{if .Critical}}CRITICAL{{else}}HIGH{{end}}
Detected Role: {{.SARRole}}
Flow Ratio: {{ratio .FlowRatio}}

FINANCIAL ACTIVITY
------------------
Total Volume: ${{money .Volume 2}} USD
Tags: High Velocity, Structurally Embedded, Layering Detected

NARRATIVE
---------
The subject wallet has been flagged by the AI Forensics Engine due to anomalous behavior
consistent with {{lower .SARRole}} patterning. The high velocity of funds and
structural positioning suggests potential illicit activity.

Analysis indicates rapid fragmentation of incoming capital across multiple
disposable distinct addresses ("Peeling Chain").

Recommended Action: Immediate Freeze & Audit.
` + rule + `
Generated by Smurfing Hunter Enterprise`))

var walletSARTmpl = texttemplate.Must(texttemplate.New("wallet-sar").Funcs(funcs).Parse(
	`CONFIDENTIAL SUSPICIOUS ACTIVITY REPORT (SAR)
` + rule + `
DATE: {{stamp .}}
CASE ID: {{.CaseID}}
SUBJECT: {{.WalletID}}

RISK ASSESSMENT
---------------
Suspicion Score: {{score .Score}}
Risk Level: CRITICAL
Detected Role: Layering Agent

FINANCIAL ACTIVITY
------------------
Total Volume: ${{money .Volume 2}} USD
Tags: Peeling Chain, Structurally Embedded

NARRATIVE
---------
The subject wallet has been flagged by the Smurfing Hunter engine.
Patterns indicate automated layering activity designed to obfuscate
the origin of funds.

Recommended Action: FREEZE ASSETS.
` + rule + `
Generated by Smurfing Hunter Enterprise`))

var cardTmpl = htmltemplate.Must(htmltemplate.New("card").Funcs(funcs).Parse(`
<div style="font-family: 'Inter', sans-serif; color: #e2e8f0; background: #0f172a; border-radius: 8px; padding: 16px; border: 1px solid #1e293b;">
    <h4 style="color: #38bdf8; margin: 0 0 12px 0; font-size: 0.75rem; font-weight: 700; letter-spacing: 0.05em; text-transform: uppercase;">AI Forensic Report</h4>
    <div style="font-family: 'SF Mono', monospace; font-size: 0.75rem; color: #94a3b8; margin-bottom: 16px;">
        CASE ID: <span style="color: #f8fafc;">{{.CaseID}}</span><br>
        SUBJECT: <span style="color: #f8fafc;">{{truncate .WalletID 10}}...</span>
    </div>
    <div style="margin-bottom: 16px;">
        <div style="font-size: 0.75rem; color: #94a3b8; text-transform: uppercase; font-weight: 600;">Risk Assessment</div>
        <div style="font-size: 0.65rem; color: #94a3b8; margin-bottom: 4px;">CRITICAL SUSPICION SCORE:</div>
        <div style="font-size: 2rem; font-weight: 700; color: #ef4444; line-height: 1;">{{score .Score}}</div>
    </div>
    <div style="margin-bottom: 16px; border-left: 2px solid #334155; padding-left: 12px;">
        <div style="font-size: 0.75rem; color: #64748b; font-weight: 600; margin-bottom: 8px;">BEHAVIOR ANALYTICS</div>
        <div style="margin-bottom: 6px; font-size: 0.85rem;"><span style="color: #94a3b8;">Pattern:</span> <span style="color: #4ade80; font-weight: 600;">AGGREGATION ({{.CardRole}})</span></div>
        <div style="margin-bottom: 6px; font-size: 0.85rem;"><span style="color: #94a3b8;">Flow Ratio:</span> <span style="color: #4ade80;">{{ratio .FlowRatio}}</span></div>
        <div style="font-size: 0.85rem; line-height: 1.4;"><span style="color: #94a3b8;">Bad Actors:</span> <span style="color: #4ade80;">{{.BadActors}} confirmed illicit connections.</span></div>
    </div>
    <div style="background: rgba(15, 23, 42, 0.5); border: 1px solid #1e293b; border-left: 3px solid #38bdf8; padding: 12px; border-radius: 4px; margin-bottom: 16px;">
        <p style="margin: 0; font-size: 0.8rem; color: #cbd5e1; line-height: 1.5;">
            <strong style="color: #38bdf8;">GNN CONCLUSION:</strong> Subject exhibits structural properties consistent with {{lower .CardRole}} operations. Immediate audit recommended.
        </p>
    </div>
    <div style="display: flex; justify-content: space-between; align-items: baseline; margin-bottom: 16px; border-bottom: 1px solid #1e293b; padding-bottom: 12px;">
        <span style="font-size: 0.85rem; font-weight: 600; color: #e2e8f0;">Volume:</span>
        <span style="font-size: 1rem; font-weight: 700; color: #4ade80; font-family: 'SF Mono', monospace;">${{money .Volume 0}} USD</span>
    </div>
    <div style="display: flex; flex-direction: column; gap: 8px;">
        <div style="background: rgba(239, 68, 68, 0.1); border: 1px solid rgba(239, 68, 68, 0.2); color: #fca5a5; padding: 4px 8px; border-radius: 4px; font-size: 0.75rem;">&#9888; High Velocity</div>
        <div style="background: rgba(245, 158, 11, 0.1); border: 1px solid rgba(245, 158, 11, 0.2); color: #fdba74; padding: 4px 8px; border-radius: 4px; font-size: 0.75rem;">&#9888; Structurally Embedded</div>
    </div>
</div>
`))

// SAR renders the dashboard filed suspicious activity report.
func SAR(rec Record) (string, error) {
	var buf bytes.Buffer
	if err := sarTmpl.Execute(&buf, rec); err != nil {
		return "", fmt.Errorf("render sar: %w", err)
	}
	return buf.String(), nil
}

// WalletSAR renders the suspicious activity report of a wallet page.
func WalletSAR(rec Record) (string, error) {
	var buf bytes.Buffer
	if err := walletSARTmpl.Execute(&buf, rec); err != nil {
		return "", fmt.Errorf("render wallet sar: %w", err)
	}
	return buf.String(), nil
}

// Card renders the forensic report card markup. The wallet identifier is
// escaped.
func Card(rec Record) (string, error) {
	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, rec); err != nil {
		return "", fmt.Errorf("render card: %w", err)
	}
	return buf.String(), nil
}
