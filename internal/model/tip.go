package model

// TipType classifies a smart tip for display.
type TipType string

// Tip types.
const (
	TipWarning TipType = "warning"
	TipSuccess TipType = "success"
	TipInfo    TipType = "info"
)

// SmartTip is an ephemeral advisory message derived from the current
// ledger. Tips are recomputed on every read and never persisted.
type SmartTip struct {
	ID      string
	Title   string
	Message string
	Type    TipType
}
