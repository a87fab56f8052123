package signal

// Severity classifies a Finding; it never influences process exit code
// (§7) — it is purely a report-facing attribute.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// severityRank orders Severity from most to least severe for stable sort
// (§4.3: "sort by severity then name then file").
var severityRank = map[Severity]int{
	SeverityError:   0,
	SeverityWarning: 1,
	SeverityInfo:    2,
}

// Finding is one emitted signal, §4.3's `{name, severity, message, file?}`.
type Finding struct {
	Name     string
	Severity Severity
	Message  string
	File     *string
}
