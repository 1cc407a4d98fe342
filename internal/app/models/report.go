package models

import "time"

// ReportKind tags the reported content variant
type ReportKind string

const (
	ReportKindQuestion ReportKind = "question"
	ReportKindAnswer   ReportKind = "answer"
)

// IsValid reports whether the kind is a known content variant
func (k ReportKind) IsValid() bool {
	return k == ReportKindQuestion || k == ReportKindAnswer
}

// Report represents a user's complaint against a question or answer. A report
// starts open and is terminal once resolved. The same user may report the same
// content more than once; the store enforces no uniqueness here.
type Report struct {
	ID         int64      `json:"id"`
	Kind       ReportKind `json:"type"`
	TargetID   int64      `json:"contentId"`
	ReporterID int64      `json:"reporterId"`
	Reason     string     `json:"reason"`
	Resolved   bool       `json:"resolved"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// OpenReport is the moderation-queue view of a report, joined with the
// reporter's username and the reported content's text.
type OpenReport struct {
	Report
	ReporterName string `json:"reporterName"`
	Content      string `json:"content"`
}
