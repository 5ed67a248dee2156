package domain

import (
	"fmt"
	"time"
)

// ReportStatus is the review state of a report.
type ReportStatus string

const (
	ReportPublished ReportStatus = "Published"
	ReportDraft     ReportStatus = "Draft"
	ReportReview    ReportStatus = "Review"
)

// DefaultCategory is applied to reports and events created without one.
const DefaultCategory = "Umum"

// ReportAuthor is a placeholder; the system has no identity layer.
const ReportAuthor = "Admin"

// reportDateLayout renders "31 Jan 2026".
const reportDateLayout = "02 Jan 2006"

// Report is a back-office document, optionally carrying a base64 attachment.
type Report struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Category string       `json:"category"`
	Date     string       `json:"date"`
	Author   string       `json:"author"`
	Status   ReportStatus `json:"status"`
	Size     string       `json:"size"`
	FileName string       `json:"fileName,omitempty"`
	FileData string       `json:"fileData,omitempty"` // base64
}

// NewReportID derives a report identifier from the creation time.
func NewReportID(now time.Time) string {
	return fmt.Sprintf("RPT-%d", now.UnixMilli())
}

// FormatReportDate renders the stored, display-ready creation date.
func FormatReportDate(now time.Time) string {
	return now.Format(reportDateLayout)
}

// ValidReportStatus reports whether s is one of the known review states.
func ValidReportStatus(s ReportStatus) bool {
	switch s {
	case ReportPublished, ReportDraft, ReportReview:
		return true
	}
	return false
}
