package model

import "time"

// TimestampLayout is the time layout embedded in snapshot filenames,
// e.g. compliance_report_20240301_090000.json.
const TimestampLayout = "20060102_150405"

// DateLayout is the human-readable date format used in report listings.
const DateLayout = "2006-01-02 15:04:05"

// ReportDescriptor describes one snapshot file in a report listing.
// It is derived from the filename alone; the file itself is not opened
// during listing.
type ReportDescriptor struct {
	// Filename is the snapshot file name, e.g.
	// compliance_report_20240301_090000.json.
	Filename string `json:"filename"`

	// Timestamp is the raw timestamp segment of the filename
	// (YYYYMMDD_HHMMSS).
	Timestamp string `json:"timestamp"`

	// Date is the parsed timestamp rendered for human display.
	Date string `json:"date"`
}

// NewReportDescriptor builds a descriptor from a filename and its parsed
// timestamp segment.
func NewReportDescriptor(filename, timestamp string, parsed time.Time) ReportDescriptor {
	return ReportDescriptor{
		Filename:  filename,
		Timestamp: timestamp,
		Date:      parsed.Format(DateLayout),
	}
}
