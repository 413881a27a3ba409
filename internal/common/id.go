package common

import (
	"github.com/google/uuid"
)

// NewReportID generates a unique report ID with the "rpt_" prefix
// Format: rpt_<uuid>
func NewReportID() string {
	return "rpt_" + uuid.New().String()
}

// NewImportID generates a unique import batch ID with the "imp_" prefix
func NewImportID() string {
	return "imp_" + uuid.New().String()
}
