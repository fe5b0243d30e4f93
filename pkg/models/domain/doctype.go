package domain

import "fmt"

// DocType identifies one of the five supported document generators.
type DocType string

const (
	DocTypeProposal DocType = "proposal"
	DocTypeWorkPlan DocType = "workplan"
	DocTypeMEPlan   DocType = "meplan"
	DocTypeBudget   DocType = "budget"
	DocTypeReport   DocType = "report"
)

// DocTypes lists every supported type in a stable display order.
func DocTypes() []DocType {
	return []DocType{DocTypeProposal, DocTypeWorkPlan, DocTypeMEPlan, DocTypeBudget, DocTypeReport}
}

func ParseDocType(s string) (DocType, error) {
	switch DocType(s) {
	case DocTypeProposal, DocTypeWorkPlan, DocTypeMEPlan, DocTypeBudget, DocTypeReport:
		return DocType(s), nil
	}
	return "", fmt.Errorf("unknown document type %q", s)
}

func (t DocType) DisplayName() string {
	switch t {
	case DocTypeProposal:
		return "Grant Proposal"
	case DocTypeWorkPlan:
		return "Work Plan"
	case DocTypeMEPlan:
		return "M&E Plan"
	case DocTypeBudget:
		return "Budget"
	case DocTypeReport:
		return "Report"
	}
	return string(t)
}
