package models

// NotAvailable is the placeholder the portal export format uses for every
// field the scraper could not locate.
const NotAvailable = "N/A"

// Case is the flat record produced for every results-table row. Field names
// and nesting follow the portal's established export format, so json tags are
// kept in their original TitleCase_With_Underscores form.
type Case struct {
	Sr              int       `json:"Sr" bson:"sr"`
	InstitutionDate string    `json:"Institution_Date" bson:"institution_date"`
	CaseNo          string    `json:"Case_No" bson:"case_no"`
	CaseTitle       string    `json:"Case_Title" bson:"case_title"`
	Bench           []string  `json:"Bench" bson:"bench"`
	HearingDate     string    `json:"Hearing_Date" bson:"hearing_date"`
	CaseCategory    string    `json:"Case_Category" bson:"case_category"`
	Status          string    `json:"Status" bson:"status"`
	Orders          []Order   `json:"Orders" bson:"orders"`
	Comments        []Comment `json:"Comments" bson:"comments"`
	CMs             []CM      `json:"CMs" bson:"cms"`
	Details         Details   `json:"Details" bson:"details"`
}

type Order struct {
	Sr           int      `json:"Sr" bson:"sr"`
	HearingDate  string   `json:"Hearing_Date" bson:"hearing_date"`
	Bench        []string `json:"Bench" bson:"bench"`
	ListType     string   `json:"List_Type" bson:"list_type"`
	CaseStage    string   `json:"Case_Stage" bson:"case_stage"`
	ShortOrder   string   `json:"Short_Order" bson:"short_order"`
	DisposalDate string   `json:"Disposal_Date" bson:"disposal_date"`
	OrderFile    string   `json:"Order_File" bson:"order_file"`
}

type Comment struct {
	ComplianceDate string `json:"Compliance_Date" bson:"compliance_date"`
	CaseNo         string `json:"Case_No" bson:"case_no"`
	CaseTitle      string `json:"Case_Title" bson:"case_title"`
	DocType        string `json:"Doc_Type" bson:"doc_type"`
	Parties        string `json:"Parties" bson:"parties"`
	Description    string `json:"Description" bson:"description"`
	ViewFile       string `json:"View_File" bson:"view_file"`
}

type CM struct {
	Sr              int    `json:"Sr" bson:"sr"`
	CM              string `json:"CM" bson:"cm"`
	InstitutionDate string `json:"Institution_Date" bson:"institution_date"`
	DisposalDate    string `json:"Disposal_Date" bson:"disposal_date"`
	OrderPassed     string `json:"Order_Passed" bson:"order_passed"`
	Description     string `json:"Description" bson:"description"`
	Status          string `json:"Status" bson:"status"`
}

type Details struct {
	CaseNo          string       `json:"Case_No" bson:"case_no"`
	CaseStatus      string       `json:"Case_Status" bson:"case_status"`
	HearingDate     string       `json:"Hearing_Date" bson:"hearing_date"`
	CaseStage       string       `json:"Case_Stage" bson:"case_stage"`
	TentativeDate   string       `json:"Tentative_Date" bson:"tentative_date"`
	ShortOrder      string       `json:"Short_Order" bson:"short_order"`
	BeforeBench     []string     `json:"Before_Bench" bson:"before_bench"`
	CaseTitle       string       `json:"Case_Title" bson:"case_title"`
	Advocates       Advocates    `json:"Advocates" bson:"advocates"`
	CaseDescription string       `json:"Case_Description" bson:"case_description"`
	Disposal        DisposalInfo `json:"Disposal_Information" bson:"disposal_information"`
	FIR             FIRInfo      `json:"FIR_Information" bson:"fir_information"`
}

type Advocates struct {
	Petitioner string `json:"Petitioner" bson:"petitioner"`
	Respondent string `json:"Respondent" bson:"respondent"`
}

type DisposalInfo struct {
	DisposedStatus   string   `json:"Disposed_Status" bson:"disposed_status"`
	CaseDisposalDate string   `json:"Case_Disposal_Date" bson:"case_disposal_date"`
	DisposalBench    []string `json:"Disposal_Bench" bson:"disposal_bench"`
	ConsignedDate    string   `json:"Consigned_Date" bson:"consigned_date"`
}

type FIRInfo struct {
	FIRNo         string `json:"FIR_No" bson:"fir_no"`
	FIRDate       string `json:"FIR_Date" bson:"fir_date"`
	PoliceStation string `json:"Police_Station" bson:"police_station"`
	UnderSection  string `json:"Under_Section" bson:"under_section"`
	Incident      string `json:"Incident" bson:"incident"`
	Accused       string `json:"Accused" bson:"accused"`
}

// NewCase returns a record with every leaf pre-filled with the N/A
// placeholder and the default filler entries the export format expects in
// Orders, Comments and CMs.
func NewCase(sr int, institutionDate string) *Case {
	return &Case{
		Sr:              sr,
		InstitutionDate: institutionDate,
		CaseNo:          NotAvailable,
		CaseTitle:       NotAvailable,
		Bench:           []string{},
		HearingDate:     NotAvailable,
		CaseCategory:    NotAvailable,
		Status:          NotAvailable,
		Orders: []Order{{
			Sr:           1,
			HearingDate:  NotAvailable,
			Bench:        []string{},
			ListType:     NotAvailable,
			CaseStage:    NotAvailable,
			ShortOrder:   NotAvailable,
			DisposalDate: NotAvailable,
			OrderFile:    NotAvailable,
		}},
		Comments: []Comment{{
			ComplianceDate: NotAvailable,
			CaseNo:         NotAvailable,
			CaseTitle:      NotAvailable,
			DocType:        NotAvailable,
			Parties:        NotAvailable,
			Description:    "No comments available",
			ViewFile:       NotAvailable,
		}},
		CMs: []CM{{
			Sr:              1,
			CM:              NotAvailable,
			InstitutionDate: NotAvailable,
			DisposalDate:    NotAvailable,
			OrderPassed:     NotAvailable,
			Description:     "No CMs available",
			Status:          NotAvailable,
		}},
		Details: Details{
			CaseNo:        NotAvailable,
			CaseStatus:    NotAvailable,
			HearingDate:   NotAvailable,
			CaseStage:     NotAvailable,
			TentativeDate: NotAvailable,
			ShortOrder:    NotAvailable,
			BeforeBench:   []string{},
			CaseTitle:     NotAvailable,
			Advocates: Advocates{
				Petitioner: NotAvailable,
				Respondent: NotAvailable,
			},
			CaseDescription: NotAvailable,
			Disposal: DisposalInfo{
				DisposedStatus:   NotAvailable,
				CaseDisposalDate: NotAvailable,
				DisposalBench:    []string{},
				ConsignedDate:    NotAvailable,
			},
			FIR: FIRInfo{
				FIRNo:         NotAvailable,
				FIRDate:       NotAvailable,
				PoliceStation: NotAvailable,
				UnderSection:  NotAvailable,
				Incident:      NotAvailable,
				Accused:       NotAvailable,
			},
		},
	}
}

// Key identifies a case across pagination reloads and overlapping dates.
func (c *Case) Key() string {
	return c.CaseNo + "|" + c.InstitutionDate
}
