package clickup

// FieldMap workspace field mapping configuration.
// Injected into the projectors as an immutable value so a different
// ClickUp workspace only needs a different FieldMap, not code changes.
type FieldMap struct {
	// Target lists
	CoursesListID  string
	ContactsListID string
	OutreachListID string

	// Dropdown option indices (positional, per list configuration)
	StateOptions         map[string]int
	SegmentOptions       map[string]int
	TargetSegmentOptions map[string]int

	// Golf Courses list custom fields
	CourseSegmentField           string
	CourseSegmentConfidenceField string
	CourseWaterHazardsField      string
	CourseAgentCostField         string
	CourseWebsiteField           string

	// Contacts list custom fields
	ContactEmailField         string
	ContactLinkedInField      string
	ContactTenureYearsField   string
	ContactPreviousClubsField string
	ContactCourseLinkField    string
	ContactEnrichedField      string
	ContactIsActiveField      string

	// Outreach Activities list custom fields
	OutreachCourseLinkField    string
	OutreachContactsLinkField  string
	OutreachTargetSegmentField string
	OutreachTopOpp1Field       string
	OutreachTopOpp1ScoreField  string
	OutreachTopOpp2Field       string
	OutreachTopOpp2ScoreField  string

	// Shared across all three lists
	StateField string
}

// DefaultFieldMap returns the production workspace mapping
func DefaultFieldMap() FieldMap {
	return FieldMap{
		CoursesListID:  "901413061864",
		ContactsListID: "901413061863",
		OutreachListID: "901413111587",

		StateOptions: map[string]int{
			"VA": 0, "MD": 1, "NC": 2, "PA": 3, "DC": 4, "WV": 5, "SC": 6,
			"TN": 7, "FL": 8, "GA": 9, "NY": 10, "NJ": 11, "OH": 12,
		},
		SegmentOptions: map[string]int{
			"high-end": 0, "budget": 1, "both": 2, "unknown": 3,
		},
		// Note: the outreach list drops the "unknown" option
		TargetSegmentOptions: map[string]int{
			"high-end": 0, "budget": 1, "both": 2,
		},

		CourseSegmentField:           "27bbd669-557d-428a-bdfd-24ae7b366127",
		CourseSegmentConfidenceField: "dc651567-580d-4e4c-9559-f8d865eb834a",
		CourseWaterHazardsField:      "56308d92-19fd-453d-8ea0-cda5d008f951",
		CourseAgentCostField:         "3e1b1cf8-057a-47c6-baa1-9f41bc46e199",
		CourseWebsiteField:           "2e52887f-d13c-44d1-bcc4-e6586e818ab3",

		ContactEmailField:         "592c3d27-07af-42ce-a6c0-beb158305f9d",
		ContactLinkedInField:      "f94bff39-d2de-4b6f-a010-cdafce7f2621",
		ContactTenureYearsField:   "2bf67cf7-d7b1-4bbd-a353-5d3de9d032d1",
		ContactPreviousClubsField: "f41625fc-e195-4044-a30b-86d5ea36a523",
		ContactCourseLinkField:    "b31efd5f-cae0-4920-aeb9-17542badffe3",
		ContactEnrichedField:      "5a5521a2-7502-481f-b7c4-f6d54b5e4f67",
		ContactIsActiveField:      "7dd9fe34-f8a4-44a2-818f-4ac28cb32364",

		OutreachCourseLinkField:    "62ec1220-a35b-4023-8bdd-8af74ad3bb1d",
		OutreachContactsLinkField:  "caa160a9-487d-406d-aacd-ea2dcb421ef0",
		OutreachTargetSegmentField: "c52d0d6d-5f3e-4c5e-aa1f-256c27a1a212",
		OutreachTopOpp1Field:       "31bb96ce-439c-47b2-8bd6-8cdffd523fc7",
		OutreachTopOpp1ScoreField:  "1c6f30b2-930d-45d0-a14f-e28cc5c738b1",
		OutreachTopOpp2Field:       "2bfb13d6-be8b-4f80-84d8-4e07a44153b4",
		OutreachTopOpp2ScoreField:  "9c1a8615-5953-4826-9492-a77f74e9aa37",

		StateField: "81bc2505-28a7-4290-a557-50e49e410732",
	}
}
