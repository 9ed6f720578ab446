package schema

import (
	"maps"
	"slices"
)

// MetricDefinition describes how one raw column contributes to the composite score.
type MetricDefinition struct {
	Name   string  `json:"name"`
	Invert bool    `json:"invert"`
	Weight float64 `json:"weight"`
}

// defaultMetrics is the canonical scoring table. Order is preserved in reports.
var defaultMetrics = []MetricDefinition{
	{Name: "appts_per_gp", Weight: 1},
	{Name: "same_day_appointment_percentage", Weight: 3},
	{Name: "digital_access_percentage", Weight: 1},
	{Name: "attendance_rate", Weight: 2},
	{Name: "qof_total", Weight: 1},
	{Name: "qof_hypertension", Invert: true, Weight: 1},
	{Name: "qof_child_vaccination", Weight: 3},
	{Name: "EmergencyPresentationsCancer", Invert: true, Weight: 2},
	{Name: "AntibioticPrescribing", Invert: true, Weight: 1},
	{Name: "overallexp", Weight: 1},
	{Name: "lastgpapptneeds", Weight: 1},
	{Name: "lastgpapptwait", Weight: 1},
	{Name: "localgpservicesreception", Weight: 1},
	{Name: "gpcontactoverall", Weight: 1},
	{Name: "responsive_coded", Weight: 1},
	{Name: "overall_coded", Weight: 3},
	{Name: "wellled_coded", Weight: 1},
	{Name: "effective_coded", Weight: 1},
	{Name: "caring_coded", Weight: 1},
	{Name: "safe_coded", Weight: 1},
}

// DefaultMetrics returns a copy of the canonical scoring table.
func DefaultMetrics() []MetricDefinition {
	return slices.Clone(defaultMetrics)
}

// displayNames maps raw column ids to report labels.
var displayNames = map[string]string{
	"gp_code":                           "GP Code",
	"pcn_code":                          "PCN Code",
	"icb_code":                          "ICB Code",
	"icb_name":                          "ICB Name",
	"postcode":                          "Postcode",
	"numberofpatients":                  "Number of Patients",
	"age":                               "Age",
	"responsive":                        "Responsive (CQC)",
	"overall":                           "Overall (CQC)",
	"wellled":                           "Well Led (CQC)",
	"effective":                         "Effective (CQC)",
	"caring":                            "Caring (CQC)",
	"safe":                              "Safe (CQC)",
	"admin_non_clinical":                "Admin Non-Clinical Staff (FTE)",
	"direct_patient_care":               "Direct Patient Care Staff (FTE)",
	"qualified_gp":                      "Qualified GPs (FTE)",
	"training_gp":                       "Training GPs (FTE)",
	"nurses":                            "Nurses (FTE)",
	"PCNWorkforce_FTE":                  "PCN Workforce (FTE)",
	"AttendanceOutcome_Attended":        "Attended Appointments",
	"AttendanceOutcome_DNA":             "Missed Appointments",
	"AttendanceOutcome_Unknown":         "Unknown Attendance Appointments",
	"ApptModality_FacetoFace":           "Face to Face Appointments",
	"ApptModality_Telephone":            "Telephone Appointments",
	"BookingtoApptGap_1Day":             "Booking to Appointment Gap - 1 Day",
	"BookingtoApptGap_2to7Days":         "Booking to Appointment Gap - 2 to 7 Days",
	"BookingtoApptGap_8to14Days":        "Booking to Appointment Gap - 8 to 14 Days",
	"BookingtoApptGap_15to21Days":       "Booking to Appointment Gap - 15 to 21 Days",
	"BookingtoApptGap_22to28Days":       "Booking to Appointment Gap - 22 to 28 Days",
	"BookingtoApptGap_Morethan28Days":   "Booking to Appointment Gap - More than 28 Days",
	"BookingtoApptGap_UnknownDataIssue": "Booking to Appointment Gap - Unknown Data Issue",
	"overallexp":                        "Overall Experience (GP Survey)",
	"lastgpapptneeds":                   "Last GP Appointment Needs Met (GP Survey)",
	"lastgpapptwait":                    "Last GP Appointment Waiting Time (GP Survey)",
	"localgpservicesreception":          "Reception Helpfullness (GP Survey)",
	"gpcontactoverall":                  "Last Contact Experience (GP Survey)",
	"IMD2019":                           "IMD 2019",
	"Total_QoF":                         "QoF Total",
	"Hypertension":                      "QoF Hypertension",
	"EmergencyPresentationsCancer":      "QoF Emergency Presentations Cancer",
	"BreastScreeningCancer":             "QoF Breast Screening Cancer",
	"ChildVaccination":                  "QoF Child Vaccination",
	"AntibioticPrescribing":             "QoF Antibiotic Prescribing",
}

// DisplayName returns the report label for a raw column id, or the id itself
// when the column has no label.
func DisplayName(column string) string {
	if label, ok := displayNames[column]; ok {
		return label
	}
	return column
}

// DisplayNames returns a copy of the display-name table.
func DisplayNames() map[string]string {
	return maps.Clone(displayNames)
}
