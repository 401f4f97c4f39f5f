package foodinspect

import (
	"net/url"
	"time"
)

// Query parameter names accepted by the inspection results endpoint.
const (
	ParamOutput                   = "Output"
	ParamBusinessName             = "Business_Name"
	ParamBusinessAddress          = "Business_Address"
	ParamLongitude                = "Longitude"
	ParamLatitude                 = "Latitude"
	ParamCity                     = "City"
	ParamZipCode                  = "Zip_Code"
	ParamInspectionType           = "Inspection_Type"
	ParamInspectionStart          = "Inspection_Start"
	ParamInspectionEnd            = "Inspection_End"
	ParamInspectionClosedBusiness = "Inspection_Closed_Business"
	ParamViolationPoints          = "Violation_Points"
	ParamViolationRedPoints       = "Violation_Red_Points"
	ParamViolationDescr           = "Violation_Descr"
	ParamFuzzySearch              = "Fuzzy_Search"
	ParamSort                     = "Sort"
)

// InspectionDateLayout is the date format the endpoint expects (M/D/YYYY).
const InspectionDateLayout = "1/2/2006"

var defaultParams = map[string]string{
	ParamOutput:                   "W",
	ParamBusinessName:             "",
	ParamBusinessAddress:          "",
	ParamLongitude:                "",
	ParamLatitude:                 ",",
	ParamCity:                     "Seattle",
	ParamZipCode:                  "",
	ParamInspectionType:           "All",
	ParamInspectionStart:          "",
	ParamInspectionEnd:            "",
	ParamInspectionClosedBusiness: "A",
	ParamViolationPoints:          "",
	ParamViolationRedPoints:       "",
	ParamViolationDescr:           "",
	ParamFuzzySearch:              "N",
	ParamSort:                     "B",
}

// Query holds the full parameter set sent to the results endpoint.
// Every key of the endpoint schema is always present.
type Query map[string]string

// DefaultQuery returns a fresh query matching all Seattle records of all
// inspection types.
func DefaultQuery() Query {
	q := make(Query, len(defaultParams))
	for k, v := range defaultParams {
		q[k] = v
	}
	return q
}

// With returns a copy of q with overrides applied.
// Keys outside the endpoint schema are ignored.
func (q Query) With(overrides map[string]string) Query {
	out := make(Query, len(q))
	for k, v := range q {
		out[k] = v
	}
	for k, v := range overrides {
		if _, ok := defaultParams[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Encode returns the query as a URL-encoded string sorted by key.
func (q Query) Encode() string {
	return q.Values().Encode()
}

// Values returns the query as url.Values.
func (q Query) Values() url.Values {
	v := make(url.Values, len(q))
	for k, val := range q {
		v.Set(k, val)
	}
	return v
}

// Validate returns an error if the inspection date range is malformed.
func (q Query) Validate() error {
	for _, key := range []string{ParamInspectionStart, ParamInspectionEnd} {
		val := q[key]
		if val == "" {
			continue
		}
		if _, err := time.Parse(InspectionDateLayout, val); err != nil {
			return Errorf(EINVALID, "%s must be formatted as M/D/YYYY, got %q", key, val)
		}
	}
	return nil
}
