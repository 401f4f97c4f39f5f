// Package foodinspect extracts restaurant inspection records from the
// King County food safety inspection results page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, resty/, fs/).
package foodinspect
