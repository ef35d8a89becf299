// Package domain contains the core data types for the trip report service.
// This package has no dependencies beyond the standard library and is
// imported by every other internal package (form, draft, notify, service,
// handler).
package domain

// FieldID names one logical field of the trip report.
type FieldID string

// Field is one entry of the report schema. Header doubles as the label shown
// to the user when the field is required and left empty.
type Field struct {
	ID       FieldID `json:"id"`
	Header   string  `json:"header"`
	Required bool    `json:"required"`
}

// Report field identifiers, in schema order.
const (
	TripDate              FieldID = "trip_date"
	DepartureTime         FieldID = "departure_time"
	ReturnTime            FieldID = "return_time"
	Overtime              FieldID = "overtime"
	FirstPickupName       FieldID = "first_pickup_name"
	FirstPickupTime       FieldID = "first_pickup_time"
	FirstPickupLocation   FieldID = "first_pickup_location"
	OtherEmployeePickups  FieldID = "other_employee_pickups"
	FirstWorkName         FieldID = "first_work_name"
	FirstWorkTime         FieldID = "first_work_time"
	FirstWorkLocation     FieldID = "first_work_location"
	OtherPickupsDay       FieldID = "other_pickups_day"
	LastDepartureLocation FieldID = "last_departure_location"
	LastDepartureTime     FieldID = "last_departure_time"
	LastDropoffName       FieldID = "last_dropoff_name"
	LastDropoffTime       FieldID = "last_dropoff_time"
	LastDropoffLocation   FieldID = "last_dropoff_location"
	TotalKM               FieldID = "total_km"
	PassengerNames        FieldID = "passenger_names"
	PassengerSignature    FieldID = "passenger_signature"
	DriverSignature       FieldID = "driver_signature"
	Notes                 FieldID = "notes"
)

// schema is the single source of truth for field order, CSV headers and
// required flags. Ids and headers live in the same entry so they cannot drift.
var schema = []Field{
	{ID: TripDate, Header: "Ngày đi", Required: true},
	{ID: DepartureTime, Header: "Thời gian đi từ bãi xe", Required: true},
	{ID: ReturnTime, Header: "Thời gian về bãi xe", Required: true},
	{ID: Overtime, Header: "Tăng ca"},
	{ID: FirstPickupName, Header: "Điểm đón đầu tiên - Tên"},
	{ID: FirstPickupTime, Header: "Điểm đón đầu tiên - Giờ"},
	{ID: FirstPickupLocation, Header: "Điểm đón đầu tiên - Địa điểm"},
	{ID: OtherEmployeePickups, Header: "Điểm đón nhân viên khác"},
	{ID: FirstWorkName, Header: "Điểm làm việc đầu tiên - Tên"},
	{ID: FirstWorkTime, Header: "Điểm làm việc đầu tiên - Giờ"},
	{ID: FirstWorkLocation, Header: "Điểm làm việc đầu tiên - Địa điểm"},
	{ID: OtherPickupsDay, Header: "Điểm đón khác trong ngày"},
	{ID: LastDepartureLocation, Header: "Rời nhà máy cuối cùng - Địa điểm"},
	{ID: LastDepartureTime, Header: "Rời nhà máy cuối cùng - Giờ"},
	{ID: LastDropoffName, Header: "Trả nhân viên cuối cùng - Tên"},
	{ID: LastDropoffTime, Header: "Trả nhân viên cuối cùng - Giờ"},
	{ID: LastDropoffLocation, Header: "Trả nhân viên cuối cùng - Địa điểm"},
	{ID: TotalKM, Header: "Số KM đi được", Required: true},
	{ID: PassengerNames, Header: "Tên người đi xe"},
	{ID: PassengerSignature, Header: "Chữ ký Xác nhận người đi xe"},
	{ID: DriverSignature, Header: "Chữ ký Xác nhận tài xế", Required: true},
	{ID: Notes, Header: "Ghi chú"},
}

// Fields returns a copy of the report schema in column order.
func Fields() []Field {
	out := make([]Field, len(schema))
	copy(out, schema)
	return out
}

// FieldIDs returns the ordered field identifiers.
func FieldIDs() []FieldID {
	out := make([]FieldID, len(schema))
	for i, f := range schema {
		out[i] = f.ID
	}
	return out
}

// Headers returns the localized column headers, positionally aligned with FieldIDs.
func Headers() []string {
	out := make([]string, len(schema))
	for i, f := range schema {
		out[i] = f.Header
	}
	return out
}

// RequiredFields returns the fields that must be filled before export, in schema order.
func RequiredFields() []Field {
	var out []Field
	for _, f := range schema {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// LookupField returns the schema entry for id.
func LookupField(id FieldID) (Field, bool) {
	for _, f := range schema {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}
