package urbanfix

// A Report is a citizen-submitted, geotagged civic issue.
//
// Locality and county are resolved from the coordinates when the Report
// is created; both default to "Unknown" when resolution fails.
type Report struct {
	Model
	Category    string       `db:"category" json:"category"`
	Description string       `db:"description" json:"description"`
	Severity    int          `db:"severity" json:"severity"`
	Lat         float64      `db:"lat" json:"lat"`
	Lng         float64      `db:"lng" json:"lng"`
	Locality    string       `db:"locality" json:"locality"`
	County      string       `db:"county" json:"county"`
	Status      ReportStatus `db:"status" json:"status"`
	Username    string       `db:"username" json:"username"`
}

// A RecyclePoint is a managed drop-off site rendered on the public map.
type RecyclePoint struct {
	Model
	Name        string  `db:"name" json:"name"`
	Address     string  `db:"address" json:"address"`
	Description string  `db:"description" json:"description"`
	Lat         float64 `db:"lat" json:"lat"`
	Lng         float64 `db:"lng" json:"lng"`
	OpeningHour string  `db:"opening_hour" json:"openingHour"`
	ClosingHour string  `db:"closing_hour" json:"closingHour"`
	Phone       string  `db:"phone" json:"phone"`
	ContactMail string  `db:"contact_mail" json:"contactMail"`
}
