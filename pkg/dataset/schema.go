package dataset

// Column names of the fixed row schema. Source files may carry extra
// columns; everything outside this set is dropped at read time.
const (
	ColDateReported     = "Date_reported"
	ColCountry          = "Country"
	ColWHORegion        = "WHO_region"
	ColNewCases         = "New_cases"
	ColCumulativeCases  = "Cumulative_cases"
	ColNewDeaths        = "New_deaths"
	ColCumulativeDeaths = "Cumulative_deaths"
)

// Column value types.
const (
	TypeDate   = "date"
	TypeString = "string"
	TypeInt64  = "int64"
)

// ColumnInfo describes one schema column.
type ColumnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// SchemaColumns returns the row schema in canonical order. Every Table
// carries exactly these columns, regardless of source file column order.
func SchemaColumns() []ColumnInfo {
	return []ColumnInfo{
		{Name: ColDateReported, Type: TypeDate, Nullable: true},
		{Name: ColCountry, Type: TypeString, Nullable: true},
		{Name: ColWHORegion, Type: TypeString, Nullable: true},
		{Name: ColNewCases, Type: TypeInt64, Nullable: true},
		{Name: ColCumulativeCases, Type: TypeInt64, Nullable: true},
		{Name: ColNewDeaths, Type: TypeInt64, Nullable: true},
		{Name: ColCumulativeDeaths, Type: TypeInt64, Nullable: true},
	}
}

// NumericColumns returns the names of the four counter columns, in
// schema order.
func NumericColumns() []string {
	return []string{ColNewCases, ColCumulativeCases, ColNewDeaths, ColCumulativeDeaths}
}
