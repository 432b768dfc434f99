package report

// Row is one (metric, value) pair in a section table
type Row struct {
	Metric string
	Value  string
}

// Section holds the metric table for one column
type Section struct {
	Column string
	Rows   []Row
}

// Document is the structured report model handed to a rendering sink.
// Sections appear in the order their columns were first encountered in the
// fact list; rows follow the canonical metric order.
type Document struct {
	Title      string
	Filename   string
	DatasetID  string
	UploadDate string
	Sections   []Section
}
