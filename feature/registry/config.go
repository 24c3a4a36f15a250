package registry

// Config holds the spreadsheet locations used by import and export.
type Config struct {
	// Source is the workbook ingested by the import command.
	Source string `mapstructure:"source" default:"gabungan.xlsx"`
	// Template supplies the title rows reproduced above exported data.
	Template string `mapstructure:"template" default:"gabungan.xlsx"`
	// Sheet is the worksheet name of exported workbooks.
	Sheet string `mapstructure:"sheet" default:"Sheet1"`
	// HeaderRow is the number of title rows above the column header.
	HeaderRow int `mapstructure:"header_row" default:"5"`
	// ExportPrefix is the object storage prefix for uploaded exports.
	ExportPrefix string `mapstructure:"export_prefix" default:"exports/"`
}
