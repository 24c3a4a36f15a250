package models

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "asset-registry/core/errors"
	"asset-registry/core/spreadsheet"
	"asset-registry/core/utils"
)

// Kind is the storage type of a field.
type Kind string

const (
	KindText  Kind = "text"
	KindInt   Kind = "int"
	KindFloat Kind = "float"
	KindDate  Kind = "date"
)

// Field maps one spreadsheet column to one InventoryRecord attribute.
type Field struct {
	// Key is the storage column name.
	Key string
	// Column is the human-readable spreadsheet header.
	Column string
	Kind   Kind
	// Compare marks fields that take part in change detection.
	Compare bool

	ref func(*InventoryRecord) any
}

// Fields is the ordered column layout shared by import, export and reconciliation.
var Fields = []Field{
	{Key: "kode", Column: "Kode", Kind: KindText, ref: func(r *InventoryRecord) any { return &r.Kode }},
	{Key: "serial_number", Column: "Serial Number", Kind: KindText, ref: func(r *InventoryRecord) any { return &r.SerialNumber }},
	{Key: "tanggal_po", Column: "Tanggal PO", Kind: KindDate, Compare: true, ref: func(r *InventoryRecord) any { return &r.TanggalPO }},
	{Key: "layanan", Column: "Layanan", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.Layanan }},
	{Key: "brand", Column: "Brand", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.Brand }},
	{Key: "nama_aset", Column: "Nama Aset", Kind: KindText, ref: func(r *InventoryRecord) any { return &r.NamaAset }},
	{Key: "sub_klasifikasi", Column: "Sub Klasifikasi", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.SubKlasifikasi }},
	{Key: "jenis_aset", Column: "Jenis Aset", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.JenisAset }},
	{Key: "spesifikasi", Column: "Spesifikasi", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.Spesifikasi }},
	{Key: "os", Column: "OS", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.OS }},
	{Key: "quantity", Column: "Quantity", Kind: KindInt, Compare: true, ref: func(r *InventoryRecord) any { return &r.Quantity }},
	{Key: "harga_pembelian", Column: "Harga Pembelian", Kind: KindFloat, Compare: true, ref: func(r *InventoryRecord) any { return &r.HargaPembelian }},
	{Key: "pemilik_asset", Column: "Pemilik Asset", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.PemilikAsset }},
	{Key: "unit", Column: "Unit", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.Unit }},
	{Key: "client", Column: "Client", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.Client }},
	{Key: "penyedia_aset", Column: "Penyedia Aset", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.PenyediaAset }},
	{Key: "pemegang_aset", Column: "Pemegang Aset", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.PemegangAset }},
	{Key: "pic", Column: "PIC", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.PIC }},
	{Key: "user", Column: "User", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.User }},
	{Key: "lokasi_aset", Column: "Lokasi Aset", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.LokasiAset }},
	{Key: "area", Column: "Area", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.Area }},
	{Key: "status", Column: "Status", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.Status }},
	{Key: "sub_status", Column: "Sub Status", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.SubStatus }},
	{Key: "masa_berlaku", Column: "Masa Berlaku", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.MasaBerlaku }},
	{Key: "kerahasiaan", Column: "Kerahasiaan", Kind: KindFloat, Compare: true, ref: func(r *InventoryRecord) any { return &r.Kerahasiaan }},
	{Key: "integritas", Column: "Integritas", Kind: KindFloat, Compare: true, ref: func(r *InventoryRecord) any { return &r.Integritas }},
	{Key: "ketersediaan", Column: "Ketersediaan", Kind: KindFloat, Compare: true, ref: func(r *InventoryRecord) any { return &r.Ketersediaan }},
	{Key: "nilai", Column: "Nilai", Kind: KindFloat, Compare: true, ref: func(r *InventoryRecord) any { return &r.Nilai }},
	{Key: "keterangan", Column: "Keterangan", Kind: KindText, Compare: true, ref: func(r *InventoryRecord) any { return &r.Keterangan }},
	{Key: "last_so_date", Column: "Last SO Date", Kind: KindDate, ref: func(r *InventoryRecord) any { return &r.LastSODate }},
}

// Signature columns identify a sheet as an asset export.
const (
	ColumnCode   = "Kode"
	ColumnName   = "Nama Aset"
	ColumnSerial = "Serial Number"
)

// ScoreFields are the four risk scores bounded to [1, 5].
var ScoreFields = []string{"kerahasiaan", "integritas", "ketersediaan", "nilai"}

// MissingSummaryColumns describe a stored item that no longer appears in a sheet.
var MissingSummaryColumns = []string{ColumnCode, ColumnName, ColumnSerial, "User", "Lokasi Aset"}

var (
	byKey    = make(map[string]Field, len(Fields))
	byColumn = make(map[string]Field, len(Fields))
)

func init() {
	for _, f := range Fields {
		byKey[f.Key] = f
		byColumn[f.Column] = f
	}
}

// FieldByKey looks up a field by storage column name.
func FieldByKey(key string) (Field, bool) {
	f, ok := byKey[key]
	return f, ok
}

// FieldByColumn looks up a field by spreadsheet header.
func FieldByColumn(column string) (Field, bool) {
	f, ok := byColumn[column]
	return f, ok
}

// Columns returns the spreadsheet headers in order.
func Columns() []string {
	cols := make([]string, len(Fields))
	for i, f := range Fields {
		cols[i] = f.Column
	}
	return cols
}

// ComparedFields returns the fields used for change detection.
func ComparedFields() []Field {
	var out []Field
	for _, f := range Fields {
		if f.Compare {
			out = append(out, f)
		}
	}
	return out
}

// Get renders the field of r as display text. Absent numbers render as "".
func (f Field) Get(r *InventoryRecord) string {
	switch p := f.ref(r).(type) {
	case *string:
		return *p
	case **int:
		return utils.ToString(*p)
	case **float64:
		return utils.ToString(*p)
	}
	return ""
}

// Value returns the typed value of the field, nil when absent.
func (f Field) Value(r *InventoryRecord) any {
	switch p := f.ref(r).(type) {
	case *string:
		return *p
	case **int:
		if *p == nil {
			return nil
		}
		return **p
	case **float64:
		if *p == nil {
			return nil
		}
		return **p
	}
	return nil
}

// Set parses raw text into the field of r.
func (f Field) Set(r *InventoryRecord, raw string) error {
	switch p := f.ref(r).(type) {
	case *string:
		if f.Kind == KindDate {
			*p = NormalizeDate(raw)
		} else {
			*p = utils.Clean(raw)
		}
	case **int:
		v, err := utils.ToIntPtr(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Column, err)
		}
		*p = v
	case **float64:
		v, err := utils.ToFloatPtr(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", f.Column, err)
		}
		*p = v
	}
	return nil
}

// IsEmpty reports whether the field of r holds no value.
func (f Field) IsEmpty(r *InventoryRecord) bool {
	return f.Get(r) == ""
}

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// NormalizeDate reduces spreadsheet dates to YYYY-MM-DD. Serial numbers are
// converted and timestamps are cut. "NaT" is an empty date. Anything else is
// kept as cleaned text.
func NormalizeDate(raw string) string {
	s := utils.Clean(raw)
	if s == "" || strings.EqualFold(s, "nat") {
		return ""
	}
	if d, ok := spreadsheet.SerialToDate(s); ok {
		return d
	}
	if m := datePrefix.FindString(s); m != "" {
		return m
	}
	return s
}

// ParseRecord builds an item from a column lookup such as spreadsheet.Row.Get.
// Every unparseable value is reported, not only the first.
func ParseRecord(get func(column string) string) (*InventoryRecord, error) {
	rec := &InventoryRecord{}
	var violations apperrors.Violations
	for _, f := range Fields {
		if err := f.Set(rec, get(f.Column)); err != nil {
			violations.Add("%v", err)
		}
	}
	if err := violations.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Row renders an item as typed cell values in column order.
func (r *InventoryRecord) Row() []any {
	out := make([]any, len(Fields))
	for i, f := range Fields {
		out[i] = f.Value(r)
	}
	return out
}

// Strings renders an item as display text keyed by spreadsheet header.
func (r *InventoryRecord) Strings() map[string]string {
	out := make(map[string]string, len(Fields))
	for _, f := range Fields {
		out[f.Column] = f.Get(r)
	}
	return out
}
