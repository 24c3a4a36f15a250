package models

import "time"

// AssetDefinition is a catalog entry carrying default attributes for its items.
type AssetDefinition struct {
	NamaAset       string   `gorm:"column:nama_aset;primaryKey" json:"nama_aset"`
	Brand          string   `gorm:"column:brand" json:"brand"`
	SubKlasifikasi string   `gorm:"column:sub_klasifikasi" json:"sub_klasifikasi"`
	JenisAset      string   `gorm:"column:jenis_aset" json:"jenis_aset"`
	Spesifikasi    string   `gorm:"column:spesifikasi" json:"spesifikasi"`
	OSDefault      string   `gorm:"column:os_default" json:"os_default"`
	Layanan        string   `gorm:"column:layanan" json:"layanan"`
	Quantity       *int     `gorm:"column:quantity" json:"quantity"`
	HargaPembelian *float64 `gorm:"column:harga_pembelian" json:"harga_pembelian"`
	PemilikAsset   string   `gorm:"column:pemilik_asset" json:"pemilik_asset"`
	Unit           string   `gorm:"column:unit" json:"unit"`
	Client         string   `gorm:"column:client" json:"client"`
	PenyediaAset   string   `gorm:"column:penyedia_aset" json:"penyedia_aset"`
	PemegangAset   string   `gorm:"column:pemegang_aset" json:"pemegang_aset"`
	PIC            string   `gorm:"column:pic" json:"pic"`
	LokasiAset     string   `gorm:"column:lokasi_aset" json:"lokasi_aset"`
	Area           string   `gorm:"column:area" json:"area"`
	Status         string   `gorm:"column:status" json:"status"`
	SubStatus      string   `gorm:"column:sub_status" json:"sub_status"`
	MasaBerlaku    string   `gorm:"column:masa_berlaku" json:"masa_berlaku"`
	Kerahasiaan    *float64 `gorm:"column:kerahasiaan" json:"kerahasiaan"`
	Integritas     *float64 `gorm:"column:integritas" json:"integritas"`
	Ketersediaan   *float64 `gorm:"column:ketersediaan" json:"ketersediaan"`
	Nilai          *float64 `gorm:"column:nilai" json:"nilai"`
}

// TableName returns the table name for AssetDefinition
func (AssetDefinition) TableName() string {
	return "dim_assets"
}

// InventoryRecord is a single serialized item.
type InventoryRecord struct {
	Kode           string   `gorm:"column:kode;primaryKey" json:"kode"`
	SerialNumber   string   `gorm:"column:serial_number;index" json:"serial_number"`
	TanggalPO      string   `gorm:"column:tanggal_po" json:"tanggal_po"`
	Layanan        string   `gorm:"column:layanan" json:"layanan"`
	Brand          string   `gorm:"column:brand" json:"brand"`
	NamaAset       string   `gorm:"column:nama_aset;index" json:"nama_aset"`
	SubKlasifikasi string   `gorm:"column:sub_klasifikasi" json:"sub_klasifikasi"`
	JenisAset      string   `gorm:"column:jenis_aset" json:"jenis_aset"`
	Spesifikasi    string   `gorm:"column:spesifikasi" json:"spesifikasi"`
	OS             string   `gorm:"column:os" json:"os"`
	Quantity       *int     `gorm:"column:quantity" json:"quantity"`
	HargaPembelian *float64 `gorm:"column:harga_pembelian" json:"harga_pembelian"`
	PemilikAsset   string   `gorm:"column:pemilik_asset" json:"pemilik_asset"`
	Unit           string   `gorm:"column:unit" json:"unit"`
	Client         string   `gorm:"column:client" json:"client"`
	PenyediaAset   string   `gorm:"column:penyedia_aset" json:"penyedia_aset"`
	PemegangAset   string   `gorm:"column:pemegang_aset" json:"pemegang_aset"`
	PIC            string   `gorm:"column:pic" json:"pic"`
	User           string   `gorm:"column:user" json:"user"`
	LokasiAset     string   `gorm:"column:lokasi_aset" json:"lokasi_aset"`
	Area           string   `gorm:"column:area" json:"area"`
	Status         string   `gorm:"column:status" json:"status"`
	SubStatus      string   `gorm:"column:sub_status" json:"sub_status"`
	MasaBerlaku    string   `gorm:"column:masa_berlaku" json:"masa_berlaku"`
	Kerahasiaan    *float64 `gorm:"column:kerahasiaan" json:"kerahasiaan"`
	Integritas     *float64 `gorm:"column:integritas" json:"integritas"`
	Ketersediaan   *float64 `gorm:"column:ketersediaan" json:"ketersediaan"`
	Nilai          *float64 `gorm:"column:nilai" json:"nilai"`
	Keterangan     string   `gorm:"column:keterangan" json:"keterangan"`
	LastSODate     string   `gorm:"column:last_so_date" json:"last_so_date"`
	// CreatedAt is stamped by the store on insert.
	CreatedAt time.Time `gorm:"column:timestamp;autoCreateTime:false" json:"timestamp"`
}

// TableName returns the table name for InventoryRecord
func (InventoryRecord) TableName() string {
	return "fact_inventory"
}

// DefinitionFrom derives a catalog entry from an item's attributes.
func DefinitionFrom(r *InventoryRecord) AssetDefinition {
	return AssetDefinition{
		NamaAset:       r.NamaAset,
		Brand:          r.Brand,
		SubKlasifikasi: r.SubKlasifikasi,
		JenisAset:      r.JenisAset,
		Spesifikasi:    r.Spesifikasi,
		OSDefault:      r.OS,
		Layanan:        r.Layanan,
		Quantity:       r.Quantity,
		HargaPembelian: r.HargaPembelian,
		PemilikAsset:   r.PemilikAsset,
		Unit:           r.Unit,
		Client:         r.Client,
		PenyediaAset:   r.PenyediaAset,
		PemegangAset:   r.PemegangAset,
		PIC:            r.PIC,
		LokasiAset:     r.LokasiAset,
		Area:           r.Area,
		Status:         r.Status,
		SubStatus:      r.SubStatus,
		MasaBerlaku:    r.MasaBerlaku,
		Kerahasiaan:    r.Kerahasiaan,
		Integritas:     r.Integritas,
		Ketersediaan:   r.Ketersediaan,
		Nilai:          r.Nilai,
	}
}

// AsRecord projects the definition onto an item so that the field table can
// read its defaults. Item-only fields stay empty.
func (a *AssetDefinition) AsRecord() *InventoryRecord {
	return &InventoryRecord{
		NamaAset:       a.NamaAset,
		Brand:          a.Brand,
		SubKlasifikasi: a.SubKlasifikasi,
		JenisAset:      a.JenisAset,
		Spesifikasi:    a.Spesifikasi,
		OS:             a.OSDefault,
		Layanan:        a.Layanan,
		Quantity:       a.Quantity,
		HargaPembelian: a.HargaPembelian,
		PemilikAsset:   a.PemilikAsset,
		Unit:           a.Unit,
		Client:         a.Client,
		PenyediaAset:   a.PenyediaAset,
		PemegangAset:   a.PemegangAset,
		PIC:            a.PIC,
		LokasiAset:     a.LokasiAset,
		Area:           a.Area,
		Status:         a.Status,
		SubStatus:      a.SubStatus,
		MasaBerlaku:    a.MasaBerlaku,
		Kerahasiaan:    a.Kerahasiaan,
		Integritas:     a.Integritas,
		Ketersediaan:   a.Ketersediaan,
		Nilai:          a.Nilai,
	}
}
