package registry

import (
	"asset-registry/feature/registry/models"
)

// literalDefaults are the last resort of the default chain.
var literalDefaults = map[string]string{
	"layanan":         "Operation",
	"status":          "Existing",
	"sub_status":      "Active",
	"harga_pembelian": "0",
	"kerahasiaan":     "3",
	"integritas":      "3",
	"ketersediaan":    "3",
	"nilai":           "3",
}

// StatusOptions are the accepted item statuses. The first one is the default.
var StatusOptions = []string{"Existing", "Active", "Broken", "Disposed", "In Repair"}

// itemOnlyKeys identify a single item and are never inherited.
var itemOnlyKeys = map[string]struct{}{
	"kode":          {},
	"serial_number": {},
	"nama_aset":     {},
	"quantity":      {},
	"tanggal_po":    {},
	"last_so_date":  {},
}

// DefaultSource yields a default for a field key, or "" to defer.
type DefaultSource func(key string) string

// DefaultChain resolves a field default from its sources in order.
type DefaultChain []DefaultSource

// NewDefaultChain builds the template, master, literal chain.
// Either record may be nil.
func NewDefaultChain(template *models.InventoryRecord, master *models.AssetDefinition) DefaultChain {
	var chain DefaultChain
	if template != nil {
		chain = append(chain, recordSource(template))
	}
	if master != nil {
		chain = append(chain, recordSource(master.AsRecord()))
	}
	return append(chain, literalSource)
}

// Resolve returns the first non-empty default for key.
func (c DefaultChain) Resolve(key string) string {
	if _, ok := itemOnlyKeys[key]; ok {
		return ""
	}
	for _, src := range c {
		if v := src(key); v != "" {
			if key == "status" && !isStatusOption(v) {
				return StatusOptions[0]
			}
			return v
		}
	}
	return ""
}

// Defaults resolves every inheritable field.
func (c DefaultChain) Defaults() map[string]string {
	out := make(map[string]string, len(models.Fields))
	for _, f := range models.Fields {
		if _, ok := itemOnlyKeys[f.Key]; ok {
			continue
		}
		out[f.Key] = c.Resolve(f.Key)
	}
	return out
}

func recordSource(rec *models.InventoryRecord) DefaultSource {
	return func(key string) string {
		f, ok := models.FieldByKey(key)
		if !ok {
			return ""
		}
		return f.Get(rec)
	}
}

func literalSource(key string) string {
	return literalDefaults[key]
}

func isStatusOption(s string) bool {
	for _, o := range StatusOptions {
		if o == s {
			return true
		}
	}
	return false
}
