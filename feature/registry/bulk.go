package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "asset-registry/core/errors"
	"asset-registry/core/sequence"
	"asset-registry/feature/registry/models"
)

// BulkRequest describes a batch of new items of one asset.
type BulkRequest struct {
	AssetName  string `json:"nama_aset"`
	BaseCode   string `json:"kode"`
	BaseSerial string `json:"serial_number"`
	Quantity   int    `json:"quantity"`
	// Values are explicit field values keyed by storage column name.
	// Fields left out are filled from the default chain.
	Values map[string]string `json:"values"`
}

// BulkResult lists the codes created, in order.
type BulkResult struct {
	Codes    []string `json:"codes"`
	Warnings []string `json:"warnings"`
}

// BulkInsertError reports a batch that stopped part way. Records created
// before the failure stay committed.
type BulkInsertError struct {
	Created []string
	Code    string
	Err     error
}

// Error implements the error interface
func (e *BulkInsertError) Error() string {
	return fmt.Sprintf("created %d record(s) before '%s' failed: %v", len(e.Created), e.Code, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *BulkInsertError) Unwrap() error {
	return e.Err
}

// Suggestion is a prefilled bulk form for an asset.
type Suggestion struct {
	AssetName   string            `json:"nama_aset"`
	NextCode    string            `json:"next_kode"`
	NextSerial  string            `json:"next_serial"`
	HasTemplate bool              `json:"has_template"`
	Defaults    map[string]string `json:"defaults"`
}

// BulkCreator creates sequences of items from a base code.
type BulkCreator struct {
	store *Store
}

// NewBulkCreator creates a bulk workflow over a store.
func NewBulkCreator(store *Store) *BulkCreator {
	return &BulkCreator{store: store}
}

// Suggest returns the next code and serial after the asset's latest item and
// the defaults a new item would inherit.
func (b *BulkCreator) Suggest(ctx context.Context, assetName string) (*Suggestion, error) {
	template, master, err := b.sources(ctx, assetName)
	if err != nil {
		return nil, err
	}
	latest, err := b.store.GetLatestItem(ctx, assetName)
	if err != nil {
		return nil, err
	}

	s := &Suggestion{
		AssetName:   assetName,
		HasTemplate: template != nil,
		Defaults:    NewDefaultChain(template, master).Defaults(),
	}
	if latest != nil {
		if latest.Kode != "" {
			s.NextCode = sequence.Next(latest.Kode)
		}
		if latest.SerialNumber != "" {
			s.NextSerial = sequence.Next(latest.SerialNumber)
		}
	}
	return s, nil
}

// Create validates the request and inserts Quantity items. The first item
// takes the base code and serial verbatim, each following one increments the
// previous. Every insert commits on its own; on failure the batch stops and a
// BulkInsertError lists what was created.
func (b *BulkCreator) Create(ctx context.Context, req BulkRequest) (*BulkResult, error) {
	req.AssetName = strings.TrimSpace(req.AssetName)
	req.BaseCode = strings.TrimSpace(req.BaseCode)
	req.BaseSerial = strings.TrimSpace(req.BaseSerial)

	var violations apperrors.Violations
	if req.AssetName == "" {
		violations.Add("nama_aset is required")
	}
	if req.BaseCode == "" {
		violations.Add("kode base value is required")
	} else if exists, err := b.store.CodeExists(ctx, req.BaseCode); err != nil {
		return nil, err
	} else if exists {
		violations.Add("base kode '%s' already exists", req.BaseCode)
	}
	if req.Quantity < 1 {
		violations.Add("quantity must be at least 1")
	}

	template, master, err := b.sources(ctx, req.AssetName)
	if err != nil {
		return nil, err
	}
	base, err := b.baseRecord(req, NewDefaultChain(template, master), master)
	if err != nil {
		var ve *apperrors.ValidationError
		if !apperrors.As(err, &ve) {
			return nil, err
		}
		violations = append(violations, ve.Violations...)
	} else {
		checkScores(base, &violations)
	}
	if err := violations.Err(); err != nil {
		return nil, err
	}

	result := &BulkResult{Codes: []string{}, Warnings: []string{}}
	if exists, err := b.store.SerialExists(ctx, req.BaseSerial); err != nil {
		return nil, err
	} else if exists {
		result.Warnings = append(result.Warnings, fmt.Sprintf("serial number '%s' is already registered", req.BaseSerial))
	}

	code, serial := req.BaseCode, req.BaseSerial
	for i := 0; i < req.Quantity; i++ {
		if i > 0 {
			code = sequence.Next(code)
			if serial != "" {
				serial = sequence.Next(serial)
			}
		}

		rec := *base
		rec.Kode = code
		rec.SerialNumber = serial
		if err := b.store.InsertInventory(ctx, &rec); err != nil {
			return result, &BulkInsertError{Created: result.Codes, Code: code, Err: err}
		}
		result.Codes = append(result.Codes, code)
	}

	return result, nil
}

func (b *BulkCreator) sources(ctx context.Context, assetName string) (*models.InventoryRecord, *models.AssetDefinition, error) {
	template, err := b.store.GetInventoryTemplate(ctx, assetName)
	if err != nil {
		return nil, nil, err
	}
	master, err := b.store.GetAssetByName(ctx, assetName)
	if err != nil {
		return nil, nil, err
	}
	return template, master, nil
}

// baseRecord resolves every field once for the whole batch.
func (b *BulkCreator) baseRecord(req BulkRequest, chain DefaultChain, master *models.AssetDefinition) (*models.InventoryRecord, error) {
	rec := &models.InventoryRecord{NamaAset: req.AssetName}
	var masterRec *models.InventoryRecord
	if master != nil {
		masterRec = master.AsRecord()
	}
	classification := make(map[string]struct{}, len(classificationKeys))
	for _, k := range classificationKeys {
		classification[k] = struct{}{}
	}

	var violations apperrors.Violations
	for _, f := range models.Fields {
		if _, ok := itemOnlyKeys[f.Key]; ok && f.Key != "tanggal_po" {
			continue
		}

		value, explicit := req.Values[f.Key]
		switch {
		case explicit:
		case f.Key == "tanggal_po":
			value = b.store.now().UTC().Format(time.DateOnly)
		default:
			if _, ok := classification[f.Key]; ok && masterRec != nil {
				value = f.Get(masterRec)
			} else {
				value = chain.Resolve(f.Key)
			}
		}

		if err := f.Set(rec, value); err != nil {
			violations.Add("%v", err)
		}
	}
	if err := violations.Err(); err != nil {
		return nil, err
	}
	return rec, nil
}
