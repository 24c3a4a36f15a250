package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "asset-registry/core/errors"
	"asset-registry/feature/registry/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	scoreMin = 1.0
	scoreMax = 5.0

	// assetSearchLimit caps SearchAssets results.
	assetSearchLimit = 10
)

// searchColumns are matched by GetAllInventory.
var searchColumns = []string{"kode", "nama_aset", "user", "client"}

// Store owns the persisted catalog and inventory.
// Every method is a single statement or a single transaction.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStore creates a store over an open connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// DB returns the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates both tables.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.AssetDefinition{}, &models.InventoryRecord{})
}

// GetAssetByName returns the definition or nil when it does not exist.
func (s *Store) GetAssetByName(ctx context.Context, name string) (*models.AssetDefinition, error) {
	var def models.AssetDefinition
	err := s.db.WithContext(ctx).Where("nama_aset = ?", name).Take(&def).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// GetAllAssets returns every definition ordered by name.
func (s *Store) GetAllAssets(ctx context.Context) ([]models.AssetDefinition, error) {
	var defs []models.AssetDefinition
	err := s.db.WithContext(ctx).Order("nama_aset ASC").Find(&defs).Error
	return defs, err
}

// SearchAssets returns up to ten definitions whose name contains partial.
func (s *Store) SearchAssets(ctx context.Context, partial string) ([]models.AssetDefinition, error) {
	var defs []models.AssetDefinition
	err := s.db.WithContext(ctx).
		Where("LOWER(nama_aset) LIKE ?", likePattern(partial)).
		Order("nama_aset ASC").
		Limit(assetSearchLimit).
		Find(&defs).Error
	return defs, err
}

// GetInventoryTemplate returns the most recently created record of an asset.
func (s *Store) GetInventoryTemplate(ctx context.Context, assetName string) (*models.InventoryRecord, error) {
	return s.firstInventory(ctx, assetName, "timestamp DESC, kode DESC")
}

// GetLatestItem returns the record of an asset with the lexicographically
// greatest code. Codes must share a zero-padded width for this to match
// numeric order.
func (s *Store) GetLatestItem(ctx context.Context, assetName string) (*models.InventoryRecord, error) {
	return s.firstInventory(ctx, assetName, "kode DESC")
}

func (s *Store) firstInventory(ctx context.Context, assetName, order string) (*models.InventoryRecord, error) {
	var recs []models.InventoryRecord
	err := s.db.WithContext(ctx).
		Where("nama_aset = ?", assetName).
		Order(order).
		Limit(1).
		Find(&recs).Error
	if err != nil || len(recs) == 0 {
		return nil, err
	}
	return &recs[0], nil
}

// InsertAsset adds a definition. An existing name fails with DuplicateKeyError.
func (s *Store) InsertAsset(ctx context.Context, def *models.AssetDefinition) error {
	def.NamaAset = strings.TrimSpace(def.NamaAset)
	if def.NamaAset == "" {
		return apperrors.NewValidationError("asset name is required")
	}
	if err := s.db.WithContext(ctx).Create(def).Error; err != nil {
		return translate(err, "Asset", def.NamaAset)
	}
	return nil
}

// InsertInventory adds a record. The creation timestamp is always stamped
// here and quantity is forced to one. An existing code fails with DuplicateKeyError.
func (s *Store) InsertInventory(ctx context.Context, rec *models.InventoryRecord) error {
	if err := s.prepare(rec); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return translate(err, "Inventory", rec.Kode)
	}
	return nil
}

// prepare validates a record and applies the values the store owns.
func (s *Store) prepare(rec *models.InventoryRecord) error {
	rec.Kode = strings.TrimSpace(rec.Kode)
	rec.NamaAset = strings.TrimSpace(rec.NamaAset)

	var violations apperrors.Violations
	if rec.Kode == "" {
		violations.Add("kode is required")
	}
	if rec.NamaAset == "" {
		violations.Add("nama_aset is required")
	}
	checkScores(rec, &violations)
	if err := violations.Err(); err != nil {
		return err
	}

	one := 1
	rec.Quantity = &one
	rec.CreatedAt = s.now().UTC()
	return nil
}

func checkScores(rec *models.InventoryRecord, violations *apperrors.Violations) {
	for _, key := range models.ScoreFields {
		f, _ := models.FieldByKey(key)
		v, ok := f.Value(rec).(float64)
		if ok && (v < scoreMin || v > scoreMax) {
			violations.Add("%s %v outside [%v, %v]", key, v, scoreMin, scoreMax)
		}
	}
}

// GetInventory returns one record or nil when the code does not exist.
func (s *Store) GetInventory(ctx context.Context, code string) (*models.InventoryRecord, error) {
	var rec models.InventoryRecord
	err := s.db.WithContext(ctx).Where("kode = ?", code).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CodeExists reports whether a record with the code exists.
func (s *Store) CodeExists(ctx context.Context, code string) (bool, error) {
	return s.exists(ctx, "kode", code)
}

// SerialExists reports whether a record with the serial number exists.
// The empty serial never exists.
func (s *Store) SerialExists(ctx context.Context, serial string) (bool, error) {
	if strings.TrimSpace(serial) == "" {
		return false, nil
	}
	return s.exists(ctx, "serial_number", serial)
}

func (s *Store) exists(ctx context.Context, column, value string) (bool, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.InventoryRecord{}).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

// GetAllInventory returns every record ordered by code, or only those whose
// code, asset name, user or client contains search (case-insensitive).
func (s *Store) GetAllInventory(ctx context.Context, search string) ([]models.InventoryRecord, error) {
	q := s.db.WithContext(ctx).Order("kode ASC")
	if search = strings.TrimSpace(search); search != "" {
		conds := make([]string, len(searchColumns))
		args := make([]any, 0, 2*len(searchColumns))
		for i, col := range searchColumns {
			conds[i] = "LOWER(?) LIKE ?"
			args = append(args, clause.Column{Name: col}, likePattern(search))
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	var recs []models.InventoryRecord
	err := q.Find(&recs).Error
	return recs, err
}

// DeleteInventory removes one record and reports whether it existed.
// The asset definition is never touched.
func (s *Store) DeleteInventory(ctx context.Context, code string) (bool, error) {
	res := s.db.WithContext(ctx).Where("kode = ?", code).Delete(&models.InventoryRecord{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpsertAssetAndInventory inserts the definition if it is new, otherwise fills
// the blank classification fields of rec from the stored definition, then
// inserts rec. Both writes commit or neither does.
func (s *Store) UpsertAssetAndInventory(ctx context.Context, def *models.AssetDefinition, rec *models.InventoryRecord) error {
	if def.NamaAset == "" {
		def.NamaAset = rec.NamaAset
	}
	rec.NamaAset = def.NamaAset
	if err := s.prepare(rec); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.AssetDefinition
		if err := tx.Where("nama_aset = ?", def.NamaAset).Limit(1).Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) == 0 {
			if err := tx.Create(def).Error; err != nil {
				return translate(err, "Asset", def.NamaAset)
			}
		} else {
			inheritClassification(rec, &existing[0])
		}

		if err := tx.Create(rec).Error; err != nil {
			return translate(err, "Inventory", rec.Kode)
		}
		return nil
	})
}

// classificationKeys are copied from a definition onto its items.
var classificationKeys = []string{"brand", "sub_klasifikasi", "jenis_aset", "spesifikasi", "os"}

func inheritClassification(rec *models.InventoryRecord, def *models.AssetDefinition) {
	master := def.AsRecord()
	for _, key := range classificationKeys {
		f, _ := models.FieldByKey(key)
		if f.IsEmpty(rec) {
			_ = f.Set(rec, f.Get(master))
		}
	}
}

func translate(err error, entity, key string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewDuplicateKeyError(entity, key, err)
	}
	return fmt.Errorf("failed to insert %s '%s': %w", strings.ToLower(entity), key, err)
}

func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
