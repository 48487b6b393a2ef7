package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/siherrmann/turnpath/helper"
	"github.com/siherrmann/turnpath/model"
	loadSql "github.com/siherrmann/turnpath/sql"
)

// FeaturesDBHandlerFunctions defines the interface for feature database operations.
type FeaturesDBHandlerFunctions interface {
	InsertFeature(feature *model.Feature) error
	SelectFeature(partition model.PartitionID, index uint32) (*model.Feature, error)
	SelectFeaturesByPartition(partition model.PartitionID) ([]*model.Feature, error)
	SelectNearestFeature(origin model.Point) (*model.Feature, error)
	DeleteFeature(rid uuid.UUID) error
}

// FeaturesDBHandler handles road feature database operations.
type FeaturesDBHandler struct {
	db *helper.Database
}

// NewFeaturesDBHandler creates a new features database handler.
// It initializes the database connection and loads feature-related SQL functions.
// If force is true, it will reload the SQL functions even if they already exist.
func NewFeaturesDBHandler(db *helper.Database, force bool) (*FeaturesDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	featuresDbHandler := &FeaturesDBHandler{
		db: db,
	}

	err := loadSql.LoadFeaturesSql(featuresDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load features sql", err)
	}

	err = featuresDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized FeaturesDBHandler")

	return featuresDbHandler, nil
}

// CreateTable creates the 'features' table in the database.
// If the table already exists, it does not create it again.
// It also creates all necessary extensions and indexes.
func (h *FeaturesDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_features();`)
	if err != nil {
		log.Panicf("error initializing features table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table features")

	return nil
}

// InsertFeature inserts a new road feature.
func (h *FeaturesDBHandler) InsertFeature(feature *model.Feature) error {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_feature($1, $2, $3, $4, $5, $6, $7, $8)`,
		feature.Partition,
		feature.Index,
		int(feature.Class),
		feature.Name,
		feature.IsLink,
		feature.OnRoundabout,
		originVector(feature.Origin),
		feature.Metadata,
	)

	return scanFeature(row, feature)
}

// SelectFeature selects a feature by its partition and feature index.
func (h *FeaturesDBHandler) SelectFeature(partition model.PartitionID, index uint32) (*model.Feature, error) {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM select_feature($1, $2)`,
		partition,
		index,
	)

	feature := &model.Feature{}
	err := scanFeature(row, feature)
	if err != nil {
		return nil, err
	}

	return feature, nil
}

// SelectFeaturesByPartition selects all features of a partition ordered
// by feature index.
func (h *FeaturesDBHandler) SelectFeaturesByPartition(partition model.PartitionID) ([]*model.Feature, error) {
	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_features_by_partition($1)`,
		partition,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	features := []*model.Feature{}
	for rows.Next() {
		feature := &model.Feature{}
		err := scanFeature(rows, feature)
		if err != nil {
			return nil, err
		}
		features = append(features, feature)
	}
	if err := rows.Err(); err != nil {
		return nil, helper.NewError("rows", err)
	}

	return features, nil
}

// SelectNearestFeature selects the feature whose origin is closest to
// the given point. Used to snap a user position onto the road network.
func (h *FeaturesDBHandler) SelectNearestFeature(origin model.Point) (*model.Feature, error) {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM select_nearest_feature($1)`,
		originVector(origin),
	)

	feature := &model.Feature{}
	err := scanFeature(row, feature)
	if err != nil {
		return nil, err
	}

	return feature, nil
}

// DeleteFeature deletes a feature by its rid.
func (h *FeaturesDBHandler) DeleteFeature(rid uuid.UUID) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_feature($1)`,
		rid,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}

	return nil
}

// LoadPartition loads all features of a partition into an in-memory
// loader. Implements FeatureSource so the handler can back a
// CachedProvider directly.
func (h *FeaturesDBHandler) LoadPartition(partition model.PartitionID) (FeatureLoader, error) {
	features, err := h.db.Instance.Query(
		`SELECT * FROM select_features_by_partition($1)`,
		partition,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer features.Close()

	loader := NewMapSource().Partition(partition)
	for features.Next() {
		feature := &model.Feature{}
		err := scanFeature(features, feature)
		if err != nil {
			return nil, err
		}
		loader.Add(feature.Index, feature.Attributes())
	}
	if err := features.Err(); err != nil {
		return nil, helper.NewError("rows", err)
	}

	return loader, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFeature(row rowScanner, feature *model.Feature) error {
	var origin pgvector.Vector
	err := row.Scan(
		&feature.ID,
		&feature.RID,
		&feature.Partition,
		&feature.Index,
		&feature.Class,
		&feature.Name,
		&feature.IsLink,
		&feature.OnRoundabout,
		&origin,
		&feature.Metadata,
		&feature.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return helper.NewError("scan", fmt.Errorf("feature not found"))
	} else if err != nil {
		return helper.NewError("scan", err)
	}

	if slice := origin.Slice(); len(slice) == 2 {
		feature.Origin = model.Point{Lat: float64(slice[0]), Lon: float64(slice[1])}
	}

	return nil
}

func originVector(origin model.Point) pgvector.Vector {
	return pgvector.NewVector([]float32{float32(origin.Lat), float32(origin.Lon)})
}
