package sql

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
)

//go:embed init.sql
var initSQL string

//go:embed features.sql
var featuresSQL string

// FeaturesFunctions lists the SQL functions of the road feature store,
// used to verify a load.
var FeaturesFunctions = []string{
	"init_features",
	"insert_feature",
	"select_feature",
	"select_features_by_partition",
	"select_nearest_feature",
	"delete_feature",
}

// Init intializes db extensions
func Init(db *sql.DB) error {
	_, err := db.Exec(initSQL)
	if err != nil {
		return fmt.Errorf("error executing schema SQL: %w", err)
	}

	log.Println("Database extensions initialized successfully")
	return nil
}

// LoadFeaturesSql loads feature-related SQL functions
func LoadFeaturesSql(db *sql.DB, force bool) error {
	if !force {
		exist, err := checkFunctions(db, FeaturesFunctions)
		if err != nil {
			return fmt.Errorf("error checking existing features functions: %w", err)
		}
		if exist {
			return nil
		}
	}

	_, err := db.Exec(featuresSQL)
	if err != nil {
		return fmt.Errorf("error executing features SQL: %w", err)
	}

	exist, err := checkFunctions(db, FeaturesFunctions)
	if err != nil {
		return fmt.Errorf("error checking existing functions: %w", err)
	}
	if !exist {
		return fmt.Errorf("not all required SQL functions were created")
	}

	log.Println("SQL features functions loaded successfully")
	return nil
}

// LoadAllSql loads all SQL functions
func LoadAllSql(db *sql.DB, force bool) error {
	return LoadFeaturesSql(db, force)
}

// checkFunctions verifies that all required functions exist in the database
func checkFunctions(db *sql.DB, sqlFunctions []string) (bool, error) {
	var allExist bool
	for _, f := range sqlFunctions {
		err := db.QueryRow(
			`SELECT EXISTS(SELECT 1 FROM pg_proc WHERE proname = $1);`,
			f,
		).Scan(&allExist)
		if err != nil {
			return false, fmt.Errorf("error checking existence of function %s: %w", f, err)
		}
		if !allExist {
			log.Printf("Function %s does not exist", f)
			break
		}
	}
	return allExist, nil
}
