package annotate

import "github.com/siherrmann/turnpath/model"

// AttributeResolver resolves a valid feature reference to its road
// attributes. Implementations fail on invalid references and on
// corrupted attribute records (undefined or error highway class).
type AttributeResolver interface {
	Resolve(id model.FeatureID) (*model.RoadAttributes, error)
}
