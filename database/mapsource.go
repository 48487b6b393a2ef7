package database

import (
	"fmt"
	"sync"

	"github.com/siherrmann/turnpath/helper"
	"github.com/siherrmann/turnpath/model"
)

// MapSource is an in-memory feature source. It serves tests, examples
// and setups without a database behind them.
type MapSource struct {
	mu         sync.RWMutex
	partitions map[model.PartitionID]*PartitionMap
}

// NewMapSource creates an empty in-memory feature source.
func NewMapSource() *MapSource {
	return &MapSource{
		partitions: map[model.PartitionID]*PartitionMap{},
	}
}

// Partition returns the loader for the given partition, creating it
// when it does not exist yet.
func (s *MapSource) Partition(partition model.PartitionID) *PartitionMap {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.partitions[partition]; ok {
		return existing
	}

	created := &PartitionMap{
		partition: partition,
		features:  map[uint32]model.RoadAttributes{},
	}
	s.partitions[partition] = created
	return created
}

// LoadPartition returns the loader for a known partition.
func (s *MapSource) LoadPartition(partition model.PartitionID) (FeatureLoader, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loader, ok := s.partitions[partition]
	if !ok {
		return nil, helper.NewError("load partition", fmt.Errorf("unknown partition %v", partition))
	}
	return loader, nil
}

// PartitionMap holds the attributes of a single partition keyed by
// feature index.
type PartitionMap struct {
	mu        sync.RWMutex
	partition model.PartitionID
	features  map[uint32]model.RoadAttributes
}

// Add registers the attributes of a feature index.
func (m *PartitionMap) Add(index uint32, attributes model.RoadAttributes) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.features[index] = attributes
}

// FeatureByIndex returns the attributes of a feature index.
func (m *PartitionMap) FeatureByIndex(index uint32) (*model.RoadAttributes, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	attributes, ok := m.features[index]
	if !ok {
		return nil, helper.NewError("feature lookup", fmt.Errorf("feature %d not found in partition %v", index, m.partition))
	}
	return &attributes, nil
}
