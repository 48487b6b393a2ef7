package database

import (
	"fmt"
	"sync"

	"github.com/siherrmann/turnpath/helper"
	"github.com/siherrmann/turnpath/model"
)

// FeatureLoader resolves road attributes for feature indexes inside a
// single partition.
type FeatureLoader interface {
	FeatureByIndex(index uint32) (*model.RoadAttributes, error)
}

// FeatureSource loads the feature data of a partition.
type FeatureSource interface {
	LoadPartition(partition model.PartitionID) (FeatureLoader, error)
}

// CachedProvider resolves road attributes through a feature source
// while holding on to the loader of the most recently used partition.
// Paths stay inside one partition almost always, so a single cached
// loader avoids reloading per resolved feature.
type CachedProvider struct {
	mu          sync.Mutex
	source      FeatureSource
	loader      FeatureLoader
	partition   model.PartitionID
	loaderSwaps int
}

// NewCachedProvider creates an attribute provider over the given source.
func NewCachedProvider(source FeatureSource) (*CachedProvider, error) {
	if source == nil {
		return nil, helper.NewError("feature source validation", fmt.Errorf("feature source is nil"))
	}
	return &CachedProvider{source: source}, nil
}

// Resolve returns the road attributes of a feature. The partition
// loader is swapped only when the requested partition changes.
func (p *CachedProvider) Resolve(id model.FeatureID) (*model.RoadAttributes, error) {
	if !id.IsValid() {
		return nil, helper.NewError("resolve", fmt.Errorf("invalid feature id"))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loader == nil || p.partition != id.Partition {
		loader, err := p.source.LoadPartition(id.Partition)
		if err != nil {
			return nil, helper.NewError("load partition", err)
		}
		p.loader = loader
		p.partition = id.Partition
		p.loaderSwaps++
	}

	attributes, err := p.loader.FeatureByIndex(id.Index)
	if err != nil {
		return nil, helper.NewError("resolve", err)
	}
	if !attributes.Class.Resolvable() {
		return nil, helper.NewError("resolve", fmt.Errorf("feature %d has unusable highway class %v", id.Index, attributes.Class))
	}

	return attributes, nil
}

// LoaderSwaps returns how often the cached partition loader was replaced.
func (p *CachedProvider) LoaderSwaps() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaderSwaps
}

// Reset drops the cached loader. The next Resolve loads its partition again.
func (p *CachedProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loader = nil
	p.partition = model.PartitionID{}
}
