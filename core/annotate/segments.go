package annotate

import (
	"log/slog"

	"github.com/siherrmann/turnpath/model"
)

// BuildSegments builds one loaded path segment per traversed edge.
// Segment i describes the step from path[i] to path[i+1]; its geometry
// is the two endpoint coordinates of that step, not the feature's full
// polyline. Edges with an invalid feature reference produce a cleared
// segment so segments stay positionally aligned with edges.
func BuildSegments(path []model.Junction, edges []model.Edge, resolver AttributeResolver, log *slog.Logger) []model.LoadedPathSegment {
	segments := make([]model.LoadedPathSegment, len(edges))

	for i, edge := range edges {
		if !edge.Feature.IsValid() {
			continue
		}

		attributes, err := resolver.Resolve(edge.Feature)
		if err != nil {
			if log != nil {
				log.Warn("Could not resolve road attributes",
					slog.String("partition", edge.Feature.Partition.String()),
					slog.Uint64("index", uint64(edge.Feature.Index)),
					slog.Any("error", err))
			}
			continue
		}

		segments[i] = model.LoadedPathSegment{
			Path:         []model.Point{path[i].Point, path[i+1].Point},
			Class:        attributes.Class,
			Name:         attributes.Name,
			NodeID:       edge.Feature.Index,
			IsLink:       attributes.IsLink,
			OnRoundabout: attributes.OnRoundabout,
			// Weight stays unpopulated, see LoadedPathSegment.
		}
	}

	return segments
}
