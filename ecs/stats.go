package ecs

import "sort"

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	TotalEntityCount   int
	ComponentCount     int
	SingletonCount     int
	ComponentBreakdown []ComponentStats
	SingletonTypes     []string
}

// ComponentStats reports how many entities hold one component type.
type ComponentStats struct {
	TypeName    string
	EntityCount int
}

// CollectStats walks the storage and reports entity, component and singleton counts.
// Component types that were used but currently have no owners are included with a zero count.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		TotalEntityCount: s.entities.count,
		SingletonCount:   len(s.singletons),
	}

	for _, cs := range s.order {
		stats.ComponentCount += cs.Len()
		stats.ComponentBreakdown = append(stats.ComponentBreakdown, ComponentStats{
			TypeName:    cs.Type().String(),
			EntityCount: cs.Len(),
		})
	}
	sort.Slice(stats.ComponentBreakdown, func(i, j int) bool {
		return stats.ComponentBreakdown[i].TypeName < stats.ComponentBreakdown[j].TypeName
	})

	for typ := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, typ.String())
	}
	sort.Strings(stats.SingletonTypes)

	return stats
}
