// This file contains the class graph: the structure that resolves an actor's
// archetype to its class, the class to its flattened property cache, and each
// cached property to its attribute decoder.

package repparser

// spawnTrajectory tells what initial state a spawned actor carries.
type spawnTrajectory byte

// spawnTrajectories
const (
	trajNone spawnTrajectory = iota
	trajLocation
	trajLocationAndRotation
)

// attrEntry binds a cached property to its decoder and the object naming it.
type attrEntry struct {
	objectID int32
	decoder  attrDecoder
}

// classCache is the flattened property cache of one class: its own entries
// merged over everything inherited from its parents, child entries shadowing
// ancestors on duplicate stream id.
type classCache struct {
	// objectInd of the class name in the objects table
	objectInd int32

	// cacheID identifies the cache for parent references of later entries
	cacheID int32

	// attrs maps stream id to decoder
	attrs map[int32]attrEntry

	// streamLimit is the exclusive maximum used to read stream ids
	streamLimit uint32
}

// objectInfo is the per-object view the network decoder consults on spawns
// and updates.
type objectInfo struct {
	// objectInd of the object in the objects table
	objectInd int32

	name       string
	trajectory spawnTrajectory

	// cache of the object's class; nil when the class replicates nothing
	cache *classCache
}

// classGraph is built once per replay and consulted read-only afterwards.
type classGraph struct {
	infos []objectInfo
}

// buildClassGraph resolves the body tables against the static tables.
func buildClassGraph(body *replayBody) (*classGraph, error) {
	g := new(classGraph)

	// Class name to its object table index.
	classInds := make(map[string]int32, len(body.classIndices))
	for _, ci := range body.classIndices {
		classInds[ci.Class] = ci.Index
	}

	// Build the caches in document order; parents only ever reference
	// predecessors, so flattening incrementally keeps the graph acyclic.
	caches := make([]*classCache, 0, len(body.netCache))
	cacheByObj := make(map[int32]*classCache, len(body.netCache))
	for _, entry := range body.netCache {
		if entry.ObjectInd < 0 || int(entry.ObjectInd) >= len(body.objects) {
			return nil, &ObjectIDRangeError{ObjectID: entry.ObjectInd}
		}
		cache := &classCache{
			objectInd: entry.ObjectInd,
			cacheID:   entry.CacheID,
			attrs:     make(map[int32]attrEntry, len(entry.Properties)),
		}

		// A zero parent id means the class is a root. A nonzero one links a
		// predecessor; when it matches none (some replays carry stale ids),
		// fall back to the static parent table.
		var parent *classCache
		if entry.ParentID != 0 {
			if parent = findParent(caches, entry.ParentID); parent == nil {
				var err error
				if parent, err = walkParentChain(body.objects[entry.ObjectInd], classInds, cacheByObj); err != nil {
					return nil, err
				}
			}
		}
		if parent != nil {
			for id, e := range parent.attrs {
				cache.attrs[id] = e
			}
		}

		for _, prop := range entry.Properties {
			if prop.ObjectInd < 0 || int(prop.ObjectInd) >= len(body.objects) {
				return nil, &ObjectIDRangeError{ObjectID: prop.ObjectInd}
			}
			name := body.objects[prop.ObjectInd]
			dec, ok := attributes[name]
			if !ok {
				return nil, &UnimplementedAttributeError{Name: name}
			}
			cache.attrs[prop.StreamID] = attrEntry{objectID: prop.ObjectInd, decoder: dec}
		}

		for id := range cache.attrs {
			if uint32(id)+1 > cache.streamLimit {
				cache.streamLimit = uint32(id) + 1
			}
		}

		caches = append(caches, cache)
		cacheByObj[entry.ObjectInd] = cache
	}

	// Resolve every object to its class cache and spawn trajectory.
	g.infos = make([]objectInfo, len(body.objects))
	for i, object := range body.objects {
		name := normalizeObject(object)
		info := objectInfo{objectInd: int32(i), name: object}

		className, ok := objectClasses[name]
		if !ok {
			// Objects not listed as archetypes are classes themselves.
			className = name
		}

		info.trajectory = spawnStats[name]
		if info.trajectory == trajNone {
			info.trajectory = spawnStats[className]
		}

		if classInd, ok := classInds[className]; ok {
			info.cache = cacheByObj[classInd]
		}
		if info.cache == nil {
			var err error
			if info.cache, err = walkParentChain(className, classInds, cacheByObj); err != nil {
				return nil, err
			}
		}

		g.infos[i] = info
	}

	return g, nil
}

// findParent locates the predecessor cache a net cache entry links to.
func findParent(caches []*classCache, parentID int32) *classCache {
	if parentID == 0 {
		return nil
	}
	for i := len(caches) - 1; i >= 0; i-- {
		if caches[i].cacheID == parentID {
			return caches[i]
		}
	}
	return nil
}

// walkParentChain follows the static parent table upwards until it finds a
// class with a cache. The table is expected to be acyclic; a revisited class
// is rejected.
func walkParentChain(class string, classInds map[string]int32, cacheByObj map[int32]*classCache) (*classCache, error) {
	seen := map[string]bool{class: true}
	for parent, ok := parentClasses[class]; ok; parent, ok = parentClasses[parent] {
		if seen[parent] {
			return nil, &ClassCycleError{Class: class}
		}
		seen[parent] = true
		if ind, ok := classInds[parent]; ok {
			if cache := cacheByObj[ind]; cache != nil {
				return cache, nil
			}
		}
	}
	return nil, nil
}

// normalizeObject strips the per-map instance naming of level-placed actors
// so they match the static tables.
func normalizeObject(name string) string {
	for _, base := range []string{
		"TheWorld:PersistentLevel.BreakOutActor_Platform_TA",
		"TheWorld:PersistentLevel.CrowdActor_TA",
		"TheWorld:PersistentLevel.CrowdManager_TA",
		"TheWorld:PersistentLevel.InMapScoreboard_TA",
		"TheWorld:PersistentLevel.VehiclePickup_Boost_TA",
	} {
		if len(name) >= len(base) && name[:len(base)] == base {
			return base
		}
	}
	return name
}
