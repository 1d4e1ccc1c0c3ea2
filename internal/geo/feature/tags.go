package feature

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Property keys used by the classifiers.
const (
	KeyBuilding = "building"
	KeyLevels   = "building:levels"
	KeyHighway  = "highway"
	KeyNatural  = "natural"
	KeyName     = "name"
	KeyTags     = "tags"
)

// Highway classes that never become road geometry.
var excludedHighways = map[string]bool{
	"pedestrian": true,
	"footway":    true,
	"path":       true,
}

// ResolveTag looks up key directly in props, then in the nested "tags" map.
// It reports false when neither holds the key.
func ResolveTag(props Properties, key string) (any, bool) {
	if props == nil {
		return nil, false
	}
	if v, ok := props[key]; ok {
		return v, true
	}
	tags, ok := props[KeyTags].(map[string]any)
	if !ok {
		if p, isProps := props[KeyTags].(Properties); isProps {
			tags = p
		} else {
			return nil, false
		}
	}
	v, ok := tags[key]
	return v, ok
}

// IsBuilding reports whether props carry a truthy building tag.
func IsBuilding(props Properties) bool {
	v, ok := ResolveTag(props, KeyBuilding)
	return ok && truthy(v)
}

// HighwayClass returns the highway tag as a string.
func HighwayClass(props Properties) (string, bool) {
	v, ok := ResolveTag(props, KeyHighway)
	if !ok || !truthy(v) {
		return "", false
	}
	if s, isStr := v.(string); isStr {
		return s, true
	}
	return fmt.Sprint(v), true
}

// IsRenderableRoad reports whether props describe a highway outside the
// pedestrian, footway and path classes.
func IsRenderableRoad(props Properties) bool {
	class, ok := HighwayClass(props)
	return ok && !excludedHighways[class]
}

// IsWater reports whether natural == "water".
func IsWater(props Properties) bool {
	v, ok := ResolveTag(props, KeyNatural)
	return ok && v == "water"
}

// Levels returns the building:levels tag read as a leading integer.
// Absent, unparseable or non-positive values yield 1.
func Levels(props Properties) int {
	v, ok := ResolveTag(props, KeyLevels)
	if !ok {
		return 1
	}
	n, ok := leadingInt(v)
	if !ok || n <= 0 {
		return 1
	}
	return n
}

// Name returns the name tag, or "" when absent.
func Name(props Properties) string {
	v, ok := ResolveTag(props, KeyName)
	if !ok || v == nil {
		return ""
	}
	if s, isStr := v.(string); isStr {
		return s
	}
	return fmt.Sprint(v)
}

// leadingInt reads an optional sign and leading digits, ignoring any tail:
// "3" -> 3, " 4 floors" -> 4, "2.5" -> 2.
func leadingInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case string:
		s := strings.TrimSpace(n)
		end := 0
		if end < len(s) && (s[end] == '-' || s[end] == '+') {
			end++
		}
		digits := end
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		if end == digits {
			return 0, false
		}
		i, err := strconv.Atoi(s[:end])
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	default:
		return true
	}
}
