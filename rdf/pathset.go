package rdf

import (
	"fmt"
	"sort"

	"github.com/c360studio/semgather/errors"
)

// PathSet describes branching paths of predicates to follow from a focus:
// each key is a predicate and its value the paths to continue along from
// whatever that predicate leads to.
//
// A key mapped to an empty PathSet means "fetch this predicate's direct
// values, do not follow further"; an absent key means "not requested at
// all". The two are semantically distinct.
type PathSet map[string]PathSet

// NormalizePathSet converts flexible caller-supplied shapes into canonical
// form. Accepted shapes: nil, a bare predicate string, a PathSet, a
// map[string]any of nested shapes, or a slice of shapes ([]string or []any)
// whose normalizations are merged. Anything else is a configuration error.
func NormalizePathSet(shape any) (PathSet, error) {
	switch s := shape.(type) {
	case nil:
		return PathSet{}, nil
	case string:
		if s == "" {
			return PathSet{}, nil
		}
		return PathSet{s: PathSet{}}, nil
	case PathSet:
		return s.Clone(), nil
	case map[string]PathSet:
		return PathSet(s).Clone(), nil
	case map[string]any:
		out := make(PathSet, len(s))
		for predicate, nested := range s {
			normalized, err := NormalizePathSet(nested)
			if err != nil {
				return nil, err
			}
			out[predicate] = normalized
		}
		return out, nil
	case []string:
		out := PathSet{}
		for _, predicate := range s {
			branch, err := NormalizePathSet(predicate)
			if err != nil {
				return nil, err
			}
			out = mergeInto(out, branch)
		}
		return out, nil
	case []any:
		out := PathSet{}
		for _, parallel := range s {
			branch, err := NormalizePathSet(parallel)
			if err != nil {
				return nil, err
			}
			out = mergeInto(out, branch)
		}
		return out, nil
	default:
		return nil, errors.NewConfig(
			"invalid-pathset",
			fmt.Sprintf("cannot normalize path set from %T", shape),
			errors.ErrInvalidPathSet,
		)
	}
}

// MergePathSets unions two path sets into a new one; keys present in both
// have their nested path sets merged recursively.
func MergePathSets(a, b PathSet) PathSet {
	return mergeInto(a.Clone(), b)
}

func mergeInto(into, from PathSet) PathSet {
	for predicate, nested := range from {
		if existing, ok := into[predicate]; ok {
			into[predicate] = mergeInto(existing, nested)
		} else {
			into[predicate] = nested.Clone()
		}
	}
	return into
}

// Clone returns a deep copy, normalizing nil nested maps to empty ones.
func (ps PathSet) Clone() PathSet {
	out := make(PathSet, len(ps))
	for predicate, nested := range ps {
		out[predicate] = nested.Clone()
	}
	return out
}

// Predicates returns the path set's top-level predicates in sorted order.
func (ps PathSet) Predicates() []string {
	out := make([]string, 0, len(ps))
	for predicate := range ps {
		out = append(out, predicate)
	}
	sort.Strings(out)
	return out
}
