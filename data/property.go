/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"github.com/fentec-project/randify/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Propertied is implemented by sample types that expose named
// properties. Property returns false if the value has no property
// with the given name.
type Propertied interface {
	Property(name string) (any, bool)
}

// Indexer is implemented by sample types that can be indexed
// by an arbitrary key.
type Indexer interface {
	At(key any) (any, error)
}

// Property returns the value of the property name of v.
//
// Vectors (and []float64) provide "len", "sum", "mean", "norm", "min",
// "max" and "copy". Matrices (and [][]float64) provide "rows", "cols",
// "sum", "mean", "norm", "transpose", "gram" and "flatten". Other types
// need to implement Propertied. An error wrapping ErrProperty is returned
// if v has no such property.
func Property(v any, name string) (any, error) {
	switch x := v.(type) {
	case Propertied:
		if p, ok := x.Property(name); ok {
			return p, nil
		}
	case Vector:
		if p, ok := vectorProperty(x, name); ok {
			return p, nil
		}
	case []float64:
		if p, ok := vectorProperty(Vector(x), name); ok {
			return p, nil
		}
	case Matrix:
		if p, ok := matrixProperty(x, name); ok {
			return p, nil
		}
	case [][]float64:
		m, err := toMatrix(x)
		if err != nil {
			return nil, err
		}
		if p, ok := matrixProperty(m, name); ok {
			return p, nil
		}
	}

	return nil, errors.Wrapf(internal.ErrProperty, "%T has no property %q", v, name)
}

func vectorProperty(v Vector, name string) (any, bool) {
	switch name {
	case "len":
		return len(v), true
	case "sum":
		return v.Sum(), true
	case "mean":
		return v.Mean(), true
	case "norm":
		return v.Norm(), true
	case "min":
		if len(v) == 0 {
			return nil, false
		}
		return floats.Min(v), true
	case "max":
		if len(v) == 0 {
			return nil, false
		}
		return floats.Max(v), true
	case "copy":
		return v.Copy(), true
	}

	return nil, false
}

func matrixProperty(m Matrix, name string) (any, bool) {
	switch name {
	case "rows":
		return m.Rows(), true
	case "cols":
		return m.Cols(), true
	case "sum":
		return m.Sum(), true
	case "mean":
		return m.Mean(), true
	case "norm":
		return m.FrobeniusNorm(), true
	case "transpose":
		return m.Transpose(), true
	case "gram":
		return m.Gram(), true
	case "flatten":
		return Vector(m.Flatten()), true
	}

	return nil, false
}

func toMatrix(rows [][]float64) (Matrix, error) {
	vecs := make([]Vector, len(rows))
	for i, r := range rows {
		vecs[i] = Vector(r)
	}
	m, err := NewMatrix(vecs)
	if err != nil {
		return nil, errors.Wrap(internal.ErrShapeMismatch, err.Error())
	}

	return m, nil
}

// Index returns the element of v identified by key.
//
// Vectors and []float64 are indexed by int, negative indices count from
// the end. Matrices and [][]float64 are indexed by int (a row) or by
// [2]int (a single element). Maps with string keys are indexed by string.
// Other types need to implement Indexer. An error wrapping
// ErrInvalidArgument is returned if the key does not fit v.
func Index(v any, key any) (any, error) {
	switch x := v.(type) {
	case Indexer:
		return x.At(key)
	case Vector:
		return indexVector(x, key)
	case []float64:
		return indexVector(Vector(x), key)
	case Matrix:
		return indexMatrix(x, key)
	case [][]float64:
		m, err := toMatrix(x)
		if err != nil {
			return nil, err
		}
		return indexMatrix(m, key)
	case map[string]float64:
		return indexMap(x, key)
	case map[string]any:
		return indexMap(x, key)
	case []any:
		i, err := position(len(x), key)
		if err != nil {
			return nil, err
		}
		return x[i], nil
	}

	return nil, errors.Wrapf(internal.ErrInvalidArgument, "%T cannot be indexed", v)
}

func indexVector(v Vector, key any) (any, error) {
	i, err := position(len(v), key)
	if err != nil {
		return nil, err
	}

	return v[i], nil
}

func indexMatrix(m Matrix, key any) (any, error) {
	if ij, ok := key.([2]int); ok {
		row, err := position(m.Rows(), ij[0])
		if err != nil {
			return nil, err
		}
		col, err := position(m.Cols(), ij[1])
		if err != nil {
			return nil, err
		}
		return m[row][col], nil
	}
	i, err := position(m.Rows(), key)
	if err != nil {
		return nil, err
	}

	return m[i].Copy(), nil
}

func indexMap[V any](m map[string]V, key any) (any, error) {
	k, ok := key.(string)
	if !ok {
		return nil, errors.Wrapf(internal.ErrInvalidArgument, "map key must be a string, got %T", key)
	}
	val, ok := m[k]
	if !ok {
		return nil, errors.Wrapf(internal.ErrInvalidArgument, "no key %q", k)
	}

	return val, nil
}

// position resolves an int key against a sequence of length n.
func position(n int, key any) (int, error) {
	i, ok := key.(int)
	if !ok {
		return 0, errors.Wrapf(internal.ErrInvalidArgument, "index must be an int, got %T", key)
	}
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, errors.Wrapf(internal.ErrInvalidArgument, "index %v out of range [0, %d)", key, n)
	}

	return i, nil
}
