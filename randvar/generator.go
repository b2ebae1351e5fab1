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

package randvar

import (
	"fmt"
	"reflect"

	"github.com/fentec-project/randify/data"
	"github.com/fentec-project/randify/sample"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Generator produces one random value per call to Draw.
type Generator[T any] interface {
	Draw() (T, error)
}

// BulkGenerator is a Generator that can also produce many values
// in a single call. Bulk results are validated before they are used,
// a result that fails validation is discarded in favour of sequential
// draws.
type BulkGenerator[T any] interface {
	Generator[T]
	DrawN(n int) ([]T, error)
}

// GeneratorFunc adapts a function to the Generator interface.
// Arguments of the distribution are bound by the closure.
type GeneratorFunc[T any] func() (T, error)

// Draw calls f.
func (f GeneratorFunc[T]) Draw() (T, error) {
	return f()
}

// Mode tells how a RandomVariable obtains its samples.
type Mode int

const (
	// GeneratorMode variables draw new values from a generator.
	GeneratorMode Mode = iota
	// PoolMode variables resample a fixed pool of observed values.
	PoolMode
)

func (m Mode) String() string {
	switch m {
	case GeneratorMode:
		return "generator"
	case PoolMode:
		return "pool"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// variant is the part of a RandomVariable that depends on how
// samples are produced.
type variant[T any] interface {
	// draw returns n new values. pool holds the values materialized
	// so far.
	draw(pool []T, n int) ([]T, error)
	mode() Mode
	describe() string
}

type generatorVariant[T any] struct {
	gen   Generator[T]
	check func(T) error
}

func (g *generatorVariant[T]) draw(_ []T, n int) ([]T, error) {
	if bulk, ok := g.gen.(BulkGenerator[T]); ok {
		xs, err := bulk.DrawN(n)
		if err == nil {
			err = g.validate(xs, n)
		}
		if err == nil {
			return xs, nil
		}
		log.WithFields(log.Fields{"module": "randvar"}).Debugf("Bulk draw of %d values rejected, drawing sequentially: %s", n, err)
	}

	xs := make([]T, n)
	for i := range xs {
		x, err := g.gen.Draw()
		if err != nil {
			return nil, errors.Wrap(err, "error drawing sample")
		}
		if err := g.check(x); err != nil {
			return nil, err
		}
		xs[i] = x
	}

	return xs, nil
}

func (g *generatorVariant[T]) validate(xs []T, n int) error {
	if len(xs) != n {
		return errors.Errorf("got %d values, requested %d", len(xs), n)
	}
	for _, x := range xs {
		if err := g.check(x); err != nil {
			return err
		}
	}

	return nil
}

func (g *generatorVariant[T]) mode() Mode {
	return GeneratorMode
}

func (g *generatorVariant[T]) describe() string {
	if s, ok := g.gen.(fmt.Stringer); ok {
		return s.String()
	}

	return "custom"
}

type poolVariant[T any] struct {
	idx *sample.Index
}

func (p *poolVariant[T]) draw(pool []T, n int) ([]T, error) {
	xs := make([]T, n)
	for i := range xs {
		xs[i] = pool[p.idx.Sample(len(pool))]
	}

	return xs, nil
}

func (p *poolVariant[T]) mode() Mode {
	return PoolMode
}

func (p *poolVariant[T]) describe() string {
	return "custom"
}

// homogeneity returns a check that accepts only values structurally
// equal to example: the same dynamic type when T is an interface type,
// and the same shape for values with a shape.
func homogeneity[T any](example T) func(T) error {
	dynamic := reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface
	exType := reflect.TypeOf(any(example))
	exShape, shaped := data.ShapeOf(any(example))

	return func(x T) error {
		if dynamic {
			if t := reflect.TypeOf(any(x)); t != exType {
				return errors.Wrapf(ErrShapeMismatch, "sample of type %v, expected %v", t, exType)
			}
		}
		if shaped {
			s, _ := data.ShapeOf(any(x))
			if !s.Equal(exShape) {
				return errors.Wrapf(ErrShapeMismatch, "sample of shape %v, expected %v", s, exShape)
			}
		}
		return nil
	}
}
