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

package sample

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler samples scalar random values.
type Sampler interface {
	Sample() (float64, error)
}

// Univariate adapts any gonum distuv distribution (or other
// Rander) to the Sampler interface and to the single-draw and
// bulk generator contracts.
type Univariate struct {
	distuv.Rander
	// Name is used when the generator is printed.
	Name string
}

// NewUnivariate returns a generator drawing from r.
func NewUnivariate(r distuv.Rander, name string) *Univariate {
	return &Univariate{Rander: r, Name: name}
}

// Sample draws a single value.
func (u *Univariate) Sample() (float64, error) {
	if u.Rander == nil {
		return 0, errors.New("univariate sampler has no distribution")
	}
	return u.Rand(), nil
}

// Draw draws a single value.
func (u *Univariate) Draw() (float64, error) {
	return u.Sample()
}

// DrawN draws n values in one call.
func (u *Univariate) DrawN(n int) ([]float64, error) {
	return drawN(n, u.Sample)
}

func (u *Univariate) String() string {
	if u.Name == "" {
		return "Univariate"
	}
	return u.Name
}

// drawN fills a slice of n values using draw.
func drawN(n int, draw func() (float64, error)) ([]float64, error) {
	if n < 0 {
		return nil, errors.Errorf("cannot draw %d samples", n)
	}
	vals := make([]float64, n)
	var err error
	for i := range vals {
		vals[i], err = draw()
		if err != nil {
			return nil, errors.Wrap(err, "error while sampling")
		}
	}

	return vals, nil
}
