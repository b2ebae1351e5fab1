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

package sample_test

import (
	"testing"

	"github.com/fentec-project/randify/sample"
	"github.com/stretchr/testify/assert"
)

func TestDetSource(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}

	a := sample.NewDetSource(&key)
	b := sample.NewDetSource(&key)
	seen := make(map[uint64]bool)
	for i := 0; i < 50; i++ {
		x := a.Uint64()
		assert.Equal(t, x, b.Uint64(), "sources with the same key should agree")
		seen[x] = true
	}
	assert.Len(t, seen, 50, "values should not repeat")

	key[0] = 0xff
	c := sample.NewDetSource(&key)
	a.Seed(0)
	c.Seed(0)
	assert.Equal(t, a.Uint64(), c.Uint64(), "seeding overrides the key prefix")
}

func TestDetSource_Normal(t *testing.T) {
	var key [32]byte
	key[3] = 7
	n := sample.NewStandardNormal(sample.NewDetSource(&key))
	vals, _ := n.DrawN(10000)
	assert.InDelta(t, 0, mean(vals), 0.05)
	assert.InDelta(t, 1, variance(vals), 0.1)
}
