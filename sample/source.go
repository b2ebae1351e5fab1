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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
	"golang.org/x/exp/rand"
)

// NewSource returns a seeded pseudo-random source.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}

// DetSource is a deterministic source of random values: the stream
// is the salsa20 key stream for key, one 64 byte block per nonce
// value, with the nonce counting up from 0. Two sources with the same
// key produce the same values.
//
// DetSource implements golang.org/x/exp/rand.Source and can be used
// with any generator of this package.
type DetSource struct {
	key     [32]byte
	counter uint64
	block   [64]byte
	pos     int
}

// NewDetSource returns a DetSource for key.
func NewDetSource(key *[32]byte) *DetSource {
	s := &DetSource{key: *key}
	s.pos = len(s.block)
	return s
}

// Uint64 returns the next 64 bits of the key stream.
func (s *DetSource) Uint64() uint64 {
	if s.pos+8 > len(s.block) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.block[s.pos:])
	s.pos += 8

	return v
}

// Seed replaces the first 8 bytes of the key with seed and
// restarts the stream.
func (s *DetSource) Seed(seed uint64) {
	binary.LittleEndian.PutUint64(s.key[:8], seed)
	s.counter = 0
	s.pos = len(s.block)
}

func (s *DetSource) refill() {
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.counter)
	s.counter++

	in := make([]byte, len(s.block)) // input is initialized to zeros
	salsa20.XORKeyStream(s.block[:], in, nonce, &s.key)
	s.pos = 0
}
