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

// keystreamLen is the number of keystream bytes generated per refill.
const keystreamLen = 512

// KeyedSource is a deterministic rand.Source. Values are read from
// the salsa20 keystream under the key, with a block counter used as
// the nonce of each refill.
type KeyedSource struct {
	key     [32]byte
	counter uint64
	buf     [keystreamLen]byte
	pos     int
}

// NewKeyedSource returns a KeyedSource for the given key.
func NewKeyedSource(key *[32]byte) *KeyedSource {
	s := &KeyedSource{key: *key}
	s.pos = keystreamLen

	return s
}

// NewSource returns a KeyedSource whose key is derived from seed.
func NewSource(seed uint64) *KeyedSource {
	s := &KeyedSource{}
	s.Seed(seed)

	return s
}

// NewRand returns a *rand.Rand reading from a KeyedSource derived
// from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// Seed re-keys the source with seed and rewinds the stream.
func (s *KeyedSource) Seed(seed uint64) {
	s.key = [32]byte{}
	binary.LittleEndian.PutUint64(s.key[:8], seed)
	s.counter = 0
	s.pos = keystreamLen
}

// Uint64 returns the next 8 bytes of the keystream.
func (s *KeyedSource) Uint64() uint64 {
	if s.pos+8 > keystreamLen {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8

	return v
}

func (s *KeyedSource) refill() {
	in := make([]byte, keystreamLen) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.counter)

	salsa20.XORKeyStream(s.buf[:], in, nonce, &s.key)

	s.counter++
	s.pos = 0
}
