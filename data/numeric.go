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

// Numeric is the arithmetic a sample type T needs so that statistical
// moments can be computed over a pool of T values. All operations are
// element-wise and return new values. Vector and Matrix implement
// Numeric; float64, float32 and []float64 are supported without it.
type Numeric[T any] interface {
	Add(T) T
	Sub(T) T
	MulElem(T) T
	QuoElem(T) T
	MulScalar(float64) T
	Pow(float64) T
}

var (
	_ Numeric[Vector] = Vector(nil)
	_ Numeric[Matrix] = Matrix(nil)
	_ Flattener       = Vector(nil)
	_ Flattener       = Matrix(nil)
)
