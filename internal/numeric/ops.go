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

// Package numeric resolves the arithmetic capability of sample types
// and computes statistical moments with it.
package numeric

import (
	"math"
	"reflect"

	"github.com/fentec-project/randify/data"
	"github.com/fentec-project/randify/internal"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Ops performs element-wise arithmetic on values of type T.
// Results are always new values, operands are never modified.
type Ops[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	MulElem(a, b T) T
	QuoElem(a, b T) T
	Scale(a T, s float64) T
	Pow(a T, p float64) T
}

// For returns the arithmetic for values like example.
//
// float64, float32 and []float64 are supported directly, any other type
// must implement data.Numeric. When T is an interface type the dynamic
// type of example decides; in that case only float64, float32, []float64,
// data.Vector and data.Matrix are recognized. An error wrapping
// ErrNonNumericType is returned for unsupported types.
func For[T any](example T) (Ops[T], error) {
	if reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Interface {
		ops, err := forValue(any(example))
		if err != nil {
			return nil, err
		}
		if o, ok := any(ops).(Ops[T]); ok {
			return o, nil
		}
		return ifaceOps[T]{ops}, nil
	}

	switch any(example).(type) {
	case float64:
		return any(float64Ops{}).(Ops[T]), nil
	case float32:
		return any(float32Ops{}).(Ops[T]), nil
	case []float64:
		return any(sliceOps{}).(Ops[T]), nil
	}
	if _, ok := any(example).(data.Numeric[T]); ok {
		return methodOps[T]{}, nil
	}

	return nil, errors.Wrapf(internal.ErrNonNumericType, "%T", example)
}

func forValue(v any) (Ops[any], error) {
	switch v.(type) {
	case float64:
		return boxedOps[float64]{float64Ops{}}, nil
	case float32:
		return boxedOps[float32]{float32Ops{}}, nil
	case []float64:
		return boxedOps[[]float64]{sliceOps{}}, nil
	case data.Vector:
		return boxedOps[data.Vector]{methodOps[data.Vector]{}}, nil
	case data.Matrix:
		return boxedOps[data.Matrix]{methodOps[data.Matrix]{}}, nil
	}

	return nil, errors.Wrapf(internal.ErrNonNumericType, "%T", v)
}

type float64Ops struct{}

func (float64Ops) Add(a, b float64) float64 { return a + b }
func (float64Ops) Sub(a, b float64) float64 { return a - b }
func (float64Ops) MulElem(a, b float64) float64 { return a * b }
func (float64Ops) QuoElem(a, b float64) float64 { return a / b }
func (float64Ops) Scale(a float64, s float64) float64 { return a * s }
func (float64Ops) Pow(a float64, p float64) float64 { return math.Pow(a, p) }

type float32Ops struct{}

func (float32Ops) Add(a, b float32) float32 { return a + b }
func (float32Ops) Sub(a, b float32) float32 { return a - b }
func (float32Ops) MulElem(a, b float32) float32 { return a * b }
func (float32Ops) QuoElem(a, b float32) float32 { return a / b }
func (float32Ops) Scale(a float32, s float64) float32 { return float32(float64(a) * s) }
func (float32Ops) Pow(a float32, p float64) float32 {
	return float32(math.Pow(float64(a), p))
}

// sliceOps works on []float64 of equal length.
type sliceOps struct{}

func (sliceOps) Add(a, b []float64) []float64 {
	return floats.AddTo(make([]float64, len(a)), a, b)
}

func (sliceOps) Sub(a, b []float64) []float64 {
	return floats.SubTo(make([]float64, len(a)), a, b)
}

func (sliceOps) MulElem(a, b []float64) []float64 {
	return floats.MulTo(make([]float64, len(a)), a, b)
}

func (sliceOps) QuoElem(a, b []float64) []float64 {
	return floats.DivTo(make([]float64, len(a)), a, b)
}

func (sliceOps) Scale(a []float64, s float64) []float64 {
	return floats.ScaleTo(make([]float64, len(a)), s, a)
}

func (sliceOps) Pow(a []float64, p float64) []float64 {
	res := make([]float64, len(a))
	for i, x := range a {
		res[i] = math.Pow(x, p)
	}
	return res
}

// methodOps delegates to the data.Numeric methods of T.
type methodOps[T any] struct{}

func (methodOps[T]) num(a T) data.Numeric[T] { return any(a).(data.Numeric[T]) }

func (o methodOps[T]) Add(a, b T) T { return o.num(a).Add(b) }
func (o methodOps[T]) Sub(a, b T) T { return o.num(a).Sub(b) }
func (o methodOps[T]) MulElem(a, b T) T { return o.num(a).MulElem(b) }
func (o methodOps[T]) QuoElem(a, b T) T { return o.num(a).QuoElem(b) }
func (o methodOps[T]) Scale(a T, s float64) T { return o.num(a).MulScalar(s) }
func (o methodOps[T]) Pow(a T, p float64) T { return o.num(a).Pow(p) }

// boxedOps lifts Ops[U] to values held in interfaces. Every operand
// must have dynamic type U.
type boxedOps[U any] struct {
	ops Ops[U]
}

func (o boxedOps[U]) Add(a, b any) any { return o.ops.Add(a.(U), b.(U)) }
func (o boxedOps[U]) Sub(a, b any) any { return o.ops.Sub(a.(U), b.(U)) }
func (o boxedOps[U]) MulElem(a, b any) any { return o.ops.MulElem(a.(U), b.(U)) }
func (o boxedOps[U]) QuoElem(a, b any) any { return o.ops.QuoElem(a.(U), b.(U)) }
func (o boxedOps[U]) Scale(a any, s float64) any { return o.ops.Scale(a.(U), s) }
func (o boxedOps[U]) Pow(a any, p float64) any { return o.ops.Pow(a.(U), p) }

// ifaceOps adapts Ops[any] to a named interface type T. Results keep
// the dynamic type of the operands, which already satisfies T.
type ifaceOps[T any] struct {
	ops Ops[any]
}

func (o ifaceOps[T]) Add(a, b T) T { return o.ops.Add(a, b).(T) }
func (o ifaceOps[T]) Sub(a, b T) T { return o.ops.Sub(a, b).(T) }
func (o ifaceOps[T]) MulElem(a, b T) T { return o.ops.MulElem(a, b).(T) }
func (o ifaceOps[T]) QuoElem(a, b T) T { return o.ops.QuoElem(a, b).(T) }
func (o ifaceOps[T]) Scale(a T, s float64) T { return o.ops.Scale(a, s).(T) }
func (o ifaceOps[T]) Pow(a T, p float64) T { return o.ops.Pow(a, p).(T) }
