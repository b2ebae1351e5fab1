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

package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

var invalidStr = "is not valid"

// Error kinds shared by all packages. Public packages re-export the ones
// they can return, callers compare with errors.Is.
var ErrInitialization = errors.New("random variable needs a generator or a non-empty sample pool")
var ErrProperty = errors.New("property is not available on the representative sample")
var ErrShapeMismatch = errors.New("samples are not uniformly shaped")
var ErrNonNumericType = errors.New("sample type does not support the required arithmetic")
var ErrDegenerateSample = errors.New("sample pool is too small for the requested statistic")
var ErrInconsistentSampleCount = errors.New("random variables provide different numbers of samples")
var ErrInvalidSampleCount = errors.New(fmt.Sprintf("sample count %s", invalidStr))
var ErrInvalidArgument = errors.New(fmt.Sprintf("argument %s", invalidStr))
var ErrInconsistentReturn = errors.New("function returned a different number of values than on the first evaluation")
