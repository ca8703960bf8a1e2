// Copyright 2023 ColumnForge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package function

import (
	"github.com/columnforge/vecengine/pkg/common/moerr"
	"github.com/columnforge/vecengine/pkg/container/types"
	"github.com/columnforge/vecengine/pkg/container/vector"
	"github.com/columnforge/vecengine/pkg/vectorize/typecast"
)

// CoerceInputs materializes the casts chosen by the type check. Inputs
// already of the target type are passed through untouched; the rest are
// widened into freshly allocated columns. Input vectors are never
// modified.
func CoerceInputs(ivecs []*vector.Vector, targets []types.T) ([]*vector.Vector, error) {
	if targets == nil {
		return ivecs, nil
	}
	out := make([]*vector.Vector, len(ivecs))
	for i, v := range ivecs {
		if v.Typ.Oid == targets[i] {
			out[i] = v
			continue
		}
		cv, err := castVector(v, targets[i])
		if err != nil {
			return nil, err
		}
		out[i] = cv
	}
	return out, nil
}

func castVector(v *vector.Vector, to types.T) (*vector.Vector, error) {
	rvec, err := vector.PreAlloc(to.ToType(), v.Length())
	if err != nil {
		return nil, err
	}
	rvec.Nsp = v.Nsp.Clone()
	switch to {
	case types.T_int64:
		rs := vector.MustFixedCol[int64](rvec)
		switch v.Typ.Oid {
		case types.T_int8:
			typecast.NumericToNumeric(vector.MustFixedCol[int8](v), rs)
		case types.T_int16:
			typecast.NumericToNumeric(vector.MustFixedCol[int16](v), rs)
		case types.T_int32:
			typecast.NumericToNumeric(vector.MustFixedCol[int32](v), rs)
		default:
			return nil, unexpectedCast(v.Typ.Oid, to)
		}
	case types.T_uint64:
		rs := vector.MustFixedCol[uint64](rvec)
		switch v.Typ.Oid {
		case types.T_uint8:
			typecast.NumericToNumeric(vector.MustFixedCol[uint8](v), rs)
		case types.T_uint16:
			typecast.NumericToNumeric(vector.MustFixedCol[uint16](v), rs)
		case types.T_uint32:
			typecast.NumericToNumeric(vector.MustFixedCol[uint32](v), rs)
		default:
			return nil, unexpectedCast(v.Typ.Oid, to)
		}
	case types.T_float64:
		rs := vector.MustFixedCol[float64](rvec)
		switch v.Typ.Oid {
		case types.T_int8:
			typecast.NumericToNumeric(vector.MustFixedCol[int8](v), rs)
		case types.T_int16:
			typecast.NumericToNumeric(vector.MustFixedCol[int16](v), rs)
		case types.T_int32:
			typecast.NumericToNumeric(vector.MustFixedCol[int32](v), rs)
		case types.T_int64:
			typecast.NumericToNumeric(vector.MustFixedCol[int64](v), rs)
		case types.T_uint8:
			typecast.NumericToNumeric(vector.MustFixedCol[uint8](v), rs)
		case types.T_uint16:
			typecast.NumericToNumeric(vector.MustFixedCol[uint16](v), rs)
		case types.T_uint32:
			typecast.NumericToNumeric(vector.MustFixedCol[uint32](v), rs)
		case types.T_uint64:
			typecast.NumericToNumeric(vector.MustFixedCol[uint64](v), rs)
		case types.T_float32:
			typecast.NumericToNumeric(vector.MustFixedCol[float32](v), rs)
		default:
			return nil, unexpectedCast(v.Typ.Oid, to)
		}
	case types.T_decimal64:
		rvec.Typ = types.New(types.T_decimal64, types.Decimal64MaxPrecision, 0)
		rs := vector.MustFixedCol[types.Decimal64](rvec)
		switch v.Typ.Oid {
		case types.T_int8:
			typecast.IntToDecimal64(vector.MustFixedCol[int8](v), rs)
		case types.T_int16:
			typecast.IntToDecimal64(vector.MustFixedCol[int16](v), rs)
		case types.T_int32:
			typecast.IntToDecimal64(vector.MustFixedCol[int32](v), rs)
		case types.T_int64:
			typecast.IntToDecimal64(vector.MustFixedCol[int64](v), rs)
		case types.T_uint8:
			typecast.IntToDecimal64(vector.MustFixedCol[uint8](v), rs)
		case types.T_uint16:
			typecast.IntToDecimal64(vector.MustFixedCol[uint16](v), rs)
		case types.T_uint32:
			typecast.IntToDecimal64(vector.MustFixedCol[uint32](v), rs)
		default:
			return nil, unexpectedCast(v.Typ.Oid, to)
		}
	default:
		return nil, unexpectedCast(v.Typ.Oid, to)
	}
	return rvec, nil
}

// unexpectedCast means the type check admitted a conversion castVector
// cannot perform; the two must stay in lockstep.
func unexpectedCast(from, to types.T) error {
	return moerr.NewInternal("no implicit cast from %s to %s", from.OidString(), to.OidString())
}
