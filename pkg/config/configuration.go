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

package config

import (
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/columnforge/vecengine/pkg/common/moerr"
	"github.com/columnforge/vecengine/pkg/logutil"
)

const (
	defaultMaxBatchRows = 1 << 20
)

// EngineParameters of the compute engine.
type EngineParameters struct {
	// MaxBatchRows caps the row count of a single evaluation request.
	// Callers wanting bounded latency bound batch size upstream; the
	// engine enforces the cap rather than trying to cancel mid-kernel.
	MaxBatchRows int64 `toml:"maxBatchRows"`

	// EvalParallelism is the goroutine pool size used for evaluating
	// independent requests concurrently. Defaults to GOMAXPROCS.
	EvalParallelism int64 `toml:"evalParallelism"`

	Log logutil.LogConfig `toml:"log"`
}

// SetDefaultValues fills every unset parameter.
func (p *EngineParameters) SetDefaultValues() {
	if p.MaxBatchRows <= 0 {
		p.MaxBatchRows = defaultMaxBatchRows
	}
	if p.EvalParallelism <= 0 {
		p.EvalParallelism = int64(runtime.GOMAXPROCS(0))
	}
	if p.Log.Level == "" {
		p.Log.Level = "info"
	}
	if p.Log.Format == "" {
		p.Log.Format = "json"
	}
}

// LoadEngineParameters parses a TOML file and fills defaults.
func LoadEngineParameters(path string) (*EngineParameters, error) {
	var params EngineParameters
	if _, err := toml.DecodeFile(path, &params); err != nil {
		return nil, moerr.NewBadConfig("cannot parse %s: %v", path, err)
	}
	params.SetDefaultValues()
	return &params, nil
}
