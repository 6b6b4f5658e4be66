// Copyright 2025 go-numeric Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init("debug", &buf))
	assert.Equal(t, logrus.DebugLevel, Get().GetLevel())

	Debugf("level %s", "avx2")
	assert.Contains(t, buf.String(), "level avx2")
	assert.Contains(t, buf.String(), "level=debug")
}

func TestInitUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	err := Init("loud", &buf)
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, Get().GetLevel())

	Debugf("hidden")
	assert.NotContains(t, buf.String(), "hidden")
	Warnf("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init("info", &buf))
	WithFields(logrus.Fields{"dispatch": "sse4.1"}).Info("detected")
	assert.Contains(t, buf.String(), "dispatch=sse4.1")
}
